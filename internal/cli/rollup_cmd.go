package cli

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/spf13/cobra"
)

func newRollupCmd(app *App) *cobra.Command {
	var snapshotPath, from, to string
	var year int
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Aggregate a goal snapshot into a tree with actual values and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, snapshotPath)
			if err != nil {
				return err
			}
			start, end, err := dto.ParsePeriod(from, to)
			if err != nil {
				return err
			}

			goals := snap.Goals
			if year > 0 {
				goals = make([]domain.GoalNode, 0, len(snap.Goals))
				for _, g := range snap.Goals {
					if g.Year == year {
						goals = append(goals, g)
					}
				}
			}

			tree := services.BuildGoalTree(goals, snap.Reports, year, includeDeleted, engine.WithReportingPeriod(start, end))
			return writeJSON(cmd, tree)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot JSON file, - for stdin")
	cmd.Flags().IntVar(&year, "year", 0, "Only aggregate goals of this year")
	cmd.Flags().StringVar(&from, "from", "", "Reporting period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Reporting period end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "Show soft-deleted goals")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}
