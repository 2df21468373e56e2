package cli

import (
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/spf13/cobra"
)

func newSplitCmd(app *App) *cobra.Command {
	var snapshotPath, requestPath, level, goalID, actor string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Preview splitting a goal into child goals one level down",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.NodeKey{Level: domain.GoalLevel(strings.ToUpper(level)), ID: goalID}
			if !key.Level.IsValid() {
				return fmt.Errorf("unknown goal level %q", level)
			}
			snap, err := loadSnapshot(cmd, snapshotPath)
			if err != nil {
				return err
			}
			ix := engine.NewGoalIndex(snap.Goals)
			parent, ok := ix.Get(key)
			if !ok {
				return apperrors.NewNotFoundError("goal " + key.String())
			}

			var req dto.SplitGoalRequest
			if err := readJSON(cmd, requestPath, &req); err != nil {
				return err
			}

			plan, err := engine.PlanSplit(parent, req.ToChildSpecs(), engine.SplitOptions{
				Actor:                    actor,
				Now:                      app.Now(),
				RejectDuplicateAssignees: app.RejectDuplicateAssignees,
				NewID:                    app.NewID,
			})
			if err != nil {
				return explain(cmd, err)
			}
			return writeJSON(cmd, dto.ToSplitGoalResponse(plan, true))
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot JSON file holding the parent goal")
	cmd.Flags().StringVar(&requestPath, "request", "", "Split request JSON file, - for stdin")
	cmd.Flags().StringVar(&level, "level", "", "Level of the goal to split")
	cmd.Flags().StringVar(&goalID, "goal", "", "ID of the goal to split")
	cmd.Flags().StringVar(&actor, "actor", "goalctl", "User recorded as creator of the children")
	for _, name := range []string{"snapshot", "request", "level", "goal"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
