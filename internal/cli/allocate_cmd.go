package cli

import (
	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/spf13/cobra"
)

func newAllocateCmd(app *App) *cobra.Command {
	var snapshotPath, requestPath, recordID, actor string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Preview allocating a financial record to organizational units",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, snapshotPath)
			if err != nil {
				return err
			}
			var primary *domain.FinancialRecord
			for i := range snap.Records {
				if snap.Records[i].RecordID == recordID && snap.Records[i].DeletedAt == nil {
					primary = &snap.Records[i]
					break
				}
			}
			if primary == nil {
				return apperrors.NewNotFoundError("financial record " + recordID)
			}

			var req dto.AllocateRecordRequest
			if err := readJSON(cmd, requestPath, &req); err != nil {
				return err
			}

			plan, err := engine.PlanAllocation(*primary, req.ToAllocationSpecs(), engine.AllocationOptions{
				Actor:      actor,
				Now:        app.Now(),
				NewID:      app.NewID,
				RatioScale: app.RatioScale,
			})
			if err != nil {
				return explain(cmd, err)
			}
			return writeJSON(cmd, dto.ToAllocateRecordResponse(plan, true))
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot JSON file holding the record")
	cmd.Flags().StringVar(&requestPath, "request", "", "Allocation request JSON file, - for stdin")
	cmd.Flags().StringVar(&recordID, "record", "", "ID of the primary record")
	cmd.Flags().StringVar(&actor, "actor", "goalctl", "User recorded as creator of the children")
	for _, name := range []string{"snapshot", "request", "record"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var snapshotPath, kind string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Total one record kind of a snapshot without counting allocations twice",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, snapshotPath)
			if err != nil {
				return err
			}
			params := dto.LedgerSummaryParams{Kind: kind}
			if err := dto.Validate(params); err != nil {
				return explain(cmd, err)
			}

			records := make([]domain.FinancialRecord, 0, len(snap.Records))
			for _, r := range snap.Records {
				if r.Kind == domain.RecordKind(kind) && r.DeletedAt == nil {
					records = append(records, r)
				}
			}
			return writeJSON(cmd, dto.LedgerSummaryResponse{
				Kind:           domain.RecordKind(kind),
				PrimaryTotal:   engine.SumPrimaries(records),
				AllocatedTotal: engine.SumAllocationChildren(records),
				ByUnit:         engine.TotalsByUnit(records),
				Discrepancies:  engine.AllocationDiscrepancies(records),
			})
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot JSON file, - for stdin")
	cmd.Flags().StringVar(&kind, "kind", "", "Record kind to total")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
