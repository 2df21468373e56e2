package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/spf13/cobra"
)

// Snapshot is an exported slice of one workplace: goals with their daily reports, and
// financial records with their allocation children.
type Snapshot struct {
	Goals   []domain.GoalNode        `json:"goals"`
	Reports []domain.DailyReport     `json:"reports"`
	Records []domain.FinancialRecord `json:"records"`
}

// readJSON decodes path into v. A path of "-" reads the command's stdin.
func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func loadSnapshot(cmd *cobra.Command, path string) (*Snapshot, error) {
	var snap Snapshot
	if err := readJSON(cmd, path, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// explain prints the item-level issues of a rejected batch before handing the error back.
func explain(cmd *cobra.Command, err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			if issue.Index >= 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "  item %d: %s %s\n", issue.Index, issue.Field, issue.Message)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s\n", issue.Field, issue.Message)
			}
		}
	}
	return err
}
