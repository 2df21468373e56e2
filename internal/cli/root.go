package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// App holds the settings shared by goalctl commands.
type App struct {
	Now   func() time.Time
	NewID func() string

	RejectDuplicateAssignees bool
	RatioScale               int32

	JWTSecret string
	JWTIssuer string
	JWTExpiry time.Duration
}

// NewRootCmd creates the top-level "goalctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "goalctl",
		Short:         "Offline goal tree rollups and split/allocation previews",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRollupCmd(app),
		newSplitCmd(app),
		newAllocateCmd(app),
		newSummaryCmd(app),
		newTokenCmd(app),
	)

	return root
}
