package cli

import (
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for calling the API as a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := utils.GenerateJWT(userID, app.JWTSecret, app.JWTExpiry, app.JWTIssuer)
			if err != nil {
				return fmt.Errorf("generating token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id placed in the token subject")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
