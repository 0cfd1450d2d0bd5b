package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greengirl/dashboard/internal/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := database.Migrate(ctx, rootOpts.DatabaseURL); err != nil {
				return err
			}
			version, err := database.MigrationVersion(ctx, rootOpts.DatabaseURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}
}
