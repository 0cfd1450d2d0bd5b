// Package cli implements ggadmin, the operator command line for the
// dashboard's database.
package cli

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DatabaseURL string
	BcryptCost  int
}

// NewRootCommand creates the root ggadmin command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ggadmin",
		Short: "GreenGirl dashboard administration",
		Long:  "Operator tasks for the GreenGirl dashboard: schema migrations, reference data and user accounts.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.DatabaseURL == "" {
				return errors.New("database url is required: set --database-url or DATABASE_URL")
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection url")
	cmd.PersistentFlags().IntVar(&opts.BcryptCost, "bcrypt-cost", envInt("BCRYPT_COST", 12), "bcrypt cost for new passwords")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCreateUserCommand(opts))

	return cmd
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}
