package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greengirl/dashboard/internal/database"
	"github.com/greengirl/dashboard/internal/lookup"
)

// NewSeedCommand creates the seed command, which loads projects, activity
// types and storage capacities from a YAML file.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Load reference data from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parse before connecting so a bad file fails fast.
			seed, err := lookup.LoadSeed(args[0])
			if err != nil {
				return err
			}

			db, err := database.New(cmd.Context(), rootOpts.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := seed.Apply(cmd.Context(), lookup.NewRepository(db.Pool())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d activity types, %d capacities\n",
				len(seed.Projects), len(seed.ActivityTypes), len(seed.Storage))
			return nil
		},
	}
}
