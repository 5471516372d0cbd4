package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramon-Molinero/pokedex/internal/config"
)

func seedCmd() *cobra.Command {
	var fetchFirst bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Wipe the collection and reload it from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), func(cfg *config.Config) {
				if cmd.Flags().Changed("fetch-first") {
					cfg.Seed.FetchFirst = fetchFirst
				}
			})
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			sum, err := a.Seed.Reseed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Seed Executed")
			fmt.Fprintf(out, "fetched: %d\n", sum.Fetched)
			fmt.Fprintf(out, "inserted: %d\n", sum.Inserted)
			fmt.Fprintf(out, "duplicates skipped: %d\n", sum.DuplicatesSkipped)
			fmt.Fprintf(out, "invalid skipped: %d\n", sum.InvalidSkipped)
			fmt.Fprintf(out, "duration: %s\n", sum.Duration)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fetchFirst, "fetch-first", false, "fetch the source before clearing the collection")
	return cmd
}
