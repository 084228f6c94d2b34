package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cinerate/internal/catalog"
)

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the movie catalog",
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the active catalog as TOML",
		Long: `Export writes the active catalog (built-in or --catalog) as a TOML
document that --catalog can load again. Without a path it prints to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, nil)
			if err != nil {
				return err
			}
			data, err := catalog.Encode(s.Catalog)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return fmt.Errorf("failed to write catalog file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d movies to %s\n", s.Catalog.Len(), args[0])
			return nil
		},
	}

	catalogCmd.AddCommand(exportCmd)
	return catalogCmd
}
