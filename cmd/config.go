package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cinerate/internal/config"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("config")
			if len(args) == 1 {
				path = args[0]
			}
			svc := config.NewConfigService(path)

			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", svc.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file:   %s\n", s.ConfigPath)
			fmt.Fprintf(out, "catalog file:  %s\n", orBuiltIn(s.Config.CatalogFile))
			fmt.Fprintf(out, "start route:   %s\n", s.Config.StartRoute)
			fmt.Fprintf(out, "debounce:      %s\n", s.Config.Debounce())
			fmt.Fprintf(out, "default tab:   %s\n", s.Config.UISettings.DefaultTab)
			fmt.Fprintf(out, "show badges:   %v\n", s.Config.UISettings.ShowBadges)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func orBuiltIn(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}
