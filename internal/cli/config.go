package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change persistent defaults",
		Long: `Show and change the defaults used by 'hueseed generate'.

Values are read from the config file, then from HUESEED_* environment
variables, then from command-line flags; later sources win.

` + config.KeysHelp(),
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print one or all configuration values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithEnv()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				spec := config.Lookup(args[0])
				if spec == nil {
					return unknownKeyError(args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), spec.Get(cfg))
				return nil
			}

			table := NewTable([]string{"KEY", "VALUE", "ENV"})
			for _, spec := range config.Keys {
				table.AddRow([]string{spec.Name, spec.Get(cfg), spec.EnvVar()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and save it to the config file.\n\n" + config.KeysHelp(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := config.Lookup(args[0])
			if spec == nil {
				return unknownKeyError(args[0])
			}

			// The file alone, so environment overrides are not persisted.
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := spec.Set(cfg, args[1]); err != nil {
				return fmt.Errorf("invalid value for %s: %w", spec.Name, err)
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s set to %s\n", spec.Name, spec.Get(cfg))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func unknownKeyError(name string) error {
	return fmt.Errorf("unknown config key %q\n\n%s", name, config.KeysHelp())
}
