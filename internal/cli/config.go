package cli

import (
	"fmt"
	"strings"

	"github.com/lintup-dev/lintup/internal/branding"
	"github.com/lintup-dev/lintup/internal/config"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.CLIName() + ` configuration stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys: ` + strings.Join(config.Keys, ", ") + `.
Every key can also be set through the environment as ` + branding.EnvVar("<KEY>") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !config.IsKnown(key) {
			return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.Keys, ", "))
		}
		if key == config.KeyInstaller && value != "" && !installer.Valid(value) {
			return fmt.Errorf("invalid installer %q: use %q or %q", value, installer.NameNpm, installer.NameYarn)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
