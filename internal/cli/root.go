package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/lintup-dev/lintup/internal/branding"
	"github.com/lintup-dev/lintup/internal/config"
	"github.com/lintup-dev/lintup/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	noColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up linting, formatting and build tooling for a JavaScript project.

It asks whether the project uses TypeScript, React and Babel, writes
.eslintrc.js, tsconfig.json and babel.config.js accordingly, installs the
matching dev dependencies with npm or yarn, and adds lint/build scripts,
husky hooks and lint-staged rules to package.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		log.Configure(log.Config{
			Level:   viper.GetString(config.KeyLogLevel),
			Output:  cmd.ErrOrStderr(),
			NoColor: noColor,
		})
	},
}

// Execute runs the root command with build info injected via ldflags.
// A failing command is logged once here; the caller only sets the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := log.Base()
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
