package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lintup-dev/lintup/internal/branding"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/log"
	"github.com/lintup-dev/lintup/internal/prompt"
	"github.com/lintup-dev/lintup/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initFlags       setupFlags
	initSkipInstall bool
	initDryRun      bool
)

func init() {
	initFlags.register(initCmd)
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Write files and patch package.json without installing dependencies")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Print the resolved plan without writing or installing anything")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up linting and build tooling in a project",
	Long: `Set up linting, formatting and build tooling in a JavaScript project.

Asks whether the project uses TypeScript, React and Babel (defaults are
guessed from the existing project), then writes the config files, installs
dev dependencies and updates package.json. Answers can be given up front
with --typescript, --react and --babel; --yes accepts the defaults for the
rest.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	sc, err := initFlags.prepare(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("skip-install") {
		sc.settings.SkipInstall = initSkipInstall
	}

	out := cmd.OutOrStdout()
	logger := log.WithComponent("init")
	logger.Debug().
		Str("dir", sc.settings.WorkDir).
		Str("installer", sc.installer).
		Str("lock_file", sc.info.LockFile).
		Msg("inspected project")

	flags, err := prompt.Ask(cmd.InOrStdin(), out, prompt.Options{
		Defaults:       sc.info.Defaults(),
		Preset:         initFlags.preset(cmd),
		AcceptDefaults: initFlags.yes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration: %s\n", flags)
	if len(sc.info.Existing) > 0 && !initDryRun {
		logger.Warn().Strs("files", sc.info.Existing).Msg("existing files will be overwritten")
	}

	inst := installer.New(sc.installer, out, cmd.ErrOrStderr())
	res, err := scaffold.Run(cmd.Context(), scaffold.Request{
		Settings:  sc.settings,
		Flags:     flags,
		Installer: inst,
		DryRun:    initDryRun,
		Out:       out,
	})
	if err != nil {
		return err
	}

	if initDryRun {
		view := newPlanView(res.Plan, scaffold.Options(sc.settings, inst.ScriptRunner()), sc.info.Name, sc.installer)
		return writePlan(out, view, "yaml")
	}

	for _, w := range res.Warnings {
		logger.Warn().Msg(w)
	}
	printInitSummary(out, res)
	return nil
}

func printInitSummary(w io.Writer, res *scaffold.Result) {
	fmt.Fprintf(w, "\nProject %s is set up.\n", res.PackageName)
	fmt.Fprintf(w, "  Files:     %s\n", strings.Join(res.Files, ", "))
	if res.Installed != nil {
		fmt.Fprintf(w, "  Installed: %s\n", printer.Sprintf("%d dev dependencies with %s", len(res.Installed), res.Installer))
	} else {
		fmt.Fprintf(w, "  Installed: skipped\n")
	}
	fmt.Fprintf(w, "\nRun '%s lint' to check your sources.\n", installer.Dispatch(res.Installer).ScriptRunner())
	fmt.Fprintf(w, "Re-run '%s init' any time; generated files are overwritten.\n", branding.CLIName())
}
