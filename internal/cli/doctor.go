package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/lintup-dev/lintup/internal/config"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/manifest"
	"github.com/lintup-dev/lintup/internal/project"
	"github.com/spf13/cobra"
)

var (
	doctorDir       string
	doctorSkipTools bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "Project directory to check (default: current directory)")
	doctorCmd.Flags().BoolVar(&doctorSkipTools, "skip-tools", false, "Skip the node/npm/yarn checks")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the toolchain and project before running init",
	Long: `Run diagnostic checks: node, npm and yarn presence and versions, the
package manager init would use, and whether package.json is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := 0

		if !doctorSkipTools {
			failures += runToolCheck(cmd, out)
		}

		settings, err := config.Capture(doctorDir)
		if err != nil {
			return err
		}
		failures += runProjectCheck(out, settings)

		if failures > 0 {
			return errors.New(printer.Sprintf("doctor found %d problem(s)", failures))
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}

func runToolCheck(cmd *cobra.Command, w io.Writer) int {
	fmt.Fprintln(w, "Toolchain check:")
	failures := 0
	for _, req := range installer.Requirements {
		st := installer.Probe(cmd.Context(), req)
		switch {
		case st.Satisfied:
			fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", st.Tool, st.Version, st.Constraint)
		case st.Version == "" && req.Optional:
			fmt.Fprintf(w, "  [MISS] %s not found (optional)\n", st.Tool)
		case st.Version == "":
			fmt.Fprintf(w, "  [MISS] %s not found\n", st.Tool)
			failures++
		case st.Err != "":
			fmt.Fprintf(w, "  [WARN] %s %s: %s\n", st.Tool, st.Version, st.Err)
		default:
			fmt.Fprintf(w, "  [FAIL] %s %s does not satisfy %s\n", st.Tool, st.Version, st.Constraint)
			if !req.Optional {
				failures++
			}
		}
	}
	return failures
}

func runProjectCheck(w io.Writer, settings config.Settings) int {
	fmt.Fprintf(w, "Project check: %s\n", settings.WorkDir)

	info, err := project.Inspect(settings.WorkDir, settings.SourceDir)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}

	name := installer.Detect(settings.WorkDir, settings.Installer)
	switch {
	case settings.Installer != "":
		fmt.Fprintf(w, "  [INFO] installer: %s (configured)\n", name)
	case info.LockFile != "":
		fmt.Fprintf(w, "  [INFO] installer: %s (from %s)\n", name, info.LockFile)
	default:
		fmt.Fprintf(w, "  [INFO] installer: %s (default)\n", name)
	}
	fmt.Fprintf(w, "  [INFO] suggested answers: %s\n", info.Defaults())
	if info.HasBabelConfig {
		fmt.Fprintln(w, "  [INFO] a Babel config exists; answer yes to \"Transpile with Babel?\" to keep a Babel build")
	}
	for _, f := range info.Existing {
		fmt.Fprintf(w, "  [INFO] %s exists and would be overwritten\n", f)
	}

	if !info.HasManifest {
		fmt.Fprintf(w, "  [INFO] no %s yet; init will create one\n", manifest.FileName)
		return 0
	}
	return runManifestCheck(w, manifest.Path(settings.WorkDir))
}

func runManifestCheck(w io.Writer, path string) int {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}

	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", manifest.FileName)
		return 0
	}

	fmt.Fprintf(w, "  [FAIL] %s has %d validation issue(s):\n", manifest.FileName, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return 1
}
