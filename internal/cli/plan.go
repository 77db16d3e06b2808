package cli

import (
	"fmt"
	"io"

	"github.com/lintup-dev/lintup/internal/document"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/manifest"
	"github.com/lintup-dev/lintup/internal/prompt"
	"github.com/lintup-dev/lintup/internal/resolve"
	"github.com/lintup-dev/lintup/internal/scaffold"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var (
	planFlags  setupFlags
	planOutput string
)

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what init would generate, without changing anything",
	Long: `Resolve the files, dependencies and package.json changes for a set of
answers and print them. Questions not answered by --typescript, --react or
--babel take the defaults guessed from the project; nothing is asked,
written or installed.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	if planOutput != "yaml" && planOutput != "json" {
		return fmt.Errorf("invalid output format %q: use yaml or json", planOutput)
	}

	sc, err := planFlags.prepare(cmd)
	if err != nil {
		return err
	}

	flags, err := prompt.Ask(cmd.InOrStdin(), io.Discard, prompt.Options{
		Defaults:       sc.info.Defaults(),
		Preset:         planFlags.preset(cmd),
		AcceptDefaults: true,
	})
	if err != nil {
		return err
	}

	opts := scaffold.Options(sc.settings, installer.Dispatch(sc.installer).ScriptRunner())
	plan, err := resolve.Resolve(flags, opts)
	if err != nil {
		return fmt.Errorf("resolving setup: %w", err)
	}

	return writePlan(cmd.OutOrStdout(), newPlanView(plan, opts, sc.info.Name, sc.installer), planOutput)
}

// planView is the printable form of a resolved setup.
type planView struct {
	Flags        resolve.FeatureFlags    `json:"flags" yaml:"flags"`
	Template     resolve.BuildTemplate   `json:"template" yaml:"template"`
	Installer    string                  `json:"installer" yaml:"installer"`
	PackageName  string                  `json:"package_name" yaml:"package_name"`
	LintSteps    []string                `json:"lint_steps" yaml:"lint_steps"`
	Files        []resolve.GeneratedFile `json:"files" yaml:"files"`
	Dependencies []string                `json:"dependencies" yaml:"dependencies"`
	Manifest     manifest.Patch          `json:"manifest" yaml:"manifest"`
}

func newPlanView(plan *resolve.Plan, opts resolve.Options, packageName, installerName string) planView {
	opts.PackageName = packageName
	return planView{
		Flags:        plan.Flags,
		Template:     plan.Template,
		Installer:    installerName,
		PackageName:  packageName,
		LintSteps:    plan.LintSteps,
		Files:        plan.Files,
		Dependencies: plan.PackageArgs(),
		Manifest:     resolve.ManifestPatch(plan.Flags, opts),
	}
}

func writePlan(w io.Writer, view planView, format string) error {
	if format == "json" {
		data, err := document.MarshalIndent(view)
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	return enc.Close()
}
