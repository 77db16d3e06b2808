package cli

import (
	"fmt"

	"github.com/lintup-dev/lintup/internal/config"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/project"
	"github.com/lintup-dev/lintup/internal/prompt"
	"github.com/spf13/cobra"
)

// setupFlags are the answers and overrides shared by init and plan.
type setupFlags struct {
	dir        string
	typeScript bool
	react      bool
	babel      bool
	yes        bool
	installer  string
}

func (f *setupFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "Project directory (default: current directory)")
	cmd.Flags().BoolVar(&f.typeScript, "typescript", false, "Enable TypeScript without asking")
	cmd.Flags().BoolVar(&f.react, "react", false, "Enable React without asking")
	cmd.Flags().BoolVar(&f.babel, "babel", false, "Transpile with Babel without asking (ignored with TypeScript or React)")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Accept defaults for questions not answered by flags")
	cmd.Flags().StringVar(&f.installer, "installer", "", "Package manager to use: npm or yarn (default: detect from lock file)")
}

// preset returns answers for the flags the user actually passed.
func (f *setupFlags) preset(cmd *cobra.Command) prompt.Preset {
	var p prompt.Preset
	if cmd.Flags().Changed("typescript") {
		p.TypeScript = prompt.Bool(f.typeScript)
	}
	if cmd.Flags().Changed("react") {
		p.React = prompt.Bool(f.react)
	}
	if cmd.Flags().Changed("babel") {
		p.Babel = prompt.Bool(f.babel)
	}
	return p
}

// setupContext is everything a command needs before asking questions.
type setupContext struct {
	settings  config.Settings
	info      *project.Info
	installer string
}

// prepare captures settings, applies flag overrides and inspects the
// project directory.
func (f *setupFlags) prepare(cmd *cobra.Command) (*setupContext, error) {
	settings, err := config.Capture(f.dir)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("installer") {
		settings.Installer = f.installer
	}
	if settings.Installer != "" && !installer.Valid(settings.Installer) {
		return nil, fmt.Errorf("invalid installer %q: use %q or %q", settings.Installer, installer.NameNpm, installer.NameYarn)
	}

	info, err := project.Inspect(settings.WorkDir, settings.SourceDir)
	if err != nil {
		return nil, err
	}

	return &setupContext{
		settings:  settings,
		info:      info,
		installer: installer.Detect(settings.WorkDir, settings.Installer),
	}, nil
}
