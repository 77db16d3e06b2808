package resolve

import "fmt"

// Resolve derives the files and dependencies for flags. The manifest patch
// is derived separately by ManifestPatch because it needs the package name,
// which is only final once the manifest exists.
func Resolve(flags FeatureFlags, opts Options) (*Plan, error) {
	flags = flags.Normalize()
	opts = opts.withDefaults()

	plan := &Plan{
		Flags:    flags,
		Template: SelectTemplate(flags),
	}

	lint, steps, err := lintFile(flags)
	if err != nil {
		return nil, fmt.Errorf("deriving %s: %w", ESLintFile, err)
	}
	plan.Files = append(plan.Files, lint)
	plan.LintSteps = steps

	if flags.TypeScript {
		ts, err := typeScriptFile(opts)
		if err != nil {
			return nil, fmt.Errorf("deriving %s: %w", TSConfigFile, err)
		}
		plan.Files = append(plan.Files, ts)
	}

	babel, ok, err := RenderBuildTemplate(plan.Template)
	if err != nil {
		return nil, fmt.Errorf("deriving %s: %w", BabelFile, err)
	}
	if ok {
		plan.Files = append(plan.Files, babel)
	}

	plan.Dependencies = Dependencies(flags)
	return plan, nil
}
