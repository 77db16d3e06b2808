package resolve

import "github.com/lintup-dev/lintup/internal/document"

// Condition is a predicate over the feature flags.
type Condition func(FeatureFlags) bool

// Predefined conditions used by the derivation tables.
var (
	Always         Condition = func(FeatureFlags) bool { return true }
	WithTypeScript Condition = func(f FeatureFlags) bool { return f.TypeScript }
	WithReact      Condition = func(f FeatureFlags) bool { return f.React }
	ReactBabel     Condition = func(f FeatureFlags) bool { return f.React && !f.TypeScript }
	GenericBabel   Condition = func(f FeatureFlags) bool { return !f.React && !f.TypeScript && f.Babel }
	WithBabelBuild Condition = func(f FeatureFlags) bool { return f.BabelBuild() }
)

// Step is one named, flag-gated change to a document.
type Step struct {
	Name  string
	When  Condition
	Apply func(doc *document.Object)
}

// Builder starts from a base document and applies steps in order. Applied
// records which steps ran so a derivation can be audited.
type Builder struct {
	steps []Step
}

// NewBuilder returns a builder over the given steps.
func NewBuilder(steps ...Step) *Builder {
	return &Builder{steps: steps}
}

// Build applies every step whose condition holds to base.
func (b *Builder) Build(base *document.Object, flags FeatureFlags) (*document.Object, []string) {
	var applied []string
	for _, s := range b.steps {
		if s.When != nil && !s.When(flags) {
			continue
		}
		s.Apply(base)
		applied = append(applied, s.Name)
	}
	return base, applied
}

// entry is a list element included only when its condition holds.
type entry struct {
	when  Condition
	value string
}

// selectEntries returns the values whose condition holds, in table order.
func selectEntries(flags FeatureFlags, entries []entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.when(flags) {
			out = append(out, e.value)
		}
	}
	return out
}
