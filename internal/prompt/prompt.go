package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lintup-dev/lintup/internal/log"
	"github.com/lintup-dev/lintup/internal/resolve"
)

// ErrCancelled is returned when input ends before a question is answered.
var ErrCancelled = errors.New("setup cancelled: no answer given")

// Question texts, in the order they are asked.
const (
	QuestionTypeScript = "Enable TypeScript?"
	QuestionReact      = "Is this a React base project?"
	QuestionBabel      = "Transpile with Babel?"
)

// Preset holds answers given up front, typically from command flags. A nil
// field means the question is asked.
type Preset struct {
	TypeScript *bool
	React      *bool
	Babel      *bool
}

// Options controls one questionnaire run.
type Options struct {
	// Defaults are taken on an empty answer.
	Defaults resolve.FeatureFlags
	Preset   Preset
	// AcceptDefaults answers every unanswered question with its default
	// without reading input.
	AcceptDefaults bool
}

// Ask runs the questionnaire. The Babel question is only asked when neither
// TypeScript nor React is enabled; otherwise its answer is implied.
func Ask(r io.Reader, w io.Writer, opts Options) (resolve.FeatureFlags, error) {
	q := &questioner{reader: bufio.NewReader(r), w: w, acceptDefaults: opts.AcceptDefaults}
	var flags resolve.FeatureFlags
	var err error

	if flags.TypeScript, err = q.ask(QuestionTypeScript, opts.Preset.TypeScript, opts.Defaults.TypeScript); err != nil {
		return flags, err
	}
	if flags.React, err = q.ask(QuestionReact, opts.Preset.React, opts.Defaults.React); err != nil {
		return flags, err
	}

	if !resolve.AsksBabel(flags.TypeScript, flags.React) {
		if opts.Preset.Babel != nil && *opts.Preset.Babel != resolve.DefaultBabel(flags.TypeScript, flags.React) {
			logger := log.WithComponent("prompt")
			logger.Warn().
				Bool("babel", *opts.Preset.Babel).
				Str("flags", flags.String()).
				Msg("babel choice ignored: implied by TypeScript/React")
		}
		flags.Babel = resolve.DefaultBabel(flags.TypeScript, flags.React)
		return flags, nil
	}

	if flags.Babel, err = q.ask(QuestionBabel, opts.Preset.Babel, opts.Defaults.Babel); err != nil {
		return flags, err
	}
	return flags, nil
}

type questioner struct {
	reader         *bufio.Reader
	w              io.Writer
	acceptDefaults bool
}

func (q *questioner) ask(question string, preset *bool, def bool) (bool, error) {
	if preset != nil {
		return *preset, nil
	}
	if q.acceptDefaults {
		return def, nil
	}

	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(q.w, "? %s (%s) ", question, hint)

	line, err := q.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer to %q: %w", question, err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(q.w)
		return false, ErrCancelled
	}

	answer, perr := ParseAnswer(line, def)
	if perr != nil {
		return false, fmt.Errorf("answering %q: %w", question, perr)
	}
	return answer, nil
}

// ParseAnswer interprets a yes/no reply. An empty reply yields def.
func ParseAnswer(reply string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y/yes or n/no", strings.TrimSpace(reply))
	}
}

// Bool returns a pointer to b, for building a Preset.
func Bool(b bool) *bool {
	return &b
}
