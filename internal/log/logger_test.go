package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("scaffold")
	l.Info().Msg("hidden")
	l.Warn().Str("file", ".eslintrc.js").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing:\n%s", out)
	}
	if !strings.Contains(out, "component=scaffold") {
		t.Errorf("component field missing:\n%s", out)
	}
	if !strings.Contains(out, "file=.eslintrc.js") {
		t.Errorf("file field missing:\n%s", out)
	}
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "loud", Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Debug().Msg("debug line")
	l.Info().Msg("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Error("debug should be filtered at the default level")
	}
	if !strings.Contains(out, "info line") {
		t.Error("info should pass at the default level")
	}
}
