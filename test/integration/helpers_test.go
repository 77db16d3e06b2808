//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds ~/.lintup/config.yaml
	BinDir     string // prepended to PATH, holds fake npm and yarn
	ProjectDir string // the project being set up
}

// setupTestEnv creates isolated temp directories and installs fake package
// managers on PATH so no real network install happens. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "demo-app"),
	}
	if err := os.MkdirAll(env.ProjectDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	for _, tool := range []string{"npm", "yarn"} {
		writeFakeTool(t, env.BinDir, tool)
	}
	return env
}

// writeFakeTool writes a package manager stand-in. "init" creates a minimal
// package.json; every invocation is appended to <tool>.log.
func writeFakeTool(t *testing.T, binDir, tool string) {
	t.Helper()
	script := `#!/bin/sh
echo "$*" >> "` + filepath.Join(binDir, tool+".log") + `"
if [ "$1" = "init" ]; then
  printf '{\n  "name": "%s",\n  "version": "1.0.0"\n}\n' "$(basename "$PWD")" > package.json
fi
exit 0
`
	writeFile(t, filepath.Join(binDir, tool), script)
	if err := os.Chmod(filepath.Join(binDir, tool), 0755); err != nil {
		t.Fatal(err)
	}
}

// invocations returns the argument lines logged by a fake tool.
func invocations(t *testing.T, binDir, tool string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(binDir, tool+".log"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// assertFileExists fails the test if the path does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// assertFileNotExists fails the test if the path exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}

// assertFileContains fails the test if the file does not contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", path, substr)
	}
}
