package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelhouse/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	dataDir    string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("REELHOUSE_DATA_DIR", "")
	t.Setenv("REELHOUSE_LOG_LEVEL", "")
	t.Chdir(base)

	configPath := filepath.Join(homeDir, ".config", "reelhouse", "config.toml")
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n\n[logging]\nlevel = \"error\"\n", cfg.Paths.DataDir)
	testsupport.WriteFile(t, configPath, content)

	return &cliTestEnv{
		configPath: configPath,
		dataDir:    cfg.Paths.DataDir,
		baseDir:    base,
	}
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func (e *cliTestEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("reelhouse %s: %v", strings.Join(args, " "), err)
	}
	return out
}

// seed populates the catalog with a movie and a show and creates alice.
func (e *cliTestEnv) seed(t *testing.T) {
	t.Helper()
	e.mustRun(t, "--admin", "content", "add-movie", "The Matrix",
		"--genre", "Sci-Fi", "--rating", "8.7", "--duration", "136", "--rent-cost", "4", "--purchase-cost", "14.99")
	e.mustRun(t, "--admin", "content", "add-show", "Breaking Bad",
		"--genre", "Drama", "--rating", "9.5", "--seasons", "5", "--episodes", "13", "--rent-cost", "6", "--purchase-cost", "20")
	e.mustRun(t, "signup", "alice")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
