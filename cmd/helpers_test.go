package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/ajxudir/pipup/pkg/config"
	"github.com/ajxudir/pipup/pkg/manifest"
)

func init() {
	// Keep assertions free of ANSI escape sequences.
	color.NoColor = true
}

// resetCommandState restores flag values and package globals between test
// executions. Cobra keeps parsed flag values and Changed markers across
// Execute calls, so every test starts from a clean slate.
func resetCommandState(t *testing.T) {
	t.Helper()

	reset := func() {
		for _, name := range []string{"requirements", "skip-file", "config", "backup-dir", "output", "skip-pip", "dry-run", "rewrite-pins", "no-timeout"} {
			f := upgradeCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		for _, name := range []string{"requirements", "config", "output"} {
			f := listCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		for _, name := range []string{"verbose", "quiet"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		verboseFlag = false
		quietFlag = false
	}

	reset()
	t.Cleanup(reset)
}

// executeCommand runs the root command with the given args, capturing stdout
// and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := ExecuteTest()
	return out.String(), errOut.String(), err
}

// useWorkDir points the command's working directory at dir for the duration
// of the test.
func useWorkDir(t *testing.T, dir string) {
	t.Helper()

	oldGetwd := getwdFunc
	getwdFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwdFunc = oldGetwd })
}

// writeManifest writes a requirements file into dir and returns its path.
func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

// stubRunner is a pip test double for command tests.
//
// Versions are keyed by normalized package name. InstallLatest returns the
// configured version, the empty string when absent (already satisfied), or
// the configured error.
type stubRunner struct {
	installed    map[string]string
	latest       map[string]string
	installs     map[string]string
	installErrs  map[string]error
	checkErr     error
	selfErr      error
	installCalls []string
	selfCalls    int
}

func (s *stubRunner) CheckAvailable(_ context.Context) error {
	return s.checkErr
}

func (s *stubRunner) Installed(_ context.Context) (map[string]string, error) {
	if s.installed == nil {
		return map[string]string{}, nil
	}
	return s.installed, nil
}

func (s *stubRunner) Latest(_ context.Context, name string) (string, error) {
	v := s.latest[manifest.NormalizeName(name)]
	if v == "" {
		return "", fmt.Errorf("could not find a version for %s in index output", name)
	}
	return v, nil
}

func (s *stubRunner) InstallLatest(_ context.Context, name string) (string, error) {
	key := manifest.NormalizeName(name)
	s.installCalls = append(s.installCalls, key)
	if err := s.installErrs[key]; err != nil {
		return "", err
	}
	return s.installs[key], nil
}

func (s *stubRunner) SelfUpgrade(_ context.Context) error {
	s.selfCalls++
	return s.selfErr
}

// useRunner installs a stub runner factory for the duration of the test.
func useRunner(t *testing.T, runner *stubRunner) {
	t.Helper()

	oldNew := newRunnerFunc
	newRunnerFunc = func(cfg *config.Config) pipRunner { return runner }
	t.Cleanup(func() { newRunnerFunc = oldNew })
}
