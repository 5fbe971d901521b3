package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracker2nuke/internal/config"
	"tracker2nuke/internal/scene"
	"tracker2nuke/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	scenePath  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("TRACKER2NUKE_LOG_LEVEL", "")
	t.Setenv(config.EnvConfigPath, "")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	scenePath := filepath.Join(base, "shot010.yaml")
	data, err := os.ReadFile(filepath.Join("testdata", "shot010.yaml"))
	if err != nil {
		t.Fatalf("read scene fixture: %v", err)
	}
	if err := os.WriteFile(scenePath, data, 0o644); err != nil {
		t.Fatalf("write scene fixture: %v", err)
	}

	return &cliTestEnv{cfg: cfg, configPath: configPath, scenePath: scenePath, baseDir: base}
}

// editScene rewrites the env's scene document through fn.
func (e *cliTestEnv) editScene(t *testing.T, fn func(*scene.Clip)) {
	t.Helper()
	s, err := scene.Load(e.scenePath)
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	fn(&s.Clip)
	if err := s.Save(scene.SaveOptions{}); err != nil {
		t.Fatalf("save scene: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, nil)
}

func runCLIWithInput(t *testing.T, args []string, configPath string, stdin io.Reader) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nlog_dir = %q\ndata_dir = %q\n\n[scene]\nbackup_on_write = %t\n\n[history]\nenabled = %t\n\n[logging]\nlevel = \"warn\"\n",
		cfg.Paths.LogDir,
		cfg.Paths.DataDir,
		cfg.Scene.BackupOnWrite,
		cfg.History.Enabled,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
