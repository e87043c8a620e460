package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"samewords/internal/config"
	"samewords/internal/testsupport"
)

const testWordList = "kot, tok\nokt\npies\nKOT\n\nkoty,kto\n"

type cliTestEnv struct {
	cfg        *config.Config
	server     *testsupport.ArchiveServer
	configPath string
}

func setupCLITestEnv(t *testing.T, status int, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SAMEWORDS_SOURCE_URL", "")
	t.Setenv("SAMEWORDS_DATA_DIR", "")

	payload := testsupport.ZipArchive(t, map[string]string{"odm.txt": testWordList})
	server := testsupport.NewArchiveServer(t, payload, status)

	opts = append([]testsupport.ConfigOption{testsupport.WithSourceURL(server.ArchiveURL())}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "samewords.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, server: server, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

