package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/config"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestRootCmdStructure(t *testing.T) {
	root := rootCmd()

	if root.Name() != "accdash" {
		t.Errorf("root Name = %q, want %q", root.Name(), "accdash")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatal("missing --config persistent flag")
	}
	for _, name := range []string{"listen", "plain"} {
		if root.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}

	subs := map[string]bool{}
	for _, sub := range root.Commands() {
		subs[sub.Name()] = true
	}
	for _, want := range []string{"init", "config"} {
		if !subs[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestRootCmdRequiresServer(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error without a server address")
	}
}

func TestRootCmdRejectsEmptyServer(t *testing.T) {
	for _, server := range []string{"", "  "} {
		root := rootCmd()
		root.SetArgs([]string{server})
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})

		err := root.Execute()
		if err == nil {
			t.Fatalf("server %q: expected error", server)
		}
		if !strings.Contains(err.Error(), "server address must not be empty") {
			t.Errorf("server %q: error = %v", server, err)
		}
	}
}

func TestRootCmdInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("[network]\npeer_port = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	root.SetArgs([]string{"--config", path, "127.0.0.1"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected config validation error")
	}
	if !strings.Contains(err.Error(), "peer_port") {
		t.Errorf("error should mention peer_port, got: %v", err)
	}
}

func TestInitCmdExecution(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd := initCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("initCmd RunE: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err != nil {
		t.Errorf("expected %s to exist: %v", config.FileName, err)
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output = %q, want Created message", out.String())
	}
}

func TestInitCmdRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd1 := initCmd()
	cmd1.SetOut(&bytes.Buffer{})
	if err := cmd1.RunE(cmd1, nil); err != nil {
		t.Fatalf("first initCmd RunE: %v", err)
	}

	cmd2 := initCmd()
	cmd2.SetOut(&bytes.Buffer{})
	if err := cmd2.RunE(cmd2, nil); err == nil {
		t.Fatal("second init should refuse to overwrite accdash.toml")
	}
}

func TestConfigCmdDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config"})

	if err := root.Execute(); err != nil {
		t.Fatalf("config: %v", err)
	}
	got := out.String()
	for _, want := range []string{"# source: built-in defaults", "[network]", "peer_port = 9000", "[thresholds"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, got)
		}
	}
}

func TestConfigCmdExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[network]\npeer_port = 9100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config", "--config", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("config: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "# source: "+path) {
		t.Errorf("output should name the source file\ngot:\n%s", got)
	}
	if !strings.Contains(got, "peer_port = 9100") {
		t.Errorf("output should carry the file value\ngot:\n%s", got)
	}
}

func TestConfigCmdMissingFile(t *testing.T) {
	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config", "--config", filepath.Join(t.TempDir(), "nope.toml")})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}
