package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	if rootCmd.Use != "pagectx" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pagectx")
	}

	// Check for expected subcommands (compare by Name(), not Use which includes args)
	expectedCmds := []string{"watch", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestConfigShowCommand(t *testing.T) {
	resetViper(t)

	output, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"logging:", "client:", "host:", "owner_id: braindrive", "history_limit: 10"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show output missing %q\nOutput: %s", want, output)
		}
	}
}

func TestConfigPathCommand(t *testing.T) {
	resetViper(t)

	output, err := executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "config.yaml") {
		t.Errorf("config path output should mention config.yaml\nOutput: %s", output)
	}
	if !strings.Contains(output, "PAGECTX_") {
		t.Errorf("config path output should mention the env prefix\nOutput: %s", output)
	}
}

func TestWatchCommand(t *testing.T) {
	resetViper(t)
	viper.Set("logging.enabled", false)

	output, err := executeCommand(rootCmd, "watch", "--cycles", "1", "--interval-ms", "1")
	if err != nil {
		t.Fatalf("watch failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "Starting on") {
		t.Errorf("watch output should report the initial page\nOutput: %s", output)
	}
	if !strings.Contains(output, "Change history") {
		t.Errorf("watch output should print a history summary\nOutput: %s", output)
	}
	// One full cycle over the default three pages wraps back to the first
	if !strings.Contains(output, "/dashboard") || !strings.Contains(output, "/settings") {
		t.Errorf("watch output should show navigation through the page set\nOutput: %s", output)
	}
}
