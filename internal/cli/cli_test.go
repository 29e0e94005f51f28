package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaklabco/camelsnake/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "camelsnake" {
		t.Errorf("expected Use to be 'camelsnake', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"rename", "line", "init", "restore", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q", name)
		}
	}
}

func TestRenameCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	renameCmd, _, err := cmd.Find([]string{"rename"})
	if err != nil {
		t.Fatalf("find rename: %v", err)
	}

	flags := []string{
		"rewrite", "dry-run", "check", "format", "jobs", "ignore",
		"no-backups", "short-identifiers", "detect-language", "progress", "compact",
	}
	for _, name := range flags {
		if renameCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected rename flag %q", name)
		}
	}

	if got := renameCmd.Flags().Lookup("format").DefValue; got != "text" {
		t.Errorf("expected format default 'text', got %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"test-version", "test-commit", "test-date"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected version output to contain %q, got %q", want, output)
		}
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--color", "never", "rename", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Usage:", "camelsnake rename [paths...]", "Flags:", "--rewrite", "Global Flags:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q, got:\n%s", want, output)
		}
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"rename", "--no-such-flag"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if code := cli.ExitCode(err); code != cli.ExitInvalidUsage {
		t.Errorf("expected exit code %d, got %d", cli.ExitInvalidUsage, code)
	}
}

func TestLineCommandArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"line"})

	err := cmd.Execute()
	if code := cli.ExitCode(err); code != cli.ExitInvalidUsage {
		t.Errorf("expected exit code %d for missing argument, got %d (%v)", cli.ExitInvalidUsage, code, err)
	}
}
