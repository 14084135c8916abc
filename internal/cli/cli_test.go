package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	if c.Logger == nil {
		t.Fatal("New() returned CLI with nil logger")
	}

	c.Logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("CLI logger should write to the given writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should appear after SetLogLevel(LogDebug)")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	if root.Use != "labelator" {
		t.Errorf("root.Use = %q, want %q", root.Use, "labelator")
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage output on errors")
	}

	for _, name := range []string{"write", "sheets", "preview", "completion"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

// =============================================================================
// Sheet Resolution
// =============================================================================

const miniBadgeTOML = `
[sheets.mini-badge]
x_multiplier = 30.0
y_multiplier = 30.0
x_offset = 20.0
y_offset = 20.0
radius = 12.0
font_size = 6.0
page_width = 300.0
page_height = 200.0
rows = 4
cols = 8
`

func writeSheetFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheets.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSheetDefault(t *testing.T) {
	t.Setenv(EnvSheet, "")

	p, err := resolveSheet("", "")
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Name != sheet.FlexiLabels260 {
		t.Errorf("resolveSheet() = %q, want default %q", p.Name, sheet.FlexiLabels260)
	}
}

func TestResolveSheetPreset(t *testing.T) {
	t.Setenv(EnvSheet, "")

	p, err := resolveSheet(sheet.FlexiLabels260, "")
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Rows != 20 || p.Cols != 13 {
		t.Errorf("resolveSheet() grid = %dx%d, want 20x13", p.Rows, p.Cols)
	}
}

func TestResolveSheetFromEnv(t *testing.T) {
	t.Setenv(EnvSheet, "mini-badge")
	file := writeSheetFile(t, miniBadgeTOML)

	p, err := resolveSheet("", file)
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Name != "mini-badge" {
		t.Errorf("resolveSheet() = %q, want env-selected %q", p.Name, "mini-badge")
	}
}

func TestResolveSheetEnvUnknown(t *testing.T) {
	t.Setenv(EnvSheet, "no-such-sheet")

	_, err := resolveSheet("", "")
	if !errors.Is(err, errors.ErrCodeInvalidSheet) {
		t.Fatalf("resolveSheet() error = %v, want INVALID_SHEET", err)
	}
}

func TestResolveSheetFromFile(t *testing.T) {
	t.Setenv(EnvSheet, "")
	file := writeSheetFile(t, miniBadgeTOML)

	p, err := resolveSheet("mini-badge", file)
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Rows != 4 || p.Cols != 8 {
		t.Errorf("resolveSheet() grid = %dx%d, want 4x8", p.Rows, p.Cols)
	}
}

func TestResolveSheetSingleFileSheet(t *testing.T) {
	t.Setenv(EnvSheet, "")
	file := writeSheetFile(t, miniBadgeTOML)

	// No name given: the file's only sheet wins over the built-in default.
	p, err := resolveSheet("", file)
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Name != "mini-badge" {
		t.Errorf("resolveSheet() = %q, want the file's sheet %q", p.Name, "mini-badge")
	}
}

func TestResolveSheetFilePrecedence(t *testing.T) {
	t.Setenv(EnvSheet, "")
	file := writeSheetFile(t, `
[sheets.`+sheet.FlexiLabels260+`]
x_multiplier = 10.0
y_multiplier = 10.0
x_offset = 5.0
y_offset = 5.0
radius = 4.0
font_size = 8.0
page_width = 100.0
page_height = 100.0
rows = 2
cols = 2
`)

	p, err := resolveSheet(sheet.FlexiLabels260, file)
	if err != nil {
		t.Fatalf("resolveSheet() error = %v", err)
	}
	if p.Rows != 2 || p.Cols != 2 {
		t.Errorf("resolveSheet() grid = %dx%d, want the file's 2x2 over the built-in", p.Rows, p.Cols)
	}
}

func TestResolveSheetUnknown(t *testing.T) {
	t.Setenv(EnvSheet, "")
	file := writeSheetFile(t, miniBadgeTOML)

	_, err := resolveSheet("nope", file)
	if !errors.Is(err, errors.ErrCodeInvalidSheet) {
		t.Fatalf("resolveSheet() error = %v, want INVALID_SHEET", err)
	}
	for _, want := range []string{"nope", sheet.FlexiLabels260, "mini-badge"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("resolveSheet() error %q should mention %q", err, want)
		}
	}
}

func TestResolveSheetMissingFile(t *testing.T) {
	t.Setenv(EnvSheet, "")

	_, err := resolveSheet("", filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("resolveSheet() error = %v, want FILE_NOT_FOUND", err)
	}
}
