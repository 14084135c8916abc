// Package cli implements the labelator command-line interface.
//
// This package provides commands for rendering label manifests onto
// sticker sheets, inspecting the available sheet geometries, and serving
// a live preview while a manifest is being edited. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - write: Render a label manifest and export SVG, PDF, or PNG files
//   - sheets: List sheet geometries, or pick one interactively
//   - preview: Serve the rendered sheet over HTTP with live reload
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/buildinfo"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "labelator"

	// EnvSheet names the environment variable holding the default sheet
	// name used when --sheet is not given.
	EnvSheet = "LABELATOR_SHEET"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The --verbose flag switches the logger to debug level and
// registers log-backed render and export hooks; the logger is attached to
// the command context so every command reaches it via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Labelator lays out text labels on sticker sheets",
		Long:         `Labelator places short text labels on the circular sticker regions of a label sheet, for example tube or plate labels on an A4 sticker product, and exports the result as SVG, PDF, or PNG ready for printing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
				registerLogHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.writeCommand())
	root.AddCommand(c.sheetsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Sheet Resolution
// =============================================================================

// resolveSheet picks the sheet parameters for a command invocation.
// Definitions from --sheet-file take precedence over built-in presets. An
// empty name falls back to LABELATOR_SHEET, then to the only sheet in the
// file, then to the built-in default.
func resolveSheet(name, file string) (sheet.Parameters, error) {
	if name == "" {
		name = os.Getenv(EnvSheet)
	}

	var fromFile map[string]sheet.Parameters
	if file != "" {
		var err error
		fromFile, err = sheet.LoadSheets(file)
		if err != nil {
			return sheet.Parameters{}, err
		}
	}

	if name == "" {
		if len(fromFile) == 1 {
			for _, p := range fromFile {
				return p, nil
			}
		}
		return sheet.Default(), nil
	}
	if p, ok := fromFile[name]; ok {
		return p, nil
	}
	if p, ok := sheet.Lookup(name); ok {
		return p, nil
	}

	fileNames := maps.Keys(fromFile)
	slices.Sort(fileNames)
	available := append(sheet.Names(), fileNames...)
	return sheet.Parameters{}, errors.New(errors.ErrCodeInvalidSheet,
		"unknown sheet %q, available: %s", name, strings.Join(available, ", "))
}
