package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/render"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// =============================================================================
// Style Flags
// =============================================================================

// styleOpts holds the text and circle styling flags shared by the write
// and preview commands.
type styleOpts struct {
	fontSize    float64 // label font size in px (0 means the sheet's default)
	fontFamily  string  // CSS font family
	fontWeight  string  // CSS font weight
	dx          float64 // horizontal text nudge in em
	dy          float64 // vertical text nudge in em
	lineHeight  float64 // line height in em for multi-line labels
	strokeWidth float64 // sticker outline stroke width
	noCircles   bool    // hide the sticker outline circles
}

// registerStyleFlags adds the shared styling flags to cmd.
func registerStyleFlags(cmd *cobra.Command, o *styleOpts) {
	cmd.Flags().Float64Var(&o.fontSize, "font-size", 0, "font size in px (default: the sheet's font size)")
	cmd.Flags().StringVar(&o.fontFamily, "font-family", render.DefaultFontFamily, "font family")
	cmd.Flags().StringVar(&o.fontWeight, "font-weight", render.DefaultFontWeight, "font weight, e.g. normal or bold")
	cmd.Flags().Float64Var(&o.dx, "dx", 0, "horizontal text nudge in em")
	cmd.Flags().Float64Var(&o.dy, "dy", 0, "vertical text nudge in em")
	cmd.Flags().Float64Var(&o.lineHeight, "line-height", render.DefaultLineHeight, "line height in em for multi-line labels")
	cmd.Flags().Float64Var(&o.strokeWidth, "stroke-width", render.DefaultCircleStrokeWidth, "sticker outline stroke width in px")
	cmd.Flags().BoolVar(&o.noCircles, "no-circles", false, "hide the sticker outline circles")
}

// renderOptions converts the flag values into render options. Zero
// values keep the render defaults, so an empty styleOpts is usable.
func (o *styleOpts) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.FontSize = o.fontSize
	if o.fontFamily != "" {
		opts.FontFamily = o.fontFamily
	}
	if o.fontWeight != "" {
		opts.FontWeight = o.fontWeight
	}
	opts.DXTextEm = o.dx
	opts.DYTextEm = o.dy
	if o.lineHeight != 0 {
		opts.LineHeight = o.lineHeight
	}
	if o.strokeWidth != 0 {
		opts.CircleStrokeWidth = o.strokeWidth
	}
	opts.ShowCircles = !o.noCircles
	return opts
}

// =============================================================================
// Write Command
// =============================================================================

// writeOpts holds the command-line flags for the write command.
type writeOpts struct {
	outputs   []string // output files; format from each extension
	labels    []string // inline labels given with --label
	sheetName string   // sheet name from --sheet
	sheetFile string   // custom sheet definitions from --sheet-file
	order     string   // fill order for flat label lists
	style     styleOpts
}

// writeCommand creates the write command for rendering label files.
func (c *CLI) writeCommand() *cobra.Command {
	opts := writeOpts{}

	cmd := &cobra.Command{
		Use:   "write [labels-file]",
		Short: "Lay out labels on a sheet and write SVG, PDF, or PNG files",
		Long: `Lay out labels on a sheet and write SVG, PDF, or PNG files.

Labels come from a manifest file (.txt, .csv, .json, or .yaml) or from
repeated --label flags. Each output file's format follows from its
extension; PDF and PNG need rsvg-convert from librsvg installed.

Examples:
  labelator write tubes.txt                        # writes tubes.pdf
  labelator write tubes.txt -o tubes.svg           # SVG needs no converter
  labelator write plate.csv -o a.pdf -o a.png      # several outputs, one render
  labelator write --label DNA1 --label 'DNA2\n5uL' # inline labels`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return c.runWrite(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.outputs, "output", "o", nil, "output file, repeatable (default: labels file with .pdf extension)")
	cmd.Flags().StringArrayVar(&opts.labels, "label", nil, `inline label text, repeatable; a literal \n becomes a line break`)
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "sheet name (default: $"+EnvSheet+" or "+sheet.FlexiLabels260+")")
	cmd.Flags().StringVar(&opts.sheetFile, "sheet-file", "", "TOML file with extra sheet definitions")
	cmd.Flags().StringVar(&opts.order, "order", "", `fill order for flat label lists: "row" or "col"`)
	registerStyleFlags(cmd, &opts.style)

	return cmd
}

// runWrite loads the labels, renders them once, and exports every
// requested output from that single render.
func (c *CLI) runWrite(ctx context.Context, input string, opts writeOpts) error {
	logger := loggerFromContext(ctx)

	in, err := collectInput(input, opts.labels)
	if err != nil {
		return err
	}
	if opts.order != "" {
		in.Order = label.Order(opts.order)
	}

	params, err := resolveSheet(opts.sheetName, opts.sheetFile)
	if err != nil {
		return err
	}

	outputs := opts.outputs
	if len(outputs) == 0 {
		outputs = []string{defaultOutput(input)}
	}
	// Reject bad extensions before rendering anything.
	formats := make([]render.Format, len(outputs))
	for i, out := range outputs {
		format, err := render.FormatForFilename(out)
		if err != nil {
			return err
		}
		formats[i] = format
	}

	grid, err := label.Normalize(in, params)
	if err != nil {
		return err
	}
	logger.Debugf("Normalized %d labels for %s", len(grid), params.Name)

	prog := newProgress(logger)
	doc, err := render.Render(ctx, grid, opts.style.renderOptions(), params)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d labels", doc.Drawn))

	for i, out := range outputs {
		if err := c.export(ctx, doc, out, formats[i]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %d labels on %s", doc.Drawn, params.Name)
	for _, out := range outputs {
		printFile(out)
	}
	printCounts(doc.Drawn, doc.Blank, params.Capacity())
	if input != "" {
		printNewline()
		printNextStep("Preview", appName+" preview "+input)
	}
	return nil
}

// export writes one output file, showing a spinner while the external
// converter runs.
func (c *CLI) export(ctx context.Context, doc *render.Document, out string, format render.Format) error {
	if !format.NeedsConverter() {
		return render.Export(ctx, doc, out)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting to %s...", format))
	spinner.Start()
	if err := render.Export(ctx, doc, out); err != nil {
		spinner.StopWithError(fmt.Sprintf("Conversion to %s failed", format))
		return err
	}
	spinner.Stop()
	return nil
}

// collectInput builds the label input from the positional file argument
// or the --label flags. Exactly one source must be given.
func collectInput(input string, inline []string) (label.Input, error) {
	switch {
	case input == "" && len(inline) == 0:
		return label.Input{}, errors.New(errors.ErrCodeInvalidInput, "no labels given: pass a labels file or at least one --label")
	case input != "" && len(inline) > 0:
		return label.Input{}, errors.New(errors.ErrCodeInvalidInput, "ambiguous labels: pass a labels file or --label flags, not both")
	case input != "":
		return label.LoadLabels(input)
	default:
		labels := make([]string, len(inline))
		for i, l := range inline {
			labels[i] = strings.ReplaceAll(l, `\n`, "\n")
		}
		return label.FromList(labels, ""), nil
	}
}

// defaultOutput derives the output path when no -o flag is given: the
// labels file with a .pdf extension, or labels.pdf for inline labels.
func defaultOutput(input string) string {
	if input == "" {
		return "labels.pdf"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}
