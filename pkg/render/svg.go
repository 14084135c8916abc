package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo/float"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/observability"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// coordDecimals is the precision for page coordinates written into text
// elements. Two decimals keep sub-pixel pitch (49.16) exact enough for
// print while producing stable, diffable output.
const coordDecimals = 2

// Document is a rendered sheet held in memory as SVG. It is returned by
// every render call, including exporting ones, so callers can preview
// what was written.
type Document struct {
	Width  float64 // page width in pixels
	Height float64 // page height in pixels
	Drawn  int     // positions that produced primitives
	Blank  int     // occupied positions skipped as empty or whitespace

	data []byte
}

// Bytes returns the serialized SVG.
func (d *Document) Bytes() []byte { return d.data }

// SVG returns the serialized SVG as a string.
func (d *Document) SVG() string { return string(d.data) }

// WriteTo writes the serialized SVG to w, implementing [io.WriterTo].
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.data)
	return int64(n), err
}

// Render builds the SVG document for a normalized grid on the given sheet.
//
// Positions are processed in sorted (row, col) order, so identical inputs
// produce byte-identical documents. Every position whose text is non-empty
// after trimming whitespace gets an optional boundary circle and a
// centered text block; whitespace-only positions are counted in
// [Document.Blank] and draw nothing.
func Render(ctx context.Context, grid label.Grid, opts Options, p sheet.Parameters) (*Document, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, p.Name, len(grid))

	doc, err := renderDocument(grid, opts, p)

	drawn := 0
	if doc != nil {
		drawn = doc.Drawn
	}
	observability.Render().OnRenderComplete(ctx, p.Name, drawn, time.Since(start), err)
	return doc, err
}

func renderDocument(grid label.Grid, opts Options, p sheet.Parameters) (*Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(p); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(p.PageWidth, p.PageHeight)

	doc := &Document{Width: p.PageWidth, Height: p.PageHeight}
	circleStyle := fmt.Sprintf("fill:none;stroke:black;stroke-width:%g", opts.CircleStrokeWidth)

	for _, pos := range grid.Positions() {
		if !p.ContainsRow(pos.Row) {
			return nil, errors.New(errors.ErrCodeOutOfBounds, "row %d is out of bounds, must be in range [0, %d]", pos.Row, p.Rows-1)
		}
		if !p.ContainsCol(pos.Col) {
			return nil, errors.New(errors.ErrCodeOutOfBounds, "col %d is out of bounds, must be in range [0, %d]", pos.Col, p.Cols-1)
		}

		text := grid[pos]
		if strings.TrimSpace(text) == "" {
			doc.Blank++
			continue
		}

		x, y := p.CellCenter(pos.Row, pos.Col)
		if opts.ShowCircles {
			canvas.Circle(x, y, p.Radius, circleStyle)
		}
		writeTextBlock(&buf, x, y, text, opts)
		doc.Drawn++
	}

	canvas.End()
	doc.data = buf.Bytes()
	return doc, nil
}

// writeTextBlock emits one label as a text element with one tspan per
// line. The first line's dy pulls the block up by half its extra height
// so the block midpoint, not the first baseline, sits on (x, y).
func writeTextBlock(buf *bytes.Buffer, x, y float64, text string, opts Options) {
	lines := strings.Split(text, "\n")
	firstDY := opts.DYTextEm - float64(len(lines)-1)/2*opts.LineHeight

	fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" style=\"%s\">\n", coord(x), coord(y), textStyle(opts))
	for i, line := range lines {
		dy := opts.LineHeight
		if i == 0 {
			dy = firstDY
		}
		buf.WriteString(`<tspan x="` + coord(x) + `"`)
		if opts.DXTextEm != 0 {
			fmt.Fprintf(buf, ` dx="%gem"`, opts.DXTextEm)
		}
		if dy != 0 {
			fmt.Fprintf(buf, ` dy="%gem"`, dy)
		}
		buf.WriteString(">" + escapeXML(line) + "</tspan>\n")
	}
	buf.WriteString("</text>\n")
}

// textStyle builds the CSS for a label text element. Family and weight
// are passed through as CSS values, matching what the pdf converter and
// browsers expect.
func textStyle(opts Options) string {
	return fmt.Sprintf("text-anchor:middle;dominant-baseline:middle;font-size:%gpx;font-family:'%s';font-weight:%s;fill:black",
		opts.FontSize, opts.FontFamily, opts.FontWeight)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', coordDecimals, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
