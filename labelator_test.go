package labelator_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UC-Davis-molecular-computing/labelator"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/render"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

func smallSheet(rows, cols int) sheet.Parameters {
	return sheet.Parameters{
		Name:            "test-sheet",
		XMultiplier:     10,
		YMultiplier:     10,
		XOffset:         5,
		YOffset:         5,
		Radius:          4,
		DefaultFontSize: 8,
		PageWidth:       100,
		PageHeight:      100,
		Rows:            rows,
		Cols:            cols,
	}
}

func TestWriteLabels(t *testing.T) {
	target := filepath.Join(t.TempDir(), "tubes.svg")
	in := label.FromList([]string{"10 nM\nsample1", "10 nM\nsample2"}, label.OrderRow)

	doc, err := labelator.WriteLabels(context.Background(), target, in, render.DefaultOptions(), sheet.Default())
	if err != nil {
		t.Fatalf("WriteLabels() error = %v", err)
	}
	if doc.Drawn != 2 {
		t.Errorf("Drawn = %d, want 2", doc.Drawn)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), ">sample1</tspan>") {
		t.Errorf("output missing label text:\n%s", data)
	}
}

func TestWriteLabelsRejectsOverflow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "tubes.svg")
	in := label.FromList([]string{"a", "b", "c", "d", "e"}, label.OrderRow)

	doc, err := labelator.WriteLabels(context.Background(), target, in, render.DefaultOptions(), smallSheet(2, 2))
	if doc != nil {
		t.Error("WriteLabels() returned a document for rejected input")
	}
	if !errors.Is(err, errors.ErrCodeTooManyLabels) {
		t.Fatalf("WriteLabels() error = %v, want code %s", err, errors.ErrCodeTooManyLabels)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Errorf("WriteLabels() left a file behind at %s", target)
	}
}

func TestRenderLabelsColumnOrder(t *testing.T) {
	in := label.FromList([]string{"one", "two", "three", "four"}, label.OrderCol)

	doc, err := labelator.RenderLabels(context.Background(), in, render.DefaultOptions(), smallSheet(3, 2))
	if err != nil {
		t.Fatalf("RenderLabels() error = %v", err)
	}
	if doc.Drawn != 4 {
		t.Errorf("Drawn = %d, want 4", doc.Drawn)
	}

	// Column-major fill wraps to column 1 after three labels, so "four"
	// lands at (0, 1): x = 5 + 10, y = 5 + 2*10 with row 0 at the bottom.
	if !strings.Contains(doc.SVG(), `<tspan x="15.00">four</tspan>`) {
		t.Errorf("label \"four\" not in second column:\n%s", doc.SVG())
	}
}

func ExampleRenderLabels() {
	in := label.FromList([]string{"A1", "A2", "A3"}, label.OrderRow)

	doc, err := labelator.RenderLabels(context.Background(), in, render.DefaultOptions(), sheet.Default())
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Printf("%d labels on %s\n", doc.Drawn, sheet.Default().Name)
	// Output: 3 labels on flexilabels-260-per-a4-sheet
}
