package sheet

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
)

// ReadSheets decodes sheet definitions from TOML.
//
// The document holds one [sheets.<name>] table per sheet:
//
//	[sheets.flexilabels-260-per-a4-sheet]
//	x_multiplier = 49.16
//	y_multiplier = 49.16
//	x_offset = 102.0
//	y_offset = 94.5
//	radius = 19.0
//	font_size = 8.0
//	page_width = 794
//	page_height = 1123
//	rows = 20
//	cols = 13
//
// Every sheet is validated; the first invalid sheet fails the whole read.
// The returned map is keyed by sheet name. ReadSheets does not close r.
func ReadSheets(r io.Reader) (map[string]Parameters, error) {
	var file sheetsFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSheet, err, "parse sheet definitions")
	}
	if len(file.Sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSheet, "no [sheets.<name>] tables found")
	}

	sheets := make(map[string]Parameters, len(file.Sheets))
	for name, c := range file.Sheets {
		p := Parameters{
			Name:            name,
			XMultiplier:     c.XMultiplier,
			YMultiplier:     c.YMultiplier,
			XOffset:         c.XOffset,
			YOffset:         c.YOffset,
			Radius:          c.Radius,
			DefaultFontSize: c.FontSize,
			PageWidth:       c.PageWidth,
			PageHeight:      c.PageHeight,
			Rows:            c.Rows,
			Cols:            c.Cols,
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		sheets[name] = p
	}
	return sheets, nil
}

// LoadSheets reads a TOML sheet-definition file at path.
// See [ReadSheets] for the document format.
func LoadSheets(path string) (map[string]Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadSheets(f)
}

type sheetsFile struct {
	Sheets map[string]sheetConfig `toml:"sheets"`
}

type sheetConfig struct {
	XMultiplier float64 `toml:"x_multiplier"`
	YMultiplier float64 `toml:"y_multiplier"`
	XOffset     float64 `toml:"x_offset"`
	YOffset     float64 `toml:"y_offset"`
	Radius      float64 `toml:"radius"`
	FontSize    float64 `toml:"font_size"`
	PageWidth   float64 `toml:"page_width"`
	PageHeight  float64 `toml:"page_height"`
	Rows        int     `toml:"rows"`
	Cols        int     `toml:"cols"`
}
