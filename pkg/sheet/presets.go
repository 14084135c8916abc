package sheet

import "sort"

// FlexiLabels260 is the name of the built-in preset for FLEXiLABELS
// 260-per-sheet round stickers on A4 paper.
const FlexiLabels260 = "flexilabels-260-per-a4-sheet"

// FlexiLabels260PerA4 describes an A4 sheet of 260 round 10 mm stickers
// (20 rows by 13 columns) at 96 dpi page resolution.
var FlexiLabels260PerA4 = Parameters{
	Name:            FlexiLabels260,
	XMultiplier:     49.16,
	YMultiplier:     49.16,
	XOffset:         102.0,
	YOffset:         94.5,
	Radius:          19.0,
	DefaultFontSize: 8.0,
	PageWidth:       794,
	PageHeight:      1123,
	Rows:            20,
	Cols:            13,
}

// presets holds the built-in sheets, keyed by name.
var presets = map[string]Parameters{
	FlexiLabels260: FlexiLabels260PerA4,
}

// Default returns the sheet used when the caller does not pick one.
func Default() Parameters {
	return FlexiLabels260PerA4
}

// Names returns the built-in preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in preset with the given name.
func Lookup(name string) (Parameters, bool) {
	p, ok := presets[name]
	return p, ok
}
