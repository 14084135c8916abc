package render

import (
	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// Default styling values applied by ValidateAndSetDefaults.
const (
	// DefaultFontFamily is the font used when none is requested.
	DefaultFontFamily = "Helvetica"

	// DefaultFontWeight is the font weight used when none is requested.
	DefaultFontWeight = "normal"

	// DefaultLineHeight is the per-line spacing factor in em.
	DefaultLineHeight = 1.0

	// DefaultCircleStrokeWidth is the sticker boundary stroke width.
	DefaultCircleStrokeWidth = 1.33
)

// Options configures one render pass.
//
// The zero value draws no circles; start from [DefaultOptions] to get the
// usual styling and override fields from there.
type Options struct {
	// FontSize in pixels. Zero means the sheet's default font size.
	FontSize float64

	// FontFamily is the CSS font family for label text.
	FontFamily string

	// FontWeight is the CSS font weight for label text.
	FontWeight string

	// DXTextEm and DYTextEm nudge every label block horizontally and
	// vertically, in em units. Useful to fine-tune alignment for a
	// particular printer without touching the sheet geometry.
	DXTextEm float64
	DYTextEm float64

	// LineHeight is the vertical distance between the lines of a
	// multi-line label, in em. Zero means DefaultLineHeight.
	LineHeight float64

	// CircleStrokeWidth is the boundary circle stroke width in pixels.
	// Zero means DefaultCircleStrokeWidth.
	CircleStrokeWidth float64

	// ShowCircles draws the sticker boundary circles. Helpful to check
	// alignment on plain paper before committing sticker sheets.
	ShowCircles bool

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the standard styling: boundary circles on, the
// sheet's font size, and the default family, weight, and spacing.
func DefaultOptions() Options {
	return Options{
		FontFamily:        DefaultFontFamily,
		FontWeight:        DefaultFontWeight,
		LineHeight:        DefaultLineHeight,
		CircleStrokeWidth: DefaultCircleStrokeWidth,
		ShowCircles:       true,
	}
}

// ValidateAndSetDefaults checks the options and fills zero values, taking
// the font size from the sheet when unset. This method is idempotent -
// calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults(p sheet.Parameters) error {
	if o.validated {
		return nil
	}

	if o.FontSize == 0 {
		o.FontSize = p.DefaultFontSize
	}
	if o.FontSize < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "font size must be positive, got %g", o.FontSize)
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontWeight == "" {
		o.FontWeight = DefaultFontWeight
	}
	if o.LineHeight == 0 {
		o.LineHeight = DefaultLineHeight
	}
	if o.LineHeight < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "line height must be positive, got %g", o.LineHeight)
	}
	if o.CircleStrokeWidth == 0 {
		o.CircleStrokeWidth = DefaultCircleStrokeWidth
	}
	if o.CircleStrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "circle stroke width must be positive, got %g", o.CircleStrokeWidth)
	}

	o.validated = true
	return nil
}
