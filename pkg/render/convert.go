package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
)

// EnvConverter names the environment variable that overrides the binary
// used for PDF and PNG conversion. When unset, rsvg-convert is looked up
// on PATH.
const EnvConverter = "LABELATOR_RSVG"

const defaultConverter = "rsvg-convert"

// lookConverter resolves the converter binary for the given target
// format. A missing binary is an EXPORT_UNAVAILABLE error with install
// instructions, raised before any file is touched.
func lookConverter(format Format) (string, error) {
	bin := os.Getenv(EnvConverter)
	if bin == "" {
		bin = defaultConverter
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeExportUnavailable, err,
			"%s export requires librsvg; install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}
	return path, nil
}

// convertDocument converts doc to format at target using the external
// converter. The document is written to a uniquely named intermediate
// SVG file under the system temp directory, converted, and the
// intermediate is removed again, so concurrent conversions never
// collide. A failed conversion removes the target rather than leaving
// partial output behind.
func convertDocument(ctx context.Context, doc *Document, target string, format Format) error {
	bin, err := lookConverter(format)
	if err != nil {
		return err
	}

	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("labelator-%s.svg", uuid.NewString()))
	if err := os.WriteFile(tmp, doc.Bytes(), 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write intermediate %s", tmp)
	}
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, bin, "-f", string(format), "-o", target, tmp)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(target)
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = err.Error()
		}
		cause := &errors.ConverterError{Binary: filepath.Base(bin), Output: output}
		return errors.Wrap(errors.ErrCodeRenderFailed, cause, "convert to %s", target)
	}
	return nil
}
