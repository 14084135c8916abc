package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/observability"
)

// registerLogHooks wires the observability hooks to the CLI logger so that
// --verbose runs show per-stage timings.
func registerLogHooks(l *log.Logger) {
	observability.SetRenderHooks(&logRenderHooks{logger: l})
	observability.SetExportHooks(&logExportHooks{logger: l})
}

type logRenderHooks struct {
	logger *log.Logger
}

func (h *logRenderHooks) OnRenderStart(_ context.Context, sheetName string, labelCount int) {
	h.logger.Debugf("Rendering %d labels on %s", labelCount, sheetName)
}

func (h *logRenderHooks) OnRenderComplete(_ context.Context, sheetName string, drawn int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Render on %s failed after %s: %v", sheetName, d.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("Rendered %d labels on %s (%s)", drawn, sheetName, d.Round(time.Millisecond))
}

type logExportHooks struct {
	logger *log.Logger
}

func (h *logExportHooks) OnExportStart(_ context.Context, format, path string) {
	h.logger.Debugf("Exporting %s to %s", format, path)
}

func (h *logExportHooks) OnExportComplete(_ context.Context, format, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Export of %s failed after %s: %v", path, d.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("Exported %s (%s)", path, d.Round(time.Millisecond))
}
