package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/render"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// defaultPreviewAddr is the listen address used when --addr is not given.
const defaultPreviewAddr = ":8347"

// previewPage is the HTML wrapper served at /. It reloads itself every
// two seconds so edits to the labels file show up as they are saved.
const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="2">
<title>labelator - %s</title>
<style>
body { margin: 0; background: #444; display: flex; justify-content: center; }
img { margin: 16px; background: white; box-shadow: 0 2px 12px rgba(0,0,0,0.4); }
</style>
</head>
<body>
<img src="/sheet.svg" alt="%s">
</body>
</html>
`

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	addr      string // listen address
	sheetName string // sheet name from --sheet
	sheetFile string // custom sheet definitions from --sheet-file
	order     string // fill order for flat label lists
	style     styleOpts
}

// previewCommand creates the preview command serving a live render.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{}

	cmd := &cobra.Command{
		Use:   "preview <labels-file>",
		Short: "Serve a live preview of the rendered sheet over HTTP",
		Long: `Serve a live preview of the rendered sheet over HTTP.

The labels file is rendered again on every page reload, and the page
reloads itself every two seconds, so saved edits show up while you work
on the file. Stop the server with Ctrl-C.

Examples:
  labelator preview tubes.txt
  labelator preview tubes.txt --addr :9000
  labelator preview plate.csv --sheet-file sheets.toml --sheet my-sheet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultPreviewAddr, "listen address")
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "sheet name (default: $"+EnvSheet+" or "+sheet.FlexiLabels260+")")
	cmd.Flags().StringVar(&opts.sheetFile, "sheet-file", "", "TOML file with extra sheet definitions")
	cmd.Flags().StringVar(&opts.order, "order", "", `fill order for flat label lists: "row" or "col"`)
	registerStyleFlags(cmd, &opts.style)

	return cmd
}

// runPreview serves the preview until the context is cancelled.
func (c *CLI) runPreview(ctx context.Context, input string, opts previewOpts) error {
	params, err := resolveSheet(opts.sheetName, opts.sheetFile)
	if err != nil {
		return err
	}

	// Render once up front so a broken labels file fails before the
	// server starts.
	if _, err := renderPreview(ctx, input, opts, params); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    opts.addr,
		Handler: c.previewHandler(input, opts, params),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	printSuccess("Previewing %s on %s", input, params.Name)
	fmt.Println("  " + StyleLink.Render(previewURL(opts.addr)))
	printNewline()
	printDetail("The page reloads every 2s; Ctrl-C stops the server")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// previewHandler builds the preview router: the HTML wrapper page at /
// and a freshly rendered sheet at /sheet.svg.
func (c *CLI) previewHandler(input string, opts previewOpts, params sheet.Parameters) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, previewPage, input, input)
	})

	r.Get("/sheet.svg", func(w http.ResponseWriter, req *http.Request) {
		doc, err := renderPreview(req.Context(), input, opts, params)
		if err != nil {
			c.Logger.Errorf("Preview render failed: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		c.Logger.Debugf("Rendered preview: %d labels", doc.Drawn)

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc.Bytes())
	})

	return r
}

// renderPreview loads the labels file and renders it against the sheet.
func renderPreview(ctx context.Context, input string, opts previewOpts, params sheet.Parameters) (*render.Document, error) {
	in, err := label.LoadLabels(input)
	if err != nil {
		return nil, err
	}
	if opts.order != "" {
		in.Order = label.Order(opts.order)
	}

	grid, err := label.Normalize(in, params)
	if err != nil {
		return nil, err
	}
	return render.Render(ctx, grid, opts.style.renderOptions(), params)
}

// previewURL turns a listen address into a clickable URL, assuming
// localhost when the address has no host part.
func previewURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}
