package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

func previewTestServer(t *testing.T, labels string) *httptest.Server {
	t.Helper()
	c := New(io.Discard, LogInfo)
	srv := httptest.NewServer(c.previewHandler(labels, previewOpts{}, sheet.Default()))
	t.Cleanup(srv.Close)
	return srv
}

func getBody(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestPreviewHandlerPage(t *testing.T) {
	labels := writeLabelsFile(t, "tubes.txt", "alpha\n")
	srv := previewTestServer(t, labels)

	resp, body := getBody(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(body, "/sheet.svg") {
		t.Error("page should embed /sheet.svg")
	}
	if !strings.Contains(body, `http-equiv="refresh"`) {
		t.Error("page should reload itself")
	}
}

func TestPreviewHandlerSheetSVG(t *testing.T) {
	labels := writeLabelsFile(t, "tubes.txt", "alpha\n")
	srv := previewTestServer(t, labels)

	resp, body := getBody(t, srv.URL+"/sheet.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /sheet.svg status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(body, "<svg") || !strings.Contains(body, ">alpha</tspan>") {
		t.Error("response should be the rendered sheet")
	}
}

func TestPreviewHandlerReflectsEdits(t *testing.T) {
	labels := writeLabelsFile(t, "tubes.txt", "alpha\n")
	srv := previewTestServer(t, labels)

	_, before := getBody(t, srv.URL+"/sheet.svg")
	if !strings.Contains(before, ">alpha</tspan>") {
		t.Fatal("first render should contain the original label")
	}

	if err := os.WriteFile(labels, []byte("beta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, after := getBody(t, srv.URL+"/sheet.svg")
	if !strings.Contains(after, ">beta</tspan>") {
		t.Error("render after editing the file should contain the new label")
	}
	if strings.Contains(after, ">alpha</tspan>") {
		t.Error("render after editing the file should not contain the old label")
	}
}

func TestPreviewHandlerMissingFile(t *testing.T) {
	srv := previewTestServer(t, filepath.Join(t.TempDir(), "absent.txt"))

	resp, _ := getBody(t, srv.URL+"/sheet.svg")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("GET /sheet.svg status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestPreviewURL(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"port only", ":8347", "http://localhost:8347"},
		{"explicit host", "127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"all interfaces", "0.0.0.0:80", "http://localhost:80"},
		{"not host port shaped", "weird", "http://weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := previewURL(tt.addr); got != tt.want {
				t.Errorf("previewURL(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
