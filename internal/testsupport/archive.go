package testsupport

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
)

// ZipArchive builds an in-memory zip holding the given name -> content entries.
func ZipArchive(t testing.TB, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// ArchiveServer serves a fixed payload and counts requests.
type ArchiveServer struct {
	*httptest.Server
	hits atomic.Int32
}

// NewArchiveServer starts a server answering every request with payload and
// the given status code. It is closed when the test ends.
func NewArchiveServer(t testing.TB, payload []byte, status int) *ArchiveServer {
	t.Helper()

	srv := &ArchiveServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.WriteHeader(status)
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Hits returns the number of requests served so far.
func (s *ArchiveServer) Hits() int {
	return int(s.hits.Load())
}

// ArchiveURL returns a download URL ending in a .zip file name.
func (s *ArchiveServer) ArchiveURL() string {
	return s.URL + "/sjp-test.zip"
}

// WriteFile creates path (and its parent directories) with content.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
