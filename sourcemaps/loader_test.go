package sourcemaps

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/walysson-bot/vscode-js-debug/internal/testingx"
)

func writeMapFile(t *testing.T, path string, mappings string) {
	t.Helper()
	data := fmt.Sprintf(`{"version":3,"sources":["a.js"],"mappings":%q}`, mappings)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNilLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.js.map")
	writeMapFile(t, path, "AAAA")

	var l *Loader
	m, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 mapping, got %d", m.Len())
	}

	// A second load must re-read rather than hit a cache.
	writeMapFile(t, path, "AAAA;AACA")
	m, err = l.Load(path)
	if err != nil {
		t.Fatalf("Load() after rewrite returned error: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("expected 2 mappings after rewrite, got %d", m.Len())
	}
}

func TestLoaderCachesAndEvicts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.js.map")
	writeMapFile(t, path, "AAAA")

	l := testingx.Must[*Loader](t)(NewLoader())
	defer l.Close()

	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatalf("second Load() returned error: %v", err)
	}
	if first != second {
		t.Error("expected the cached map on the second load")
	}

	writeMapFile(t, path, "AAAA;AACA")
	deadline := time.Now().Add(5 * time.Second)
	for {
		m, err := l.Load(path)
		if err != nil {
			t.Fatalf("Load() after rewrite returned error: %v", err)
		}
		if m.Len() == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cached map was not evicted after the file changed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLoaderDataURI(t *testing.T) {
	var l *Loader
	m, err := l.Load("data:application/json;base64,eyJ2ZXJzaW9uIjozLCJzb3VyY2VzIjpbImEuanMiXSwibWFwcGluZ3MiOiJBQUFBIn0=")
	if err != nil {
		t.Fatalf("Load() of data URI returned error: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 mapping, got %d", m.Len())
	}
}
