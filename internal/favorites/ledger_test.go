package favorites

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	l := Open(path, zap.NewNop().Sugar(), nil)

	if l.IsFavorite("s1") {
		t.Fatal("fresh ledger should be empty")
	}
	if added := l.Toggle("s1"); !added {
		t.Fatal("first toggle should report added")
	}
	if !l.IsFavorite("s1") {
		t.Fatal("s1 should be favorited after toggle")
	}
	if added := l.Toggle("s1"); added {
		t.Fatal("second toggle should report removed")
	}
	if l.IsFavorite("s1") {
		t.Fatal("s1 should be gone after second toggle")
	}
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	l := Open(path, zap.NewNop().Sugar(), nil)
	l.Toggle("s1")
	l.Toggle("s2")
	l.Toggle("s1")

	reopened := Open(path, zap.NewNop().Sugar(), nil)
	if reopened.IsFavorite("s1") {
		t.Error("s1 was toggled off and should not survive reopen")
	}
	if !reopened.IsFavorite("s2") {
		t.Error("s2 should survive reopen")
	}
}

func TestIDsInsertionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	l := Open(path, zap.NewNop().Sugar(), nil)
	l.Toggle("s2")
	l.Toggle("s1")
	l.Toggle("s3")
	l.Toggle("s1")

	got := l.IDs()
	if len(got) != 2 || got[0] != "s2" || got[1] != "s3" {
		t.Fatalf("IDs() = %v, want [s2 s3]", got)
	}

	// The returned slice is a copy; callers cannot corrupt the ledger.
	got[0] = "mutated"
	if !l.IsFavorite("s2") {
		t.Fatal("mutating the returned slice must not touch the ledger")
	}
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	l := Open(path, zap.NewNop().Sugar(), nil)
	if l.IsFavorite("s1") {
		t.Fatal("corrupt file should load as an empty set")
	}
}

func TestMirrorAdjustments(t *testing.T) {
	type call struct{ method, path string }
	calls := make(chan call, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- call{r.Method, r.URL.Path}
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "favorites.json")
	l := Open(path, zap.NewNop().Sugar(), &CounterMirror{BaseURL: srv.URL, Client: srv.Client()})

	l.Toggle("s1")
	select {
	case c := <-calls:
		if c.method != http.MethodPost || c.path != "/v1/sales/s1/favorite" {
			t.Fatalf("add mirrored as %s %s", c.method, c.path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("add was never mirrored")
	}

	l.Toggle("s1")
	select {
	case c := <-calls:
		if c.method != http.MethodDelete || c.path != "/v1/sales/s1/favorite" {
			t.Fatalf("remove mirrored as %s %s", c.method, c.path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("remove was never mirrored")
	}
}

// The local toggle must succeed even when the mirror target is down.
func TestMirrorFailureIsSwallowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	l := Open(path, zap.NewNop().Sugar(), &CounterMirror{BaseURL: "http://127.0.0.1:1"})
	if added := l.Toggle("s1"); !added {
		t.Fatal("toggle should succeed locally regardless of the mirror")
	}
	if !l.IsFavorite("s1") {
		t.Fatal("local state should be authoritative")
	}
}
