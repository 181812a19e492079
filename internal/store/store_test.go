package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.db == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLocalGetMissing(t *testing.T) {
	kv := openTestStore(t).Local()

	v, ok, err := kv.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get(missing) = (%q, %v), want empty and absent", v, ok)
	}
}

func TestLocalSetOverwriteClear(t *testing.T) {
	kv := openTestStore(t).Local()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", `{"ch01":true}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", `{"ch02":true}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != `{"ch02":true}` {
		t.Errorf("Get(k) = (%q, %v), want overwritten value", v, ok)
	}

	if err := kv.Clear(ctx, "k"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("expected key to be cleared")
	}

	// Clearing again is a no-op.
	if err := kv.Clear(ctx, "k"); err != nil {
		t.Errorf("clear missing: %v", err)
	}
}

func TestLocalPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Local().Set(ctx, "genai_course_progress", `{"ch03":true}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.Local().Get(ctx, "genai_course_progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != `{"ch03":true}` {
		t.Errorf("after reopen Get = (%q, %v)", v, ok)
	}
}

func TestLocalClosedReturnsError(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	kv := s.Local()
	s.Close()

	if _, _, err := kv.Get(context.Background(), "k"); err == nil {
		t.Error("expected error from closed store")
	}
	if err := kv.Set(context.Background(), "k", "v"); err == nil {
		t.Error("expected error from closed store")
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, ok, _ := kv.Get(ctx, "lastChapter"); ok {
		t.Fatal("new MemoryKV should be empty")
	}
	_ = kv.Set(ctx, "lastChapter", "ch04")
	v, ok, _ := kv.Get(ctx, "lastChapter")
	if !ok || v != "ch04" {
		t.Errorf("Get = (%q, %v), want ch04", v, ok)
	}
	_ = kv.Clear(ctx, "lastChapter")
	if kv.Len() != 0 {
		t.Errorf("Len() = %d after clear, want 0", kv.Len())
	}
}

func TestOpenLocalBackends(t *testing.T) {
	ctx := context.Background()

	kv, closer, err := OpenLocal(ctx, Options{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := kv.(*MemoryKV); !ok {
		t.Errorf("memory backend returned %T", kv)
	}
	closer.Close()

	path := filepath.Join(t.TempDir(), "nested", "course.db")
	kv, closer, err = OpenLocal(ctx, Options{Backend: BackendSQLite, Path: path})
	if err != nil {
		t.Fatalf("sqlite backend: %v", err)
	}
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Errorf("set via sqlite backend: %v", err)
	}
	closer.Close()

	if _, _, err := OpenLocal(ctx, Options{Backend: "etcd"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
