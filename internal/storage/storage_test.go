package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logx "onepaslots/pkg/logx"
)

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "available_slots.json")
	st, err := Open(Config{Driver: "file", Path: path}, logx.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.Save(ctx, map[string]int{"first": 1}); err != nil {
		t.Fatalf("Save #1: %v", err)
	}
	if err := st.Save(ctx, map[string]int{"second": 2}); err != nil {
		t.Fatalf("Save #2: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got["second"] != 2 {
		t.Fatalf("expected only the second document, got %v", got)
	}
	if !strings.Contains(string(b), "\n  \"second\": 2") {
		t.Fatalf("expected 2-space indentation, got %q", b)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestFileStore_EncodeErrorKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	st, err := Open(Config{Path: path}, logx.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := st.Save(context.Background(), []int{1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Save(context.Background(), make(chan int)); err == nil {
		t.Fatalf("expected encode error")
	}
	b, _ := os.ReadFile(path)
	if strings.TrimSpace(string(b)) != "[\n  1\n]" {
		t.Fatalf("previous content lost: %q", b)
	}
}

func TestOpen_Drivers(t *testing.T) {
	st, err := Open(Config{Driver: "none"}, logx.Nop())
	if err != nil {
		t.Fatalf("Open none: %v", err)
	}
	if err := st.Save(context.Background(), 1); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}

	if _, err := Open(Config{Driver: "sqlite"}, logx.Nop()); err == nil {
		t.Fatalf("expected unknown driver error")
	}

	st, err = Open(Config{}, logx.Nop())
	if err != nil {
		t.Fatalf("Open default: %v", err)
	}
	if st.Location() != DefaultPath {
		t.Fatalf("default path=%q", st.Location())
	}
}
