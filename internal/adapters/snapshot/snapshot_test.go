package snapshot_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/example/clerk/internal/adapters/snapshot"
)

type record struct {
	ID     int    `json:"id"`
	Active bool   `json:"active"`
	Name   string `json:"name"`
}

func setupStore(t *testing.T) (*snapshot.FileStore, string) {
	t.Helper()

	dir := t.TempDir()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := snapshot.NewFileStore(dir, log)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, dir
}

func TestFileStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		records []record
	}{
		{"empty", []record{}},
		{"single", []record{{ID: 1, Active: true, Name: "only"}}},
		{"many", func() []record {
			recs := make([]record, 499)
			for i := range recs {
				recs[i] = record{ID: i + 1, Active: i%7 != 0, Name: "rec"}
			}
			return recs
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := setupStore(t)

			if err := store.Save("things", len(tt.records), tt.records); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			var got []record
			count, err := store.Load("things", &got)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if count != len(tt.records) {
				t.Errorf("Load count = %d, want %d", count, len(tt.records))
			}
			if len(got) != len(tt.records) {
				t.Fatalf("Load returned %d records, want %d", len(got), len(tt.records))
			}
			for i := range got {
				if got[i] != tt.records[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.records[i])
				}
			}
		})
	}
}

func TestFileStore_SaveIsAtomic(t *testing.T) {
	store, dir := setupStore(t)

	if err := store.Save("things", 1, []record{{ID: 1, Active: true}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read snapshot dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind after Save", e.Name())
		}
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store, _ := setupStore(t)

	var got []record
	if _, err := store.Load("absent", &got); err == nil {
		t.Error("Load of missing snapshot succeeded, want error")
	}
}

func rewrite(t *testing.T, dir, kind string, mutate func(map[string]any)) {
	t.Helper()

	path := filepath.Join(dir, kind+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	mutate(env)
	data, err = json.Marshal(env)
	if err != nil {
		t.Fatalf("failed to re-encode snapshot: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to rewrite snapshot: %v", err)
	}
}

func TestFileStore_RejectsWrongVersion(t *testing.T) {
	store, dir := setupStore(t)
	store.Save("things", 1, []record{{ID: 1, Active: true}})

	rewrite(t, dir, "things", func(env map[string]any) {
		env["format_version"] = snapshot.FormatVersion + 1
	})

	var got []record
	if _, err := store.Load("things", &got); err == nil {
		t.Error("Load of wrong-version snapshot succeeded, want error")
	}
}

func TestFileStore_RejectsKindMismatch(t *testing.T) {
	store, dir := setupStore(t)
	store.Save("things", 0, []record{})

	rewrite(t, dir, "things", func(env map[string]any) {
		env["kind"] = "others"
	})

	var got []record
	if _, err := store.Load("things", &got); err == nil {
		t.Error("Load of kind-mismatched snapshot succeeded, want error")
	}
}

func TestFileStore_RejectsCountMismatch(t *testing.T) {
	store, dir := setupStore(t)
	store.Save("things", 2, []record{{ID: 1, Active: true}, {ID: 2, Active: true}})

	rewrite(t, dir, "things", func(env map[string]any) {
		env["count"] = 5
	})

	var got []record
	if _, err := store.Load("things", &got); err == nil {
		t.Error("Load of count-mismatched snapshot succeeded, want error")
	}
}
