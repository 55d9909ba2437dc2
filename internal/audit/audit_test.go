package audit

import (
	"testing"
)

func TestNew_PopulatesRunID(t *testing.T) {
	entry := New("scan")
	if entry.Operation != "scan" {
		t.Errorf("Expected op scan, got: %s", entry.Operation)
	}
	if entry.RunID == "" {
		t.Error("Expected a run ID")
	}
	if other := New("scan"); other.RunID == entry.RunID {
		t.Error("Expected run IDs to be unique")
	}
}

func TestLogAndReadEntries(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	entry := New("rotate")
	entry.Dir = "clusters/prod"
	entry.Files = 3
	entry.NewKeyARN = "arn:aws:kms:new"
	entry.RotationFailures = []string{"a-sops.yml"}
	Log(entry)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(entries))
	}

	got := entries[0]
	if got.Operation != "rotate" || got.Dir != "clusters/prod" || got.Files != 3 {
		t.Errorf("Unexpected entry: %+v", got)
	}
	if got.Timestamp == "" {
		t.Error("Expected Log to stamp the entry")
	}
	if len(got.RotationFailures) != 1 || got.RotationFailures[0] != "a-sops.yml" {
		t.Errorf("Unexpected rotation failures: %v", got.RotationFailures)
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries, got: %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-01-02T00:00:00.000000Z","run_id":"1","op":"scan"}
not json at all
{"ts":"2026-01-02T00:00:01.000000Z","run_id":"2","op":"rotate"}
`)
	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got: %d", len(entries))
	}
	if entries[0].Operation != "scan" || entries[1].Operation != "rotate" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}
