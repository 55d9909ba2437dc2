package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kahusec/fluxvet/internal/configs"
)

// Entry represents a single audit log entry for one fluxvet run.
type Entry struct {
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	RunID     string `json:"run_id"` // Unique ID of this run.
	Operation string `json:"op"`     // "scan" or "rotate".

	// Optional fields depending on operation.
	Dir              string   `json:"dir,omitempty"`               // Scanned directory.
	Files            int      `json:"files,omitempty"`             // Number of manifest files found.
	Keys             int      `json:"keys,omitempty"`              // Distinct KMS keys in use.
	Duplicates       int      `json:"duplicates,omitempty"`        // Duplicate identity groups.
	NewKeyARN        string   `json:"new_key_arn,omitempty"`       // Rotation target key.
	RotationFailures []string `json:"rotation_failures,omitempty"` // Files whose rotation failed.
}

// New returns an entry for op with a fresh run ID.
func New(op string) Entry {
	return Entry{
		Operation: op,
		RunID:     uuid.NewString(),
	}
}

// Log appends an entry to the audit log.
// Logging is best-effort: runs must not fail because auditing failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath, err := LogPath()
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// #nosec G304 G306 -- the audit log lives in the user's own config dir.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() (string, error) {
	dir, err := configs.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "audit.jsonl"), nil
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath, err := LogPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(logPath) // #nosec G304
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1
			if len(line) == 0 {
				continue
			}
			var e Entry
			if err := json.Unmarshal(line, &e); err != nil {
				continue
			}
			entries = append(entries, e)
		}
	}
	return entries
}
