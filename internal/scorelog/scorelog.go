package scorelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one scored upload, serialized as a single JSON line.
type Entry struct {
	File  string         `json:"file"`
	Path  string         `json:"path"`
	Score *float64       `json:"score"`
	Meta  map[string]any `json:"meta"`
	TS    string         `json:"ts"`
}

// Log appends score records to a newline-delimited JSON file and reads them
// back. Entries are immutable once appended. Concurrent appends may interleave
// at the OS write-buffer level; that limitation is accepted.
type Log struct {
	path string
}

// New creates a Log backed by the file at path.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes one entry as a JSON line. A missing timestamp is filled with
// the current UTC time.
func (l *Log) Append(entry Entry) error {
	if entry.TS == "" {
		entry.TS = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("score log mkdir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("score log open: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("score log marshal: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("score log write: %w", err)
	}
	return nil
}

// Read returns all entries in file order, skipping malformed lines
// individually. A missing log file yields an empty slice.
func (l *Log) Read() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("score log open: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("score log scan: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
