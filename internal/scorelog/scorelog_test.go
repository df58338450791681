package scorelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndRead(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "nested", "score_log.jsonl"))

	score := 55.5
	if err := log.Append(Entry{
		File:  "resume_123_abcd.pdf",
		Path:  "/uploads/resume_123_abcd.pdf",
		Score: &score,
		Meta:  map[string]any{"final_score": score},
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := log.Append(Entry{File: "other_456_efgh.pdf", Path: "/uploads/other_456_efgh.pdf"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	entries, err := log.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].File != "resume_123_abcd.pdf" {
		t.Fatalf("unexpected first entry %q", entries[0].File)
	}
	if entries[0].Score == nil || *entries[0].Score != score {
		t.Fatalf("unexpected score %v", entries[0].Score)
	}
	if entries[1].Score != nil {
		t.Fatalf("expected nil score for second entry")
	}
	if entries[0].TS == "" {
		t.Fatalf("expected timestamp to be filled")
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score_log.jsonl")
	raw := strings.Join([]string{
		`{"file":"good_1.pdf","path":"/u/good_1.pdf","score":10,"meta":{},"ts":"2025-01-01T00:00:00Z"}`,
		`this is not json`,
		`{"file":"good_2.pdf","path":"/u/good_2.pdf","score":null,"meta":null,"ts":"2025-01-02T00:00:00Z"}`,
		`{"truncated":`,
	}, "\n")
	if err := os.WriteFile(path, []byte(raw+"\n"), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	entries, err := New(path).Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 valid entries, got %d", len(entries))
	}
	if entries[0].File != "good_1.pdf" || entries[1].File != "good_2.pdf" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestReadMissingFile(t *testing.T) {
	entries, err := New(filepath.Join(t.TempDir(), "absent.jsonl")).Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(entries))
	}
}

func TestAppendedLineIsValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score_log.jsonl")
	log := New(path)

	score := 91.0
	if err := log.Append(Entry{File: "cv.pdf", Path: "/u/cv.pdf", Score: &score, Meta: map[string]any{"ok": true}}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if strings.Count(line, "\n") != 0 {
		t.Fatalf("expected exactly one line, got %q", line)
	}
	for _, want := range []string{`"file":"cv.pdf"`, `"score":91`, `"ts":"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}
