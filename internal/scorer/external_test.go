package scorer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scorer.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestExternalScoreParsesFinalJSONLine(t *testing.T) {
	script := writeScript(t, `echo "[warn] loading model"
echo '{"final_score": 72.45, "keyword_coverage_pct": 50.0, "matched_keywords": ["sales"]}'`)

	ext := &External{
		Command: []string{"sh", script},
		JobPath: "job.txt",
		Speed:   "fast",
		Timeout: 10 * time.Second,
	}

	result, err := ext.Score(context.Background(), Request{FilePath: "cv.pdf", Keywords: "sales,POS"})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score == nil || *result.Score != 72.45 {
		t.Fatalf("unexpected score %v", result.Score)
	}
	if result.Meta["keyword_coverage_pct"] != 50.0 {
		t.Fatalf("unexpected meta %v", result.Meta)
	}
}

func TestExternalScoreNilWhenFinalScoreMissing(t *testing.T) {
	script := writeScript(t, `echo '{"keyword_coverage_pct": 10.0}'`)

	ext := &External{Command: []string{"sh", script}, JobPath: "job.txt"}

	result, err := ext.Score(context.Background(), Request{FilePath: "cv.pdf"})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != nil {
		t.Fatalf("expected nil score, got %v", *result.Score)
	}
}

func TestExternalScoreNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "model exploded" >&2
exit 3`)

	ext := &External{Command: []string{"sh", script}, JobPath: "job.txt"}

	_, err := ext.Score(context.Background(), Request{FilePath: "cv.pdf"})
	if err == nil {
		t.Fatalf("expected invocation error")
	}
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %T", err)
	}
	if invErr.Stderr == "" {
		t.Fatalf("expected captured stderr")
	}
}

func TestExternalScoreMalformedOutput(t *testing.T) {
	script := writeScript(t, `echo "final_score: 88"`)

	ext := &External{Command: []string{"sh", script}, JobPath: "job.txt"}

	_, err := ext.Score(context.Background(), Request{FilePath: "cv.pdf"})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestExternalScoreTimeout(t *testing.T) {
	script := writeScript(t, `sleep 5
echo '{"final_score": 1}'`)

	ext := &External{Command: []string{"sh", script}, JobPath: "job.txt", Timeout: 100 * time.Millisecond}

	start := time.Now()
	_, err := ext.Score(context.Background(), Request{FilePath: "cv.pdf"})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if time.Since(start) > 3*time.Second {
		t.Fatalf("timeout did not take effect")
	}
}

func TestExternalScoreNoCommand(t *testing.T) {
	ext := &External{}
	if _, err := ext.Score(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error for missing command")
	}
}

func TestParseOutputEmpty(t *testing.T) {
	if _, err := ParseOutput([]byte("   \n\n")); err == nil {
		t.Fatalf("expected error for empty output")
	}
}
