package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// External invokes the out-of-process scoring script. The flag set matches
// the cv_ranker CLI: --pdf/--job/--keywords/--speed plus --print-json, which
// makes the script emit exactly one trailing JSON line.
type External struct {
	Command     []string
	JobPath     string
	Speed       string
	OCR         bool
	ExtractMode string
	Timeout     time.Duration
}

// Score runs the scorer subprocess and parses its final JSON line.
func (e *External) Score(ctx context.Context, req Request) (Result, error) {
	if len(e.Command) == 0 {
		return Result{}, errors.New("scorer command not configured")
	}

	args := append([]string(nil), e.Command[1:]...)
	args = append(args,
		"--pdf", req.FilePath,
		"--job", e.JobPath,
		"--keywords", req.Keywords,
		"--speed", e.speed(),
		"--print-json",
	)
	if !e.OCR {
		args = append(args, "--no-ocr")
	}
	if e.ExtractMode == "quick" {
		args = append(args, "--quick-extract")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Result{}, &InvocationError{Err: err, Stderr: truncate(stderr.String(), 500)}
	}

	meta, err := ParseOutput(stdout.Bytes())
	if err != nil {
		return Result{}, &InvocationError{Err: err, Stderr: truncate(stdout.String(), 500)}
	}

	return Result{Score: finalScore(meta), Meta: meta}, nil
}

// ParseOutput decodes the last non-empty stdout line as a JSON object.
func ParseOutput(stdout []byte) (map[string]any, error) {
	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		var meta map[string]any
		if err := json.Unmarshal([]byte(line), &meta); err != nil {
			return nil, fmt.Errorf("parse scorer output: %w", err)
		}
		return meta, nil
	}
	return nil, errors.New("scorer produced no output")
}

func finalScore(meta map[string]any) *float64 {
	raw, ok := meta["final_score"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		return &v
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

func (e *External) speed() string {
	switch e.Speed {
	case "balanced", "max":
		return e.Speed
	default:
		return "fast"
	}
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max]
	}
	return s
}
