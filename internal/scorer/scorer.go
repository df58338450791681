package scorer

import (
	"context"
	"fmt"
)

// Request describes one scoring job: a stored file plus the keyword list the
// scorer should check coverage for.
type Request struct {
	FilePath string
	Keywords string
}

// Result is what a scorer produced for a single file. Score is nil when the
// scorer ran but its output carried no usable final_score.
type Result struct {
	Score *float64
	Meta  map[string]any
}

// Scorer computes a suitability score for a stored upload.
type Scorer interface {
	Score(ctx context.Context, req Request) (Result, error)
}

// InvocationError wraps a scorer process failure with its captured stderr.
type InvocationError struct {
	Err    error
	Stderr string
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("scorer invocation: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("scorer invocation: %v", e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
