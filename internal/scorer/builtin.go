package scorer

import (
	"context"
	"math"
	"regexp"
	"strings"

	"easyhire-backend/internal/extract"
)

// Builtin is the in-process fallback used when no scorer command is
// configured. It implements only the keyword-coverage term of the external
// scorer's blend: extract text, normalize, count whole-word keyword hits.
// Its output shape matches the external contract so downstream consumers
// cannot tell the two apart.
type Builtin struct{}

var (
	nonToken   = regexp.MustCompile(`[^\w\s\-\+./]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Score extracts text from the stored file and computes keyword coverage.
func (Builtin) Score(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text, err := extract.TextFromFile(req.FilePath)
	if err != nil {
		return Result{}, &InvocationError{Err: err}
	}

	keywords := splitKeywords(req.Keywords)
	coverage, matched := keywordCoverage(text, keywords)
	score := round2(coverage * 100)

	meta := map[string]any{
		"scorer":               "builtin-keyword",
		"final_score":          score,
		"keyword_coverage_pct": round2(coverage * 100),
		"matched_keywords":     matched,
	}
	return Result{Score: &score, Meta: meta}, nil
}

func splitKeywords(raw string) []string {
	var out []string
	for _, k := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// keywordCoverage returns the fraction of keywords present as whole words in
// the normalized text, plus the keywords that matched.
func keywordCoverage(text string, keywords []string) (float64, []string) {
	if len(keywords) == 0 {
		return 0, []string{}
	}
	norm := normalizeText(text)
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kwNorm := normalizeText(kw)
		if kwNorm == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kwNorm) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(norm) {
			matched = append(matched, kw)
		}
	}
	return float64(len(matched)) / float64(len(keywords)), matched
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = nonToken.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
