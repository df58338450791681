package summary

import (
	"math"
	"sort"
	"strings"
	"time"

	"easyhire-backend/internal/scorelog"
	"easyhire-backend/internal/submissions"
)

// Item is one de-duplicated dashboard row derived from a submission or a
// score-log entry. Score is always a finite number.
type Item struct {
	Name   string    `json:"name"`
	Email  string    `json:"email,omitempty"`
	File   string    `json:"file,omitempty"`
	Score  float64   `json:"score"`
	Date   time.Time `json:"date"`
	Source string    `json:"source"`
}

// Summary is the aggregated dashboard payload.
type Summary struct {
	TotalCVs     int     `json:"totalCVs"`
	AverageScore float64 `json:"averageScore"`
	Items        []Item  `json:"items"`
	Top5         []Item  `json:"top5"`
}

const (
	sourceSubmission = "submission"
	sourceScoreLog   = "score_log"

	topN = 5
)

// scoreFields are the recognized score keys in a scorer payload, in priority
// order. Payloads carrying none of them normalize to 0.
var scoreFields = []string{"final_score", "score", "overall_score", "total_score"}

// Compute merges submissions and score-log entries into the dashboard
// summary. It is a pure function of its two inputs.
func Compute(subs []submissions.Submission, entries []scorelog.Entry) Summary {
	merged := make(map[string]Item)

	// Legacy score-log entries first; submissions overwrite on key collision
	// because they are the richer record.
	for _, entry := range entries {
		item := normalizeLogEntry(entry)
		merged[dedupeKey(item)] = item
	}
	for _, sub := range subs {
		item := normalizeSubmission(sub)
		merged[dedupeKey(item)] = item
	}

	items := make([]Item, 0, len(merged))
	for _, item := range merged {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	top := make([]Item, len(items))
	copy(top, items)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})
	if len(top) > topN {
		top = top[:topN]
	}

	var sum float64
	for _, item := range items {
		sum += item.Score
	}
	avg := 0.0
	if len(items) > 0 {
		avg = round2(sum / float64(len(items)))
	}

	return Summary{
		TotalCVs:     len(items),
		AverageScore: avg,
		Items:        items,
		Top5:         top,
	}
}

func normalizeSubmission(sub submissions.Submission) Item {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		name = strings.TrimSpace(sub.Email)
	}
	if name == "" {
		name = sub.FileName
	}
	return Item{
		Name:   name,
		Email:  strings.TrimSpace(sub.Email),
		File:   sub.FileName,
		Score:  scoreFrom(sub.Result),
		Date:   sub.SubmittedTime(),
		Source: sourceSubmission,
	}
}

func normalizeLogEntry(entry scorelog.Entry) Item {
	score := 0.0
	if entry.Score != nil && isFinite(*entry.Score) {
		score = *entry.Score
	} else {
		score = scoreFrom(entry.Meta)
	}
	date, _ := time.Parse(time.RFC3339, entry.TS)
	return Item{
		Name:   entry.File,
		File:   entry.File,
		Score:  score,
		Date:   date,
		Source: sourceScoreLog,
	}
}

// scoreFrom picks the first finite numeric score field from a scorer payload,
// falling back to 0.
func scoreFrom(meta map[string]any) float64 {
	for _, field := range scoreFields {
		raw, ok := meta[field]
		if !ok {
			continue
		}
		if v, ok := raw.(float64); ok && isFinite(v) {
			return v
		}
	}
	return 0
}

// dedupeKey identifies one applicant upload: the lowercased email (or name,
// or file name) plus the submission time rounded to the minute.
func dedupeKey(item Item) string {
	id := item.Email
	if id == "" {
		id = item.Name
	}
	if id == "" {
		id = item.File
	}
	return strings.ToLower(strings.TrimSpace(id)) + "|" + item.Date.UTC().Truncate(time.Minute).Format(time.RFC3339)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
