package submissions

import "time"

// Submission is one complete applicant record. It is created on successful
// upload (or posted directly by the client) and never mutated afterwards,
// except that background scoring may fill in Result once.
type Submission struct {
	ID                     string         `json:"id"`
	SubmittedAt            string         `json:"submitted_at"`
	FileName               string         `json:"file_name,omitempty"`
	FileType               string         `json:"file_type,omitempty"`
	Name                   string         `json:"name"`
	Email                  string         `json:"email"`
	Phone                  string         `json:"phone"`
	WhyJoin                string         `json:"why_join"`
	MessageToHiringManager string         `json:"message_to_hiring_manager"`
	IsNZCitizen            bool           `json:"is_nz_citizen"`
	HasCriminalHistory     bool           `json:"has_criminal_history"`
	Result                 map[string]any `json:"result"`
}

// SubmittedTime parses the submission timestamp; the zero time is returned
// for records with no parseable timestamp.
func (s Submission) SubmittedTime() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s.SubmittedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}
