package assessment

import "time"

// Response is a recorded answer to one catalog question. Value carries
// the answer for yes_no, single-choice and text questions; Selected
// carries the chosen options for checkbox questions.
type Response struct {
	QuestionID string
	Value      string
	Selected   []string
	Comment    string

	// Inferred marks machine-suggested answers. Confidence is only
	// meaningful when Inferred is true.
	Inferred   bool
	Confidence float64

	RecordedAt time.Time
}

// HasAnswer reports whether the response carries any answer content.
func (r Response) HasAnswer() bool {
	return r.Value != "" || len(r.Selected) > 0
}
