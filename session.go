package docqa

// QARecord pairs a question with its synthesized answer.
// Records are appended to a session's history in insertion order and are
// never mutated; presentation layers may reverse for most-recent-first
// display.
type QARecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
