package domain

import "time"

// QuestionAnswer is one question/answer unit within a record. Order matters.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record is a persisted self-introduction evaluation entry owned by one
// Identity. Grade is derived from Score at save time and never supplied by
// the client; CreatedAt is server-assigned at minute resolution. Records are
// immutable after creation.
type Record struct {
	ID                int64
	OwnerID           string
	CreatedAt         time.Time
	Title             string
	Score             float64
	Grade             string
	Job               string
	State             string
	QAPairs           []QuestionAnswer
	EvaluationDetails []map[string]any
}
