package assaysdk

// SignUpRequest registers a new identity. The user ID is the login handle,
// typically an email address.
type SignUpRequest struct {
	UserID      string `json:"user_id"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SignUpResponse confirms a registration.
type SignUpResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// LoginRequest authenticates an identity.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer session token on success.
type LoginResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// QuestionAnswer is one ordered question/answer unit in a record.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SaveAssayRequest creates a record for the authenticated user. There is no
// grade field here on purpose: the grade is derived server-side from the
// score, so clients cannot supply one.
type SaveAssayRequest struct {
	Title             string           `json:"title"`
	Score             float64          `json:"score"`
	Job               string           `json:"job"`
	State             string           `json:"state"`
	QAPairs           []QuestionAnswer `json:"qa_pairs"`
	EvaluationDetails []map[string]any `json:"evaluation_details,omitempty"`
}

// AssayResponse is the read shape of a record. Grade and CreatedAt are
// server-assigned.
type AssayResponse struct {
	RecordID          int64            `json:"record_id"`
	UserID            string           `json:"user_id"`
	CreatedAt         string           `json:"record_date"` // RFC 3339, minute resolution
	Title             string           `json:"title"`
	Score             float64          `json:"score"`
	Grade             string           `json:"grade"`
	Job               string           `json:"job"`
	State             string           `json:"state"`
	QAPairs           []QuestionAnswer `json:"qa_pairs"`
	EvaluationDetails []map[string]any `json:"evaluation_details"`
}

// ListAssaysResponse wraps the owner-scoped record listing, newest first.
type ListAssaysResponse struct {
	Records []AssayResponse `json:"records"`
}

// HealthChecks reports the status of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
