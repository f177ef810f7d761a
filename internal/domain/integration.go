package domain

import "time"

// Integration is a partner system allowed to push codes. Revocation is a
// soft marker checked at lookup time; keys do not expire.
type Integration struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	APIKeyHash string     `json:"-"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// IntegrationLog is the per-call audit row for partner endpoints. Writing
// it is best-effort; a logging failure must not fail the request.
type IntegrationLog struct {
	TraceID         string
	Endpoint        string
	Method          string
	IntegrationName string
	StatusCode      int
	ErrorMessage    string
	Metadata        string
}
