package response

// IntegrationErr is the partner-facing failure envelope. Partner calls are
// machine to machine, so the envelope carries an "error" slug plus the
// trace_id the caller should quote when reporting problems.
type IntegrationErr struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	TraceID    string `json:"trace_id"`
}

type SaveCode struct {
	Success         bool   `json:"success"`
	Codigo          string `json:"codigo"`
	FechaGeneracion string `json:"fecha_generacion"`
	TraceID         string `json:"trace_id"`
}

type IntegrationHealth struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
