package httpdto

// ErrorResponse is the error envelope for every failed request:
// always {"status":"error","message":...}, optionally enriched with the
// upstream detail, the attempted path, and (outside release mode) a stack.
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Stack     string `json:"stack,omitempty"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Message: message,
	}
}
