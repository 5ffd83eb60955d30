package httpdto

// ChatRequest is used for POST /api/chat
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse is returned after a successful completion call
type ChatResponse struct {
	Response string `json:"response"`
}

// ConversationDTO represents one history entry
type ConversationDTO struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// StatusResponse is returned by GET /
type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
