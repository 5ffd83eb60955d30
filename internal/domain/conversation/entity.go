package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Conversation represents the conversations table.
// A record is written once per successful chat call and never mutated.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Prompt    string
	Response  string
	CreatedAt time.Time
}
