// Package chat holds the widget side of the assistant: conversation history,
// the simulated typing delay and link navigation.
package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/adilcr01/adil-dev/internal/assistant"
)

// Turn is one question and the reply it produced. Turns are never modified
// after they are appended to a conversation.
type Turn struct {
	ID        string          `json:"id"`
	Input     string          `json:"input"`
	Reply     assistant.Reply `json:"reply"`
	CreatedAt time.Time       `json:"created_at"`
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single bubble in the widget.
type Message struct {
	ID     string          `json:"id"`
	Sender Sender          `json:"sender"`
	Text   string          `json:"text"`
	Link   *assistant.Link `json:"link,omitempty"`
}

// newID returns a time-ordered identifier, so ids sort in creation order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
