package gptc

import (
	"github.com/google/uuid"
)

// Conversation is the ordered dialogue sent to the chat-completion endpoint.
// Messages are only ever appended; the run loop owns the value.
type Conversation struct {
	ID       string    `json:"-"` // Local identifier for diagnostics, never sent
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// NewConversation creates a conversation with one user message per text, in order.
func NewConversation(model string, texts []string) *Conversation {
	c := &Conversation{
		ID:       uuid.New().String(),
		Model:    model,
		Messages: make([]Message, 0, len(texts)),
	}
	for _, text := range texts {
		c.AppendUserTurn(text)
	}
	return c
}

// AppendUserTurn adds a user message to the end of the conversation
func (c *Conversation) AppendUserTurn(text string) {
	c.Messages = append(c.Messages, NewUserMessage(text))
}

// AppendAssistantTurn adds an assistant message to the end of the conversation
func (c *Conversation) AppendAssistantTurn(text string) {
	c.Messages = append(c.Messages, NewAssistantMessage(text))
}

// Len returns the number of messages in the conversation
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Last returns the most recent message, or false if the conversation is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// ReadyToSend reports whether a reply can be requested: the conversation
// must be non-empty and end with a user message.
func (c *Conversation) ReadyToSend() bool {
	last, ok := c.Last()
	return ok && last.Role == RoleUser
}

// ShortID returns the shortened conversation ID (first 8 characters)
func (c *Conversation) ShortID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
