package gptc

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single turn in a conversation
type Message struct {
	Role    Role   `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // Message content
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
