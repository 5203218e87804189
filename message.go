package turbine

import "github.com/google/uuid"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single turn in a conversation. Messages are immutable
// once constructed; their order within a request is the conversation order
// and is preserved end-to-end.
type Message struct {
	// ID is an optional unique identifier for the message, used for
	// correlation. Translators never send it on the wire.
	ID      string `json:"id,omitempty"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// Response is the normalized reply from a provider. It is constructed
// exclusively by a translator after parsing the provider's raw JSON body
// and is never mutated afterwards.
type Response struct {
	Content string `json:"content"`
	// Usage is nil when the provider reported no token counts.
	Usage *Usage `json:"usage,omitempty"`
}
