package llm

import "context"

// Client is the abstraction over the generative text service. Callers
// treat it as opaque text generation: prompt in, text out. Anything that
// goes wrong (timeout, malformed output, provider error) surfaces as an
// error and is absorbed by a deterministic fallback at the call site.
type Client interface {
	// Complete sends the prompt and conversation to the model and returns
	// the raw text of the reply.
	Complete(ctx context.Context, req Request) (string, error)
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn of conversation context.
type Message struct {
	Role    Role
	Content string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string
	// Messages is the conversation history plus the new user message.
	Messages []Message
	// MaxTokens caps the reply length. Zero means provider default.
	MaxTokens int
	// Temperature controls sampling randomness, 0.0-1.0.
	Temperature float64
}
