package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// See: https://platform.openai.com/docs/api-reference/chat/create

// CompletionRequest is the body of a chat-completion request
type CompletionRequest struct {
	Model       string       `json:"model"`
	Messages    Conversation `json:"messages"`
	Stream      bool         `json:"stream"`
	Temperature *float64     `json:"temperature,omitempty"`
	MaxTokens   *uint        `json:"max_tokens,omitempty"`
}

// CompletionResponse is the body of a chat-completion response
type CompletionResponse struct {
	Id      string       `json:"id,omitempty"`
	Type    string       `json:"object,omitempty"`
	Created uint64       `json:"created,omitempty"`
	Model   string       `json:"model,omitempty"`
	Choices []Choice     `json:"choices"`
	Usage   *Usage       `json:"usage,omitempty"`
	Error   *RemoteError `json:"error,omitempty"`
}

// Choice is one candidate continuation
type Choice struct {
	Index        uint64  `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// Usage reports token counts for an exchange
type Usage struct {
	PromptTokens     uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      uint64 `json:"total_tokens,omitempty"`
}

// RemoteError is an error object returned in a response body
type RemoteError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    any    `json:"code,omitempty"`
}

// Completion is the result of an exchange. Only Text is read from the first
// choice; the remaining fields are informational.
type Completion struct {
	Text         string `json:"text"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CompletionRequest) String() string {
	return types.Stringify(r)
}

func (r CompletionResponse) String() string {
	return types.Stringify(r)
}

func (c Completion) String() string {
	return types.Stringify(c)
}

func (e RemoteError) Error() string {
	if e.Type != "" {
		return e.Type + ": " + e.Message
	}
	return e.Message
}
