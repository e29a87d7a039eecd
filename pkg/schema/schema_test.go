package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-agent"
	schema "github.com/mutablelogic/go-llm-agent/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// CONFIG

func Test_config_001(t *testing.T) {
	// A complete configuration is valid
	assert := assert.New(t)
	config := schema.AgentConfig{Model: "deepseek-chat", APIKey: "sk-test", Endpoint: "https://api.deepseek.com/v1"}
	assert.NoError(config.Validate())
}

func Test_config_002(t *testing.T) {
	// Each missing field is reported as a configuration error
	assert := assert.New(t)
	tests := []schema.AgentConfig{
		{APIKey: "sk-test", Endpoint: "https://api.deepseek.com/v1"},
		{Model: "deepseek-chat", Endpoint: "https://api.deepseek.com/v1"},
		{Model: "deepseek-chat", APIKey: "sk-test"},
	}
	for _, config := range tests {
		assert.ErrorIs(config.Validate(), llm.ErrConfiguration, config.String())
	}
}

func Test_config_003(t *testing.T) {
	// Endpoints must be absolute http(s) URLs
	assert := assert.New(t)
	for _, endpoint := range []string{"api.deepseek.com/v1", "ftp://api.deepseek.com", "https://", "://bad"} {
		config := schema.AgentConfig{Model: "m", APIKey: "k", Endpoint: endpoint}
		assert.ErrorIs(config.Validate(), llm.ErrConfiguration, endpoint)
	}
	config := schema.AgentConfig{Model: "m", APIKey: "k", Endpoint: "http://localhost:8080"}
	assert.NoError(config.Validate())
}

func Test_config_004(t *testing.T) {
	// The credential never appears in the string form
	assert := assert.New(t)
	config := schema.AgentConfig{Model: "deepseek-chat", APIKey: "sk-0123456789", Endpoint: "https://api.deepseek.com/v1"}
	str := config.String()
	assert.NotContains(str, "sk-0123456789")
	assert.Contains(str, "sk-0")
	assert.Contains(str, "deepseek-chat")
	assert.Equal("sk-0123456789", config.APIKey)
}

///////////////////////////////////////////////////////////////////////////////
// MESSAGES

func Test_message_001(t *testing.T) {
	// The conversation is a system turn followed by a user turn
	assert := assert.New(t)
	conversation := schema.NewConversation("You are a project manager", "Plan a release")
	if assert.Len(conversation, 2) {
		assert.Equal(schema.Message{Role: schema.RoleSystem, Content: "You are a project manager"}, conversation[0])
		assert.Equal(schema.Message{Role: schema.RoleUser, Content: "Plan a release"}, conversation[1])
	}
}

func Test_message_002(t *testing.T) {
	// An empty system role still yields a system turn
	assert := assert.New(t)
	conversation := schema.NewConversation("", "hello")
	if assert.Len(conversation, 2) {
		assert.Equal(schema.RoleSystem, conversation[0].Role)
		assert.Equal("", conversation[0].Content)
	}
}

///////////////////////////////////////////////////////////////////////////////
// COMPLETION

func Test_completion_001(t *testing.T) {
	// Optional sampling fields are omitted when unset, stream is always sent
	assert := assert.New(t)
	data, err := json.Marshal(schema.CompletionRequest{
		Model:    "deepseek-chat",
		Messages: schema.NewConversation("", "hi"),
	})
	assert.NoError(err)
	str := string(data)
	assert.Contains(str, `"stream":false`)
	assert.Contains(str, `"model":"deepseek-chat"`)
	assert.False(strings.Contains(str, "temperature"))
	assert.False(strings.Contains(str, "max_tokens"))
}

func Test_completion_002(t *testing.T) {
	// Responses decode choices and the error object
	assert := assert.New(t)
	var response schema.CompletionResponse
	assert.NoError(json.Unmarshal([]byte(`{
		"id": "abc", "object": "chat.completion", "model": "deepseek-chat",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
	}`), &response))
	if assert.Len(response.Choices, 1) {
		assert.Equal("hello", response.Choices[0].Message.Content)
		assert.Equal("stop", response.Choices[0].FinishReason)
	}
	if assert.NotNil(response.Usage) {
		assert.Equal(uint64(4), response.Usage.TotalTokens)
	}

	var failed schema.CompletionResponse
	assert.NoError(json.Unmarshal([]byte(`{"error": {"message": "Invalid API key", "type": "authentication_error"}}`), &failed))
	if assert.NotNil(failed.Error) {
		assert.Equal("authentication_error: Invalid API key", failed.Error.Error())
	}
}
