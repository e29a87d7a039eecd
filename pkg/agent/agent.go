/*
agent implements a chat-completion agent for OpenAI-compatible APIs, such as
DeepSeek (https://api-docs.deepseek.com/) and OpenAI
(https://platform.openai.com/docs/api-reference/chat).
*/
package agent

import (
	"context"
	"encoding/json"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-agent"
	metrics "github.com/mutablelogic/go-llm-agent/pkg/metrics"
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
	schema "github.com/mutablelogic/go-llm-agent/pkg/schema"
	version "github.com/mutablelogic/go-llm-agent/pkg/version"
	zerolog "github.com/rs/zerolog"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent sends one chat-completion request per call. Agents hold their own
// client and share no mutable state, so they are safe for concurrent use.
type Agent struct {
	client     *client.Client
	config     schema.AgentConfig
	clientopts []client.ClientOpt
	timeout    time.Duration
	tracer     trace.Tracer
	log        zerolog.Logger
	metrics    metrics.Collector
}

var _ llm.Agent = (*Agent)(nil)

// completionResponse keeps the raw choices, so that a body without a choices
// field is told apart from one with no choices. An empty body decodes to the
// zero value without error.
type completionResponse struct {
	schema.CompletionResponse
	Choices json.RawMessage `json:"choices"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultTimeout bounds a single exchange when WithTimeout is not used
	DefaultTimeout = 2 * time.Minute
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent for a model, authenticated with a bearer credential
// against the endpoint base URL (for example "https://api.deepseek.com/v1").
// Returns ErrConfiguration when any argument or option is invalid.
func New(model, apiKey, endpoint string, opts ...Opt) (*Agent, error) {
	self := &Agent{
		config: schema.AgentConfig{
			Model:    model,
			APIKey:   apiKey,
			Endpoint: endpoint,
		},
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
		metrics: metrics.NoopCollector{},
	}
	if err := self.config.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Create the client
	clientopts := append([]client.ClientOpt{}, self.clientopts...)
	clientopts = append(clientopts,
		client.OptTimeout(self.timeout),
		client.OptUserAgent(version.UserAgent()),
		client.OptEndpoint(endpoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
	)
	if self.tracer != nil {
		clientopts = append(clientopts, client.OptTracer(self.tracer))
	}
	if c, err := client.New(clientopts...); err != nil {
		return nil, llm.ErrConfiguration.Wrap(err)
	} else {
		self.client = c
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a *Agent) String() string {
	return a.config.String()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model identifier
func (a *Agent) Model() string {
	return a.config.Model
}

// Config returns a copy of the configuration
func (a *Agent) Config() schema.AgentConfig {
	return a.config
}

// Ask sends the prompt as a user turn, preceded by a system turn set with
// WithSystemPrompt (empty by default), and returns the text of the first
// choice. Returns ErrEmptyResponse when there are no choices and
// ErrRemoteCall for any transport, status or decoding failure.
func (a *Agent) Ask(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	completion, err := a.Complete(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}

// Complete performs the same exchange as Ask and returns the first choice
// together with the model, finish reason and token usage of the response
func (a *Agent) Complete(ctx context.Context, prompt string, opts ...opt.Opt) (completion *schema.Completion, err error) {
	// Build the request before any network activity
	request, err := a.request(prompt, opts...)
	if err != nil {
		return nil, err
	}
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, llm.ErrBadParameter.Wrap(err)
	}

	// Otel span, metrics and logging
	id := uuid.NewString()
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "Ask",
		attribute.String("model", a.config.Model),
		attribute.String("request_id", id),
	)
	start := time.Now()
	defer func() {
		endSpan(err)
		a.observe(ctx, id, time.Since(start), completion, err)
	}()

	// Send the request
	var response completionResponse
	if doErr := a.client.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); doErr != nil {
		return nil, llm.ErrRemoteCall.Wrap(doErr)
	}

	// Read the first choice
	if response.Error != nil {
		return nil, llm.ErrRemoteCall.Wrap(response.Error)
	}
	if len(response.Choices) == 0 {
		return nil, llm.ErrRemoteCall.With("malformed response: missing choices")
	}
	if err := json.Unmarshal(response.Choices, &response.CompletionResponse.Choices); err != nil {
		return nil, llm.ErrRemoteCall.Withf("malformed response: %v", err)
	}
	if len(response.CompletionResponse.Choices) == 0 {
		return nil, llm.ErrEmptyResponse.With("no completion choices returned")
	}
	choice := response.CompletionResponse.Choices[0]

	// Return success
	return &schema.Completion{
		Text:         choice.Message.Content,
		Model:        response.Model,
		FinishReason: choice.FinishReason,
		Usage:        response.Usage,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// request builds the typed request body from the prompt and options
func (a *Agent) request(prompt string, opts ...opt.Opt) (*schema.CompletionRequest, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	request := &schema.CompletionRequest{
		Model:    a.config.Model,
		Messages: schema.NewConversation(options.GetString(opt.SystemPromptKey), prompt),
		Stream:   false,
	}
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}
	if options.Has(opt.MaxTokensKey) {
		v := options.GetUint(opt.MaxTokensKey)
		request.MaxTokens = &v
	}

	return request, nil
}

// observe records the outcome of an exchange
func (a *Agent) observe(ctx context.Context, id string, duration time.Duration, completion *schema.Completion, err error) {
	kind := ""
	if err != nil {
		kind = llm.Kind(err).Name()
	}
	a.metrics.RecordAsk(ctx, a.config.Model, kind, duration)

	evt := a.log.Debug()
	if err != nil {
		evt = a.log.Warn().Err(err).Str("kind", kind)
	}
	evt = evt.Str("request_id", id).Str("model", a.config.Model).Dur("duration", duration)
	if completion != nil {
		evt = evt.Str("finish_reason", completion.FinishReason)
		if completion.Usage != nil {
			evt = evt.Uint64("total_tokens", completion.Usage.TotalTokens)
		}
	}
	evt.Msg("ask")
}
