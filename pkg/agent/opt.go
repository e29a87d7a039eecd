package agent

import (
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-agent"
	metrics "github.com/mutablelogic/go-llm-agent/pkg/metrics"
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring an agent
type Opt func(*Agent) error

///////////////////////////////////////////////////////////////////////////////
// AGENT OPTIONS

// WithClientOpts appends transport options, such as client.OptTrace
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(a *Agent) error {
		a.clientopts = append(a.clientopts, opts...)
		return nil
	}
}

// WithTimeout sets the transport timeout for each exchange
func WithTimeout(timeout time.Duration) Opt {
	return func(a *Agent) error {
		if timeout <= 0 {
			return llm.ErrConfiguration.Withf("timeout must be positive, got %v", timeout)
		}
		a.timeout = timeout
		return nil
	}
}

// WithTracer sets the tracer used for exchange and transport spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(a *Agent) error {
		if tracer == nil {
			return llm.ErrConfiguration.With("tracer is required")
		}
		a.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger. Each exchange is logged at debug level, and
// failures at warn level.
func WithLogger(log zerolog.Logger) Opt {
	return func(a *Agent) error {
		a.log = log
		return nil
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(collector metrics.Collector) Opt {
	return func(a *Agent) error {
		if collector == nil {
			return llm.ErrConfiguration.With("metrics collector is required")
		}
		a.metrics = collector
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST OPTIONS

// WithSystemPrompt sets the content of the system turn
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithTemperature sets the sampling temperature (0.0 to 2.0)
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(llm.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(llm.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return opt.SetUint(opt.MaxTokensKey, value)
}
