package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	agent "github.com/mutablelogic/go-llm-agent/pkg/agent"
	persona "github.com/mutablelogic/go-llm-agent/pkg/persona"
	version "github.com/mutablelogic/go-llm-agent/pkg/version"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool             `name:"debug" help:"Enable debug logging"`
	Verbose bool             `name:"verbose" help:"Trace requests and responses"`
	Version kong.VersionFlag `name:"version" help:"Print the version and exit"`

	// Agent
	Model    string        `name:"model" env:"LLM_MODEL" help:"Model identifier (default: persona model or ${default_model})"`
	Endpoint string        `name:"endpoint" env:"LLM_ENDPOINT" default:"${default_endpoint}" help:"OpenAI-compatible endpoint base URL"`
	APIKey   string        `name:"api-key" env:"LLM_API_KEY,DEEPSEEK_API_KEY" help:"API key"`
	Timeout  time.Duration `name:"timeout" env:"LLM_TIMEOUT" default:"${default_timeout}" help:"Timeout for each request"`

	// Personas
	Personas string `name:"personas" type:"existingfile" optional:"" help:"YAML file of additional personas"`

	// Context
	ctx context.Context
	log zerolog.Logger
}

type CLI struct {
	Globals

	// Commands
	Ask         AskCommand          `cmd:"" default:"withargs" help:"Ask the model a single question."`
	PersonaList ListPersonasCommand `cmd:"" name:"personas" help:"List the available personas."`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultModel    = "deepseek-chat"
	defaultEndpoint = "https://api.deepseek.com/v1"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// A missing .env file is not an error
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Ask a large language model a question"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version":          string(version.JSON(execName())),
			"default_model":    defaultModel,
			"default_endpoint": defaultEndpoint,
			"default_timeout":  agent.DefaultTimeout.String(),
		},
	)

	// Create a logger
	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	cli.Globals.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Registry returns the built-in personas, together with any loaded from the
// personas file. Personas in the file replace built-in personas of the same name.
func (g *Globals) Registry() (*persona.Registry, error) {
	registry, err := persona.NewRegistry(persona.Builtin()...)
	if err != nil {
		return nil, err
	}
	if g.Personas == "" {
		return registry, nil
	}

	f, err := os.Open(g.Personas)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	personas, err := persona.Load(f)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(personas...); err != nil {
		return nil, err
	}

	// Return success
	return registry, nil
}

// Agent returns an agent for the model, or for the default model when empty
func (g *Globals) Agent(model string) (*agent.Agent, error) {
	if g.Model != "" {
		model = g.Model
	}
	if model == "" {
		model = defaultModel
	}

	opts := []agent.Opt{
		agent.WithTimeout(g.Timeout),
		agent.WithLogger(g.log),
	}
	if g.Verbose {
		opts = append(opts, agent.WithClientOpts(client.OptTrace(os.Stderr, true)))
	}
	return agent.New(model, g.APIKey, g.Endpoint, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
