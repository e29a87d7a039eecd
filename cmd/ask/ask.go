package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	agent "github.com/mutablelogic/go-llm-agent/pkg/agent"
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCommand struct {
	Prompt      []string `arg:"" optional:"" help:"Prompt text, read from standard input when omitted"`
	System      string   `name:"system" help:"System role, which replaces the persona system role"`
	Persona     string   `name:"persona" short:"p" help:"Named persona supplying the system role"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature (0.0 to 2.0)"`
	MaxTokens   *uint    `name:"max-tokens" help:"Maximum number of tokens to generate"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) error {
	var model string
	var opts []opt.Opt

	// Persona
	if cmd.Persona != "" {
		registry, err := ctx.Registry()
		if err != nil {
			return err
		}
		p, err := registry.Get(cmd.Persona)
		if err != nil {
			return err
		}
		model = p.Model
		opts = append(opts, p.Opts()...)
	}

	// Options which override the persona
	if cmd.System != "" {
		opts = append(opts, agent.WithSystemPrompt(cmd.System))
	}
	if cmd.Temperature != nil {
		opts = append(opts, agent.WithTemperature(*cmd.Temperature))
	}
	if cmd.MaxTokens != nil {
		opts = append(opts, agent.WithMaxTokens(*cmd.MaxTokens))
	}

	// Create the agent
	a, err := ctx.Agent(model)
	if err != nil {
		return err
	}

	// Read the prompt
	prompt := strings.Join(cmd.Prompt, " ")
	if len(cmd.Prompt) == 0 {
		if prompt, err = readPrompt(os.Stdin, os.Stderr); err != nil {
			return err
		}
	}

	// Send the request
	completion, err := a.Complete(ctx.ctx, prompt, opts...)
	if err != nil {
		return err
	}
	ctx.log.Debug().Str("model", completion.Model).Str("finish_reason", completion.FinishReason).Msg("completion")

	// Print
	fmt.Println(completion.Text)
	return nil
}
