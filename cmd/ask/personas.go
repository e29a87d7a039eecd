package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListPersonasCommand struct {
	Name string `arg:"" optional:"" help:"Show a single persona"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListPersonasCommand) Run(ctx *Globals) error {
	registry, err := ctx.Registry()
	if err != nil {
		return err
	}

	// Single persona
	if cmd.Name != "" {
		p, err := registry.Get(cmd.Name)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	}

	// All personas
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range registry.Names() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Title)
	}
	return w.Flush()
}
