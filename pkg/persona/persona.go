package persona

import (
	"errors"
	"io"
	"sort"
	"sync"

	// Packages
	llm "github.com/mutablelogic/go-llm-agent"
	agent "github.com/mutablelogic/go-llm-agent/pkg/agent"
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
	llmtypes "github.com/mutablelogic/go-llm-agent/pkg/types"
	types "github.com/mutablelogic/go-server/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Persona is a named system role, with optional model and sampling defaults
type Persona struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title,omitempty" yaml:"title"`
	System      string   `json:"system" yaml:"system"`
	Model       string   `json:"model,omitempty" yaml:"model"`
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature"`
}

// Registry holds personas by name
type Registry struct {
	sync.RWMutex
	personas map[string]Persona
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ProjectManager = "project-manager"
	Translator     = "translator"
	TripPlanner    = "trip-planner"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Builtin returns the built-in personas
func Builtin() []Persona {
	return []Persona{
		{
			Name:   ProjectManager,
			Title:  "Project manager",
			System: "You are a project manager in a software company",
		},
		{
			Name:        Translator,
			Title:       "Translation assistant",
			System:      "You are a professional translation assistant. Translate the text accurately and naturally, keeping the tone and style of the original.",
			Temperature: types.Ptr(0.5),
		},
		{
			Name:        TripPlanner,
			Title:       "Travel planner",
			System:      "You are a travel planning assistant. Suggest an itinerary covering transport, accommodation, food and activities that fits the traveller's dates, budget and interests.",
			Temperature: types.Ptr(0.7),
		},
	}
}

// Load reads a YAML list of personas. An empty document yields no personas.
func Load(r io.Reader) ([]Persona, error) {
	var personas []Persona
	if err := yaml.NewDecoder(r).Decode(&personas); errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, llm.ErrBadParameter.Wrap(err)
	}

	seen := make(map[string]bool, len(personas))
	for _, p := range personas {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, llm.ErrBadParameter.Withf("duplicate persona %q", p.Name)
		}
		seen[p.Name] = true
	}

	return personas, nil
}

// NewRegistry returns a registry holding the given personas
func NewRegistry(personas ...Persona) (*Registry, error) {
	r := &Registry{personas: make(map[string]Persona, len(personas))}
	if err := r.Register(personas...); err != nil {
		return nil, err
	}
	return r, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Persona) String() string {
	return types.Stringify(p)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - PERSONA

// Validate checks the name and temperature of the persona
func (p Persona) Validate() error {
	if !llmtypes.IsName(p.Name) {
		return llm.ErrBadParameter.Withf("invalid persona name %q", p.Name)
	}
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 2) {
		return llm.ErrBadParameter.Withf("persona %q: temperature must be between 0.0 and 2.0", p.Name)
	}
	return nil
}

// Opts returns the request options for the persona
func (p Persona) Opts() []opt.Opt {
	opts := []opt.Opt{agent.WithSystemPrompt(p.System)}
	if p.Temperature != nil {
		opts = append(opts, agent.WithTemperature(*p.Temperature))
	}
	return opts
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - REGISTRY

// Register adds personas, replacing any existing persona with the same name
func (r *Registry) Register(personas ...Persona) error {
	for _, p := range personas {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	r.Lock()
	defer r.Unlock()
	for _, p := range personas {
		r.personas[p.Name] = p
	}
	return nil
}

// Get returns a persona by name
func (r *Registry) Get(name string) (Persona, error) {
	r.RLock()
	defer r.RUnlock()
	if p, exists := r.personas[name]; exists {
		return p, nil
	}
	return Persona{}, llm.ErrNotFound.Withf("persona %q", name)
}

// Names returns the sorted persona names
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	names := make([]string, 0, len(r.personas))
	for name := range r.personas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
