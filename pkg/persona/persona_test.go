package persona_test

import (
	"strings"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-agent"
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
	persona "github.com/mutablelogic/go-llm-agent/pkg/persona"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

const personasYAML = `
- name: reviewer
  title: Code reviewer
  system: You review Go code for correctness
  temperature: 0.2
- name: poet
  system: You answer in verse
  model: deepseek-reasoner
`

func Test_persona_001(t *testing.T) {
	// Builtin personas are valid and include the project manager
	assert := assert.New(t)
	registry, err := persona.NewRegistry(persona.Builtin()...)
	if !assert.NoError(err) {
		t.FailNow()
	}
	p, err := registry.Get(persona.ProjectManager)
	assert.NoError(err)
	assert.Equal("You are a project manager in a software company", p.System)
	assert.Nil(p.Temperature)
	assert.Equal([]string{persona.ProjectManager, persona.Translator, persona.TripPlanner}, registry.Names())
}

func Test_persona_002(t *testing.T) {
	// Load a YAML list of personas
	assert := assert.New(t)
	personas, err := persona.Load(strings.NewReader(personasYAML))
	if !assert.NoError(err) {
		t.FailNow()
	}
	if assert.Len(personas, 2) {
		assert.Equal("reviewer", personas[0].Name)
		assert.Equal("Code reviewer", personas[0].Title)
		if assert.NotNil(personas[0].Temperature) {
			assert.Equal(0.2, *personas[0].Temperature)
		}
		assert.Equal("poet", personas[1].Name)
		assert.Equal("deepseek-reasoner", personas[1].Model)
		assert.Nil(personas[1].Temperature)
	}
}

func Test_persona_003(t *testing.T) {
	// An empty document yields no personas
	assert := assert.New(t)
	personas, err := persona.Load(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(personas)
}

func Test_persona_004(t *testing.T) {
	// Invalid documents are rejected
	assert := assert.New(t)
	for _, doc := range []string{
		"name: not-a-list",
		"- name: 1bad\n  system: x",
		"- name: hot\n  system: x\n  temperature: 2.5",
		"- name: twin\n  system: a\n- name: twin\n  system: b",
	} {
		_, err := persona.Load(strings.NewReader(doc))
		assert.ErrorIs(err, llm.ErrBadParameter, doc)
	}
}

func Test_persona_005(t *testing.T) {
	// Unknown personas are not found
	assert := assert.New(t)
	registry, err := persona.NewRegistry()
	assert.NoError(err)
	_, err = registry.Get("missing")
	assert.ErrorIs(err, llm.ErrNotFound)
	assert.Empty(registry.Names())
}

func Test_persona_006(t *testing.T) {
	// Register replaces an existing persona
	assert := assert.New(t)
	registry, err := persona.NewRegistry(persona.Builtin()...)
	assert.NoError(err)
	assert.NoError(registry.Register(persona.Persona{Name: persona.ProjectManager, System: "You run the release train"}))
	p, err := registry.Get(persona.ProjectManager)
	assert.NoError(err)
	assert.Equal("You run the release train", p.System)
	assert.Len(registry.Names(), 3)

	// An invalid persona leaves the registry unchanged
	assert.ErrorIs(registry.Register(persona.Persona{Name: "ok"}, persona.Persona{Name: ""}), llm.ErrBadParameter)
	_, err = registry.Get("ok")
	assert.ErrorIs(err, llm.ErrNotFound)
}

func Test_persona_007(t *testing.T) {
	// Opts carry the system prompt and temperature
	assert := assert.New(t)
	options, err := opt.Apply(persona.Persona{Name: "warm", System: "Be kind", Temperature: types.Ptr(1.5)}.Opts()...)
	assert.NoError(err)
	assert.Equal("Be kind", options.GetString(opt.SystemPromptKey))
	assert.Equal(1.5, options.GetFloat64(opt.TemperatureKey))

	options, err = opt.Apply(persona.Persona{Name: "plain", System: "Be brief"}.Opts()...)
	assert.NoError(err)
	assert.Equal("Be brief", options.GetString(opt.SystemPromptKey))
	assert.False(options.Has(opt.TemperatureKey))
}

func Test_persona_008(t *testing.T) {
	// String renders as JSON
	assert := assert.New(t)
	assert.Contains(persona.Persona{Name: "poet", System: "verse"}.String(), `"poet"`)
}
