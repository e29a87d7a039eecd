package types_test

import (
	"testing"

	// Packages
	types "github.com/mutablelogic/go-llm-agent/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_name_001(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"a", "project-manager", "translator_2", "Planner"} {
		assert.True(types.IsName(name), name)
	}
	for _, name := range []string{"", "-a", "1abc", "_x", "a b", "a-", "a.b"} {
		assert.False(types.IsName(name), name)
	}
}
