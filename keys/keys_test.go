package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyStringHasBinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, binding.Keys(), s)
	}
}

func TestBindingsHaveHelp(t *testing.T) {
	for name, binding := range GlobalkeyBindings {
		assert.NotEmpty(t, binding.Help().Key, "key help for %d", name)
		assert.NotEmpty(t, binding.Help().Desc, "desc help for %d", name)
		assert.True(t, binding.Enabled())
	}
}
