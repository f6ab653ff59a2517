package provider

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryResolvesAllSupportedKeys(t *testing.T) {
	registry := NewRegistry()

	for _, key := range registry.Keys() {
		adapter, err := registry.Resolve(key)
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
		assert.Equal(t, key, adapter.Key())
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	registry := NewRegistry()

	for _, key := range []string{"", "bedrock", "Bedrock/Converse", "cohere/v2/chat", "openai/v1/completions"} {
		adapter, err := registry.Resolve(key)
		assert.Nil(t, adapter)

		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Fatalf("Resolve(%q) returned %T, want *ConfigurationError", key, err)
		}
		assert.Equal(t, key, confErr.Key)
		assert.Contains(t, confErr.Supported, BedrockConverseKey)
		assert.Contains(t, confErr.Supported, OpenAIChatKey)
		assert.Contains(t, err.Error(), key)
	}
}

func TestRegistryKeysSorted(t *testing.T) {
	keys := NewRegistry().Keys()

	assert.True(t, sort.StringsAreSorted(keys))
	assert.ElementsMatch(t, []string{BedrockConverseKey, OpenAIChatKey}, keys)
}
