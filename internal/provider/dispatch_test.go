package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"searchforge/mlbridge/internal/messages"
)

func adapters() []Adapter {
	return []Adapter{NewBedrockConverse(), NewOpenAIChat()}
}

func assertInvalidInput(t *testing.T, err error) *InvalidInputError {
	t.Helper()
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T (%v), want *InvalidInputError", err, err)
	}
	return invalid
}

func TestMapInputNil(t *testing.T) {
	for _, adapter := range adapters() {
		_, err := MapInput(adapter, nil, messages.KindConversational)
		invalid := assertInvalidInput(t, err)
		assert.Contains(t, invalid.Reason, "nil")
	}
}

func TestMapInputNilPayload(t *testing.T) {
	for _, adapter := range adapters() {
		_, err := MapInput(adapter, messages.BlockInput(nil), messages.KindConversational)
		assertInvalidInput(t, err)

		_, err = MapInput(adapter, messages.MessageInput(nil), messages.KindConversational)
		assertInvalidInput(t, err)
	}
}

// An empty list is rejected at the dispatch boundary, while the direct
// mapping calls accept the same input and produce an empty-content body.
func TestMapInputEmptyListAsymmetry(t *testing.T) {
	for _, adapter := range adapters() {
		_, err := MapInput(adapter, messages.BlockInput{}, messages.KindConversational)
		invalid := assertInvalidInput(t, err)
		assert.Contains(t, invalid.Reason, "not supported")

		_, err = MapInput(adapter, messages.MessageInput{}, messages.KindConversational)
		assertInvalidInput(t, err)

		direct, err := adapter.MapBlocks([]messages.ContentBlock{}, messages.KindConversational)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), gjson.Get(direct.Body, "messages.0.content.#").Int())

		direct, err = adapter.MapMessages(nil, messages.KindConversational)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), gjson.Get(direct.Body, "messages.#").Int())
	}
}

func TestMapInputDispatchesText(t *testing.T) {
	for _, adapter := range adapters() {
		dispatched, err := MapInput(adapter, messages.TextInput("hello"), messages.KindConversational)
		assert.NoError(t, err)

		direct, err := adapter.MapText("hello", messages.KindConversational)
		assert.NoError(t, err)
		assert.Equal(t, direct.Body, dispatched.Body)
	}
}

func TestMapInputDispatchesBlocks(t *testing.T) {
	blocks := messages.BlockInput{messages.TextBlock("look at this")}

	for _, adapter := range adapters() {
		dispatched, err := MapInput(adapter, blocks, messages.KindConversational)
		assert.NoError(t, err)

		direct, err := adapter.MapBlocks(blocks, messages.KindConversational)
		assert.NoError(t, err)
		assert.Equal(t, direct.Body, dispatched.Body)
	}
}

func TestMapInputDispatchesMessages(t *testing.T) {
	history := messages.MessageInput{
		{Role: messages.RoleUser, Content: []messages.ContentBlock{messages.TextBlock("hi")}},
		{Role: messages.RoleAssistant, Content: []messages.ContentBlock{messages.TextBlock("hello")}},
	}

	for _, adapter := range adapters() {
		dispatched, err := MapInput(adapter, history, messages.KindConversational)
		assert.NoError(t, err)

		direct, err := adapter.MapMessages(history, messages.KindConversational)
		assert.NoError(t, err)
		assert.Equal(t, direct.Body, dispatched.Body)
		assert.Equal(t, direct.NoEscapeParams, dispatched.NoEscapeParams)
	}
}
