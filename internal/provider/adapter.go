package provider

import (
	"encoding/json"
	"strings"

	"searchforge/mlbridge/internal/connector"
	"searchforge/mlbridge/internal/messages"
)

// promptPlaceholder is emitted instead of literal text under the
// plan-execute-and-reflect agent kind; substitution happens in a later
// templating stage.
const promptPlaceholder = "${parameters.prompt}"

// Result carries one translated request fragment: the JSON body and the
// parameter names downstream templating must not escape. NoEscapeParams
// is populated by message-history mapping, whose body is pre-formed JSON
// that must survive substitution verbatim.
type Result struct {
	Body           string
	NoEscapeParams []string
}

// Adapter translates canonical agent input into one vendor's wire format
// and constructs the matching connector descriptor. Implementations are
// stateless; every method is a pure transform of its inputs.
type Adapter interface {
	Key() string
	Capabilities() Capabilities
	CreateConnector(modelID string, credential, params map[string]string) (*connector.Descriptor, error)
	MapText(text string, kind messages.AgentKind) (Result, error)
	MapBlocks(blocks []messages.ContentBlock, kind messages.AgentKind) (Result, error)
	MapMessages(msgs []messages.Message, kind messages.AgentKind) (Result, error)
}

const (
	errNilInput        = "agent input and its payload cannot be nil"
	errUnsupportedType = "input type not supported: expected text, content blocks, or messages"
)

// MapInput dispatches canonical agent input to the adapter entry point
// matching its shape.
//
// The dispatch boundary is stricter than the direct mapping calls: an
// empty block or message list is rejected here because it does not
// indicate which shape the caller meant, while MapBlocks and MapMessages
// called directly tolerate nil and empty input and produce an
// empty-content body.
func MapInput(a Adapter, input messages.AgentInput, kind messages.AgentKind) (Result, error) {
	if input == nil {
		return Result{}, &InvalidInputError{Reason: errNilInput}
	}

	switch in := input.(type) {
	case messages.TextInput:
		return a.MapText(string(in), kind)
	case messages.BlockInput:
		if in == nil {
			return Result{}, &InvalidInputError{Reason: errNilInput}
		}
		if len(in) == 0 {
			return Result{}, &InvalidInputError{Reason: errUnsupportedType}
		}
		return a.MapBlocks(in, kind)
	case messages.MessageInput:
		if in == nil {
			return Result{}, &InvalidInputError{Reason: errNilInput}
		}
		if len(in) == 0 {
			return Result{}, &InvalidInputError{Reason: errUnsupportedType}
		}
		return a.MapMessages(in, kind)
	default:
		return Result{}, &InvalidInputError{Reason: errUnsupportedType}
	}
}

// marshalBody encodes a wire payload as a compact JSON string. Map keys
// marshal in sorted order, so identical inputs produce byte-identical
// bodies.
func marshalBody(payload map[string]any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// rawArguments embeds a tool call's argument string without re-encoding
// it. Arguments are opaque JSON; an empty string becomes an empty object
// so the produced body stays valid.
func rawArguments(args string) json.RawMessage {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(trimmed)
}

// noEscapeParams is the fixed set of parameter names whose values carry
// pre-formed JSON.
func noEscapeParams() []string {
	return []string{"body"}
}
