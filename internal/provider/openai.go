package provider

import (
	"fmt"

	"searchforge/mlbridge/internal/connector"
	"searchforge/mlbridge/internal/messages"
)

// OpenAIChatKey is the vendor key for the OpenAI chat completions API.
const OpenAIChatKey = "openai/v1/chat/completions"

var openAICapabilities = Capabilities{
	Modalities: map[messages.BlockType]bool{
		messages.BlockText:  true,
		messages.BlockImage: true,
	},
	DefaultEndpoint: "https://api.openai.com/v1/chat/completions",
	MaxRetries:      3,
}

// OpenAIChat translates canonical agent input into the OpenAI chat
// completions wire format and provisions a bearer-auth http connector.
// The chat API keeps the tool role as its own array entry and carries
// assistant tool calls in a sibling tool_calls array rather than inline
// content.
type OpenAIChat struct{}

// NewOpenAIChat returns the OpenAI chat completions adapter.
func NewOpenAIChat() *OpenAIChat {
	return &OpenAIChat{}
}

func (o *OpenAIChat) Key() string {
	return OpenAIChatKey
}

func (o *OpenAIChat) Capabilities() Capabilities {
	return openAICapabilities
}

// CreateConnector builds a bearer-token connector against the chat
// completions endpoint. The endpoint parameter may override the default
// for compatible gateways; unrecognized parameters pass through verbatim.
func (o *OpenAIChat) CreateConnector(modelID string, credential, params map[string]string) (*connector.Descriptor, error) {
	if len(credential) == 0 {
		return nil, &MissingCredentialError{Provider: OpenAIChatKey}
	}

	endpoint := openAICapabilities.DefaultEndpoint
	if v := params["endpoint"]; v != "" {
		endpoint = v
	}

	parameters := make(map[string]string, len(params)+1)
	for k, v := range params {
		parameters[k] = v
	}
	parameters["model"] = modelID

	auth := make(map[string]string, len(credential))
	for k, v := range credential {
		auth[k] = v
	}

	return &connector.Descriptor{
		Name:           "OpenAI Chat Connector",
		Description:    "Connector for the OpenAI chat completions API",
		Protocol:       connector.ProtocolHTTP,
		Parameters:     parameters,
		AuthParameters: auth,
		Retry:          connector.RetryPolicy{MaxRetries: openAICapabilities.MaxRetries},
		Actions: []connector.Action{
			{
				Method: "POST",
				URL:    endpoint,
				Headers: map[string]string{
					"Authorization": "Bearer ${credential.openAI_key}",
					"Content-Type":  "application/json",
				},
				BodyTemplate: "${parameters.body}",
			},
		},
	}, nil
}

// MapText wraps text as a single user message in chat block form.
func (o *OpenAIChat) MapText(text string, kind messages.AgentKind) (Result, error) {
	if kind == messages.KindPlanExecuteAndReflect {
		text = promptPlaceholder
	}

	body, err := marshalBody(map[string]any{
		"messages": []map[string]any{
			{
				"role":    string(messages.RoleUser),
				"content": []map[string]any{{"type": "text", "text": text}},
			},
		},
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body}, nil
}

// MapBlocks emits one chat content element per block, in order, inside a
// single user message. Nil or empty input produces a valid empty-content
// message.
func (o *OpenAIChat) MapBlocks(blocks []messages.ContentBlock, kind messages.AgentKind) (Result, error) {
	content, err := o.mapContent(blocks)
	if err != nil {
		return Result{}, err
	}

	body, err := marshalBody(map[string]any{
		"messages": []map[string]any{
			{
				"role":    string(messages.RoleUser),
				"content": content,
			},
		},
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body}, nil
}

// MapMessages translates a message history into the chat messages array.
// Every message keeps its own entry; tool messages keep their role and
// tool_call_id, and assistant tool calls become a tool_calls array with
// the arguments left as a JSON string.
func (o *OpenAIChat) MapMessages(msgs []messages.Message, kind messages.AgentKind) (Result, error) {
	wire := make([]map[string]any, 0, len(msgs))

	for _, msg := range msgs {
		content, err := o.mapContent(msg.Content)
		if err != nil {
			return Result{}, err
		}

		entry := map[string]any{
			"role":    string(msg.Role),
			"content": content,
		}
		if msg.Role == messages.RoleTool {
			entry["tool_call_id"] = msg.ToolCallID
		}
		if msg.Role == messages.RoleAssistant && len(msg.ToolCalls) > 0 {
			calls := make([]map[string]any, 0, len(msg.ToolCalls))
			for _, call := range msg.ToolCalls {
				calls = append(calls, map[string]any{
					"id":   call.ID,
					"type": "function",
					"function": map[string]any{
						"name":      call.Name,
						"arguments": call.Arguments,
					},
				})
			}
			entry["tool_calls"] = calls
		}
		wire = append(wire, entry)
	}

	body, err := marshalBody(map[string]any{"messages": wire})
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body, NoEscapeParams: noEscapeParams()}, nil
}

func (o *OpenAIChat) mapContent(blocks []messages.ContentBlock) ([]map[string]any, error) {
	content := make([]map[string]any, 0, len(blocks))
	for _, block := range blocks {
		element, err := o.mapBlock(block)
		if err != nil {
			return nil, err
		}
		content = append(content, element)
	}
	return content, nil
}

// mapBlock converts one canonical block into its chat element. The
// capability table is consulted before any other processing, so an
// unsupported modality fails regardless of how well-formed the block is.
func (o *OpenAIChat) mapBlock(block messages.ContentBlock) (map[string]any, error) {
	if !openAICapabilities.Supports(block.Type) {
		return nil, &CapabilityError{Provider: OpenAIChatKey, Modality: string(block.Type)}
	}

	if block.Type == messages.BlockText {
		return map[string]any{"type": "text", "text": block.Text}, nil
	}

	url := block.Data
	if block.Source == messages.SourceBase64 {
		url = fmt.Sprintf("data:image/%s;base64,%s", block.Format, block.Data)
	}
	return map[string]any{
		"type":      "image_url",
		"image_url": map[string]any{"url": url},
	}, nil
}
