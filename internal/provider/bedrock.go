package provider

import (
	"fmt"
	"strings"

	"searchforge/mlbridge/internal/connector"
	"searchforge/mlbridge/internal/messages"
)

// BedrockConverseKey is the vendor key for the Amazon Bedrock Converse API.
const BedrockConverseKey = "bedrock/converse"

const (
	bedrockServiceName = "bedrock"
	s3URIPrefix        = "s3://"
)

var bedrockCapabilities = Capabilities{
	Modalities: map[messages.BlockType]bool{
		messages.BlockText:     true,
		messages.BlockImage:    true,
		messages.BlockVideo:    true,
		messages.BlockDocument: true,
	},
	DefaultRegion: "us-east-1",
	MaxRetries:    3,
}

// BedrockConverse translates canonical agent input into the Amazon
// Bedrock Converse wire format and provisions an aws_sigv4 connector.
// Converse has no tool role: tool results travel as toolResult blocks
// inside user messages, and consecutive tool results collapse into one.
type BedrockConverse struct{}

// NewBedrockConverse returns the Bedrock Converse adapter.
func NewBedrockConverse() *BedrockConverse {
	return &BedrockConverse{}
}

func (b *BedrockConverse) Key() string {
	return BedrockConverseKey
}

func (b *BedrockConverse) Capabilities() Capabilities {
	return bedrockCapabilities
}

// CreateConnector builds a signed-request connector against the Bedrock
// runtime in the configured region. Unrecognized model parameters pass
// through verbatim.
func (b *BedrockConverse) CreateConnector(modelID string, credential, params map[string]string) (*connector.Descriptor, error) {
	if len(credential) == 0 {
		return nil, &MissingCredentialError{Provider: BedrockConverseKey}
	}

	region := bedrockCapabilities.DefaultRegion
	if v := params["region"]; v != "" {
		region = v
	}

	parameters := make(map[string]string, len(params)+1)
	for k, v := range params {
		parameters[k] = v
	}
	parameters["region"] = region

	auth := make(map[string]string, len(credential)+2)
	for k, v := range credential {
		auth[k] = v
	}
	auth["region"] = region
	auth["service_name"] = bedrockServiceName

	return &connector.Descriptor{
		Name:           "Amazon Bedrock Connector: converse",
		Description:    "Connector for the Amazon Bedrock Converse API",
		Protocol:       connector.ProtocolAWSSigV4,
		Parameters:     parameters,
		AuthParameters: auth,
		Retry:          connector.RetryPolicy{MaxRetries: bedrockCapabilities.MaxRetries},
		Actions: []connector.Action{
			{
				Method:       "POST",
				URL:          fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com/model/%s/converse", region, modelID),
				Headers:      map[string]string{"content-type": "application/json"},
				BodyTemplate: "${parameters.body}",
			},
		},
	}, nil
}

// MapText wraps text as a single user message in Converse block form.
func (b *BedrockConverse) MapText(text string, kind messages.AgentKind) (Result, error) {
	if kind == messages.KindPlanExecuteAndReflect {
		text = promptPlaceholder
	}

	body, err := marshalBody(map[string]any{
		"messages": []map[string]any{
			{
				"role":    string(messages.RoleUser),
				"content": []map[string]any{{"text": text}},
			},
		},
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body}, nil
}

// MapBlocks emits one Converse content element per block, in order,
// inside a single user message. Nil or empty input produces a valid
// empty-content message.
func (b *BedrockConverse) MapBlocks(blocks []messages.ContentBlock, kind messages.AgentKind) (Result, error) {
	content, err := b.mapContent(blocks)
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

// MapMessages translates a message history into the Converse messages
// array. The tool role is rewritten to user, and runs of consecutive tool
// messages fold into one user message holding a toolResult block per
// original message, in original order.
func (b *BedrockConverse) MapMessages(msgs []messages.Message, kind messages.AgentKind) (Result, error) {
	wire := make([]map[string]any, 0, len(msgs))

	// Index into wire of the user message currently collecting tool
	// results, or -1 when the previous message was not a tool message.
	lastToolResult := -1

	for _, msg := range msgs {
		if msg.Role == messages.RoleTool {
			content, err := b.mapContent(msg.Content)
			if err != nil {
				return Result{}, err
			}
			block := map[string]any{
				"toolResult": map[string]any{
					"toolUseId": msg.ToolCallID,
					"content":   content,
				},
			}
			if lastToolResult >= 0 {
				merged := wire[lastToolResult]["content"].([]map[string]any)
				wire[lastToolResult]["content"] = append(merged, block)
				continue
			}
			wire = append(wire, map[string]any{
				"role":    string(messages.RoleUser),
				"content": []map[string]any{block},
			})
			lastToolResult = len(wire) - 1
			continue
		}

		lastToolResult = -1

		content, err := b.mapContent(msg.Content)
		if err != nil {
			return Result{}, err
		}
		if msg.Role == messages.RoleAssistant {
			for _, call := range msg.ToolCalls {
				content = append(content, map[string]any{
					"toolUse": map[string]any{
						"toolUseId": call.ID,
						"name":      call.Name,
						"input":     rawArguments(call.Arguments),
					},
				})
			}
		}
		wire = append(wire, map[string]any{
			"role":    string(msg.Role),
			"content": content,
		})
	}

	body, err := marshalBody(map[string]any{"messages": wire})
	if err != nil {
		return Result{}, err
	}
	return Result{Body: body, NoEscapeParams: noEscapeParams()}, nil
}

func (b *BedrockConverse) mapContent(blocks []messages.ContentBlock) ([]map[string]any, error) {
	content := make([]map[string]any, 0, len(blocks))
	for _, block := range blocks {
		element, err := b.mapBlock(block)
		if err != nil {
			return nil, err
		}
		content = append(content, element)
	}
	return content, nil
}

// mapBlock converts one canonical block into its Converse element. URL
// sources are validated before anything else so an invalid block never
// yields partial output.
func (b *BedrockConverse) mapBlock(block messages.ContentBlock) (map[string]any, error) {
	if !bedrockCapabilities.Supports(block.Type) {
		return nil, &CapabilityError{Provider: BedrockConverseKey, Modality: string(block.Type)}
	}

	if block.Type == messages.BlockText {
		return map[string]any{"text": block.Text}, nil
	}

	var source map[string]any
	switch block.Source {
	case messages.SourceURL:
		if !strings.HasPrefix(block.Data, s3URIPrefix) {
			return nil, &UnsupportedSourceError{Provider: BedrockConverseKey, URL: block.Data}
		}
		source = map[string]any{
			"s3Location": map[string]any{"uri": block.Data},
		}
	default:
		source = map[string]any{"bytes": block.Data}
	}

	return map[string]any{
		string(block.Type): map[string]any{
			"format": block.Format,
			"source": source,
		},
	}, nil
}
