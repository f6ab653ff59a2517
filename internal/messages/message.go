package messages

// Role identifies the author of a conversational turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// AgentKind selects the prompting policy an agent runs under. Under
// KindPlanExecuteAndReflect the text mapping path emits a template
// placeholder instead of the literal text, deferring substitution to a
// later templating stage.
type AgentKind string

const (
	KindConversational        AgentKind = "conversational"
	KindPlanExecuteAndReflect AgentKind = "plan_execute_and_reflect"
)

// ToolCall is a request to invoke an external function during a
// conversation. Arguments is an opaque JSON-encoded string; adapters embed
// it without re-parsing it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Message is a single role-tagged turn in a conversation history.
// ToolCallID is set if and only if the role is tool; ToolCalls may be set
// only on assistant messages.
type Message struct {
	Role       Role
	Content    []ContentBlock
	ToolCalls  []ToolCall
	ToolCallID string
}
