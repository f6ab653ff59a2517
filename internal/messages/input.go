package messages

// AgentInput is the canonical, provider-agnostic representation of what an
// agent is being asked: exactly one of plain text, a flat content-block
// list, or a role-tagged message history. The interface is sealed so the
// dispatch boundary can match exhaustively on the three shapes.
type AgentInput interface {
	agentInput()
}

// TextInput is plain-text agent input.
type TextInput string

// BlockInput is an ordered sequence of content blocks.
type BlockInput []ContentBlock

// MessageInput is an ordered multi-turn message history.
type MessageInput []Message

func (TextInput) agentInput()    {}
func (BlockInput) agentInput()   {}
func (MessageInput) agentInput() {}
