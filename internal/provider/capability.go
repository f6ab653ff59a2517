package provider

import "searchforge/mlbridge/internal/messages"

// Capabilities records the static facts about one vendor API: which
// content modalities it accepts and the connector defaults applied at
// construction time. Keeping this as data means adding a vendor is a
// table change, not new branching inside an adapter.
type Capabilities struct {
	Modalities      map[messages.BlockType]bool
	DefaultRegion   string
	DefaultEndpoint string
	MaxRetries      int
}

// Supports reports whether the vendor accepts the given modality.
func (c Capabilities) Supports(t messages.BlockType) bool {
	return c.Modalities[t]
}
