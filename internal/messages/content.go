package messages

// BlockType tags one unit of multi-modal content.
type BlockType string

const (
	BlockText     BlockType = "text"
	BlockImage    BlockType = "image"
	BlockVideo    BlockType = "video"
	BlockDocument BlockType = "document"
)

// SourceType selects how a media block carries its payload: inline base64
// data or a URI.
type SourceType string

const (
	SourceBase64 SourceType = "base64"
	SourceURL    SourceType = "url"
)

// ContentBlock is one unit of agent content. Text blocks use Text; media
// blocks carry their payload in Data (inline base64 or a URI, per Source)
// and a lowercase file-extension tag in Format (png, pdf, mp4) that is
// used verbatim in vendor payloads.
type ContentBlock struct {
	Type   BlockType
	Text   string
	Source SourceType
	Format string
	Data   string
}

// TextBlock wraps plain text as a content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: BlockText, Text: text}
}

// ImageBlock builds an image content block.
func ImageBlock(source SourceType, format, data string) ContentBlock {
	return ContentBlock{Type: BlockImage, Source: source, Format: format, Data: data}
}

// VideoBlock builds a video content block.
func VideoBlock(source SourceType, format, data string) ContentBlock {
	return ContentBlock{Type: BlockVideo, Source: source, Format: format, Data: data}
}

// DocumentBlock builds a document content block.
func DocumentBlock(source SourceType, format, data string) ContentBlock {
	return ContentBlock{Type: BlockDocument, Source: source, Format: format, Data: data}
}
