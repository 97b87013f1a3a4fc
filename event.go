package mdfmt

// EventKind identifies the type of a parser event.
type EventKind uint8

const (
	// EventStart opens the construct described by the event's Tag.
	EventStart EventKind = iota
	// EventEnd closes the construct described by the event's Tag.
	EventEnd
	// EventText carries literal text.
	EventText
	// EventRawInline carries inline raw markup, passed through verbatim.
	EventRawInline
	// EventRawBlock carries block-level raw markup. It produces no output.
	EventRawBlock
	// EventSoftBreak is an insignificant line break inside a paragraph.
	EventSoftBreak
	// EventHardBreak is an explicit line break inside a paragraph.
	EventHardBreak
	// EventFootnoteReference is a footnote use. It produces no output.
	EventFootnoteReference
)

// TagKind identifies the construct delimited by a Start/End event pair.
type TagKind uint8

const (
	// TagParagraph is a paragraph block.
	TagParagraph TagKind = iota
	// TagRule is a thematic break.
	TagRule
	// TagHeading is a heading block; Tag.Level holds the level (1-6).
	TagHeading
	// TagList is a list block; Tag.Ordered and Tag.Start describe it.
	TagList
	// TagItem is one list item.
	TagItem
	// TagBlockQuote is a block quote.
	TagBlockQuote
	// TagCodeBlock is a fenced code block; Tag.Info holds the info string.
	TagCodeBlock
	// TagEmphasis is an emphasis span.
	TagEmphasis
	// TagStrong is a strong emphasis span.
	TagStrong
	// TagInlineCode is an inline code span.
	TagInlineCode
	// TagLink is a link span; Tag.Destination and Tag.Title describe it.
	TagLink
	// TagImage is an image span, closed like a link.
	TagImage
	// TagFootnoteDefinition is a footnote body. It produces no output.
	TagFootnoteDefinition
	// TagTable and the cell tags below are accepted but produce no output.
	TagTable
	// TagTableHead is a table header row.
	TagTableHead
	// TagTableRow is a table body row.
	TagTableRow
	// TagTableCell is a single table cell.
	TagTableCell
)

// Tag describes one structural construct. Only the fields relevant to its
// Kind are meaningful.
type Tag struct {
	Kind        TagKind
	Level       int
	Ordered     bool
	Start       int
	Info        string
	Destination string
	Title       string
}

// Event is one unit of the parsed document stream. The printer only reads
// events; it never retains or mutates them.
type Event struct {
	Kind EventKind
	Tag  Tag
	Text string
}

// Start returns a start event for tag.
func Start(tag Tag) Event { return Event{Kind: EventStart, Tag: tag} }

// End returns an end event for tag.
func End(tag Tag) Event { return Event{Kind: EventEnd, Tag: tag} }

// Text returns a literal text event.
func Text(text string) Event { return Event{Kind: EventText, Text: text} }

// RawInline returns an inline raw markup event.
func RawInline(markup string) Event { return Event{Kind: EventRawInline, Text: markup} }

// SoftBreak returns a soft break event.
func SoftBreak() Event { return Event{Kind: EventSoftBreak} }

// HardBreak returns a hard break event.
func HardBreak() Event { return Event{Kind: EventHardBreak} }

// Paragraph returns a paragraph tag.
func Paragraph() Tag { return Tag{Kind: TagParagraph} }

// Rule returns a thematic break tag.
func Rule() Tag { return Tag{Kind: TagRule} }

// Heading returns a heading tag for the given level.
func Heading(level int) Tag { return Tag{Kind: TagHeading, Level: level} }

// BulletList returns an unordered list tag.
func BulletList() Tag { return Tag{Kind: TagList} }

// OrderedList returns an ordered list tag starting at start.
func OrderedList(start int) Tag { return Tag{Kind: TagList, Ordered: true, Start: start} }

// Item returns a list item tag.
func Item() Tag { return Tag{Kind: TagItem} }

// BlockQuote returns a block quote tag.
func BlockQuote() Tag { return Tag{Kind: TagBlockQuote} }

// CodeBlock returns a code block tag with the given info string.
func CodeBlock(info string) Tag { return Tag{Kind: TagCodeBlock, Info: info} }

// Emphasis returns an emphasis tag.
func Emphasis() Tag { return Tag{Kind: TagEmphasis} }

// Strong returns a strong emphasis tag.
func Strong() Tag { return Tag{Kind: TagStrong} }

// InlineCode returns an inline code tag.
func InlineCode() Tag { return Tag{Kind: TagInlineCode} }

// Link returns a link tag.
func Link(destination, title string) Tag {
	return Tag{Kind: TagLink, Destination: destination, Title: title}
}

// Image returns an image tag.
func Image(destination, title string) Tag {
	return Tag{Kind: TagImage, Destination: destination, Title: title}
}
