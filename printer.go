package mdfmt

import (
	"io"
	"strconv"
	"strings"
)

// Printer is an event-driven pretty printer for Markdown documents.
//
// Events are pushed one at a time, typically obtained from Events. Each
// event is translated into canonical markers and indentation on the
// underlying writer. A Printer is single-use per document; Reset prepares
// it for another one.
//
// Example:
//
//	var buf bytes.Buffer
//	p := mdfmt.NewPrinter(&buf, mdfmt.WithPrefix("///"))
//	if err := p.PushAll(mdfmt.Events([]byte("Lorem _ipsum_!\n\nDolor `sit`."))); err != nil {
//		log.Fatal(err)
//	}
//	// buf now holds "/// Lorem *ipsum*!\n///\n/// Dolor `sit`."
type Printer struct {
	w          *indentWriter
	needsBreak bool
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Printer{w: newIndentWriter(out, cfg.prefix)}
}

// Reset clears printer state for reuse with a new writer.
func (p *Printer) Reset(out io.Writer, opts ...Option) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	p.w.reset(out, cfg.prefix)
	p.needsBreak = false
}

// Push translates a single event into output. The only possible error is a
// write failure from the underlying sink; it terminates the document.
func (p *Printer) Push(ev Event) error {
	switch ev.Kind {
	case EventStart:
		return p.pushStart(ev.Tag)
	case EventEnd:
		return p.pushEnd(ev.Tag)
	case EventText:
		return p.pushText(ev.Text)
	case EventRawInline:
		return p.w.writeText(ev.Text)
	case EventSoftBreak:
		return p.w.writeSoftBreak()
	case EventHardBreak:
		if err := p.w.writeText("\\"); err != nil {
			return err
		}
		if err := p.w.writeHardBreak(); err != nil {
			return err
		}
		return p.w.writeIndent()
	case EventRawBlock, EventFootnoteReference:
		// Not supported; consumed without output.
	}
	return nil
}

// PushAll pushes events in order, stopping at the first write failure.
func (p *Printer) PushAll(events []Event) error {
	for _, ev := range events {
		if err := p.Push(ev); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) pushStart(tag Tag) error {
	switch tag.Kind {
	case TagParagraph:
		return p.flushBreak()
	case TagRule:
		if err := p.flushBreak(); err != nil {
			return err
		}
		return p.w.writeText("---")
	case TagHeading:
		if err := p.flushBreak(); err != nil {
			return err
		}
		if err := p.w.writeText(strings.Repeat("#", tag.Level)); err != nil {
			return err
		}
		p.w.writeNonBreakingSpace()
	case TagList:
		if err := p.flushBreak(); err != nil {
			return err
		}
		p.w.pushFrame(frame{kind: frameListItem, ordered: tag.Ordered, next: tag.Start})
	case TagItem:
		top := p.w.topFrame()
		if top == nil || top.kind != frameListItem {
			// A stray frame here means the event stream is malformed;
			// swallow the item marker rather than corrupt the stack.
			return nil
		}
		// The marker line is indented at the list's own level, so the
		// item frame stays off the stack while the separator is written.
		item := *top
		p.w.popFrame()
		if err := p.flushBreak(); err != nil {
			return err
		}
		if item.ordered {
			if err := p.w.writeText(strconv.Itoa(item.next) + "."); err != nil {
				return err
			}
			item.next++
		} else {
			if err := p.w.writeText("-"); err != nil {
				return err
			}
		}
		p.w.writeNonBreakingSpace()
		p.w.pushFrame(item)
	case TagBlockQuote:
		if err := p.flushBreak(); err != nil {
			return err
		}
		if err := p.w.writeText(">"); err != nil {
			return err
		}
		p.w.writeNonBreakingSpace()
		p.w.pushFrame(frame{kind: frameBlockQuote})
	case TagCodeBlock:
		if err := p.flushBreak(); err != nil {
			return err
		}
		if err := p.w.writeText("```" + tag.Info); err != nil {
			return err
		}
		if err := p.w.writeHardBreak(); err != nil {
			return err
		}
		return p.w.writeIndent()
	case TagEmphasis:
		return p.w.writeText("*")
	case TagStrong:
		return p.w.writeText("**")
	case TagInlineCode:
		return p.w.writeText("`")
	case TagLink:
		return p.w.writeText("[")
	case TagImage:
		return p.w.writeText("![")
	case TagFootnoteDefinition, TagTable, TagTableHead, TagTableRow, TagTableCell:
		// Not supported; consumed without output.
	}
	return nil
}

func (p *Printer) pushEnd(tag Tag) error {
	switch tag.Kind {
	case TagParagraph, TagRule, TagHeading, TagItem:
		p.needsBreak = true
	case TagList, TagBlockQuote:
		p.w.popFrame()
		p.needsBreak = true
	case TagCodeBlock:
		if err := p.w.writeText("```"); err != nil {
			return err
		}
		p.needsBreak = true
	case TagEmphasis:
		return p.w.writeText("*")
	case TagStrong:
		return p.w.writeText("**")
	case TagInlineCode:
		return p.w.writeText("`")
	case TagLink, TagImage:
		if tag.Title == "" {
			return p.w.writeText("](" + tag.Destination + ")")
		}
		return p.w.writeText("](" + tag.Destination + " \"" + tag.Title + "\")")
	case TagFootnoteDefinition, TagTable, TagTableHead, TagTableRow, TagTableCell:
		// Not supported; consumed without output.
	}
	return nil
}

// pushText re-indents any line breaks embedded in a single text event so
// continuation lines stay aligned under the enclosing markers.
func (p *Printer) pushText(text string) error {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := p.w.writeHardBreak(); err != nil {
				return err
			}
			if err := p.w.writeIndent(); err != nil {
				return err
			}
		}
		if err := p.w.writeText(line); err != nil {
			return err
		}
	}
	return nil
}

// flushBreak resolves a deferred block separator: one blank line, with each
// of its two line starts indented so nested quote markers survive on the
// blank line.
func (p *Printer) flushBreak() error {
	if p.needsBreak {
		for i := 0; i < 2; i++ {
			if err := p.w.writeHardBreak(); err != nil {
				return err
			}
			if err := p.w.writeIndent(); err != nil {
				return err
			}
		}
	}
	p.needsBreak = false
	return nil
}
