package mdfmt

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Events parses a Markdown document and returns its structural event
// stream. The stream can be replayed into a Printer, filtered, or inspected
// directly. Parsing is delegated to goldmark; this function only flattens
// the AST into ordered start/end events.
func Events(source []byte) []Event {
	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(source))
	events := make([]Event, 0, 64)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Document:
		case *ast.Paragraph, *ast.TextBlock:
			events = appendPair(events, Paragraph(), entering)
		case *ast.Heading:
			events = appendPair(events, Heading(n.Level), entering)
		case *ast.ThematicBreak:
			if entering {
				events = append(events, Start(Rule()), End(Rule()))
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			tag := BulletList()
			if n.IsOrdered() {
				tag = OrderedList(n.Start)
			}
			events = appendPair(events, tag, entering)
		case *ast.ListItem:
			events = appendPair(events, Item(), entering)
		case *ast.Blockquote:
			events = appendPair(events, BlockQuote(), entering)
		case *ast.FencedCodeBlock:
			tag := CodeBlock(fenceInfo(n, source))
			if entering {
				events = append(events, Start(tag))
				events = appendCodeLines(events, n, source)
			} else {
				events = append(events, End(tag))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			tag := CodeBlock("")
			if entering {
				events = append(events, Start(tag))
				events = appendCodeLines(events, n, source)
			} else {
				events = append(events, End(tag))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			if entering {
				events = append(events, Event{Kind: EventRawBlock, Text: blockLines(n, source)})
			}
			return ast.WalkSkipChildren, nil
		case *ast.Emphasis:
			tag := Emphasis()
			if n.Level == 2 {
				tag = Strong()
			}
			events = appendPair(events, tag, entering)
		case *ast.CodeSpan:
			if entering {
				events = append(events, Start(InlineCode()), Text(codeSpanText(n, source)))
			} else {
				events = append(events, End(InlineCode()))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			events = appendPair(events, Link(string(n.Destination), string(n.Title)), entering)
		case *ast.Image:
			events = appendPair(events, Image(string(n.Destination), string(n.Title)), entering)
		case *ast.AutoLink:
			if entering {
				label := string(n.Label(source))
				dest := label
				if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
					dest = "mailto:" + dest
				}
				tag := Link(dest, "")
				events = append(events, Start(tag), Text(label), End(tag))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			if entering {
				events = append(events, RawInline(segmentsText(n.Segments, source)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				value := string(n.Segment.Value(source))
				if n.SoftLineBreak() || n.HardLineBreak() {
					value = strings.TrimRight(value, " \t")
				}
				events = append(events, Text(value))
				if n.SoftLineBreak() {
					events = append(events, SoftBreak())
				} else if n.HardLineBreak() {
					events = append(events, HardBreak())
				}
			}
		case *ast.String:
			if entering {
				events = append(events, Text(string(n.Value)))
			}
		}
		return ast.WalkContinue, nil
	})
	return events
}

func appendPair(events []Event, tag Tag, entering bool) []Event {
	if entering {
		return append(events, Start(tag))
	}
	return append(events, End(tag))
}

func fenceInfo(n *ast.FencedCodeBlock, source []byte) string {
	if n.Info == nil {
		return ""
	}
	return string(n.Info.Segment.Value(source))
}

// appendCodeLines emits one text event per code line, trailing newline
// included, so the printer re-indents every line under the open fence.
func appendCodeLines(events []Event, n ast.Node, source []byte) []Event {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		events = append(events, Text(string(line.Value(source))))
	}
	return events
}

func blockLines(n *ast.HTMLBlock, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	if n.HasClosure() {
		sb.Write(n.ClosureLine.Value(source))
	}
	return sb.String()
}

// codeSpanText joins a code span's text segments, turning interior line
// endings into single spaces the way the dialect defines for inline code.
func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(source)
		if len(value) > 0 && value[len(value)-1] == '\n' {
			sb.Write(value[:len(value)-1])
			sb.WriteByte(' ')
		} else {
			sb.Write(value)
		}
	}
	return sb.String()
}

func segmentsText(segments *gmtext.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
