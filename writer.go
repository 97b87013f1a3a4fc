package mdfmt

import (
	"io"
	"strings"
)

type frameKind uint8

const (
	frameListItem frameKind = iota
	frameBlockQuote
)

// frame is one level of open block nesting. For ordered list items next is
// the ordinal the next rendered item will use; unordered items and block
// quotes leave it unused.
type frame struct {
	kind    frameKind
	ordered bool
	next    int
}

// indentWriter owns the output sink, the fixed line prefix, the stack of
// open block frames and the deferred-space count. Spaces requested through
// writeNonBreakingSpace are withheld until the next literal write and
// dropped by any break, which keeps block and line boundaries free of
// trailing whitespace.
type indentWriter struct {
	out           io.Writer
	prefix        string
	frames        []frame
	pendingSpaces int
	atDocStart    bool

	framesArr [32]frame
}

func newIndentWriter(out io.Writer, prefix string) *indentWriter {
	w := &indentWriter{}
	w.reset(out, prefix)
	return w
}

func (w *indentWriter) reset(out io.Writer, prefix string) {
	w.out = out
	w.prefix = prefix
	w.frames = w.framesArr[:0]
	w.pendingSpaces = 0
	w.atDocStart = true
}

func (w *indentWriter) pushFrame(f frame) {
	w.frames = append(w.frames, f)
}

func (w *indentWriter) popFrame() {
	if len(w.frames) > 0 {
		w.frames = w.frames[:len(w.frames)-1]
	}
}

// topFrame returns a pointer into the top stack slot so the printer can
// advance the ordinal in place, or nil when the stack is empty.
func (w *indentWriter) topFrame() *frame {
	if len(w.frames) == 0 {
		return nil
	}
	return &w.frames[len(w.frames)-1]
}

func (w *indentWriter) writeText(text string) error {
	if w.atDocStart {
		if err := w.writePrefix(); err != nil {
			return err
		}
	}
	if w.pendingSpaces > 0 {
		if err := writeSpaces(w.out, w.pendingSpaces); err != nil {
			return err
		}
		w.pendingSpaces = 0
	}
	_, err := io.WriteString(w.out, text)
	return err
}

func (w *indentWriter) writeHardBreak() error {
	w.atDocStart = false
	w.pendingSpaces = 0
	_, err := io.WriteString(w.out, "\n")
	return err
}

func (w *indentWriter) writeSoftBreak() error {
	w.atDocStart = false
	w.pendingSpaces = 0
	// Wrapping is left to downstream tooling; a soft break is one space.
	_, err := io.WriteString(w.out, " ")
	return err
}

func (w *indentWriter) writeNonBreakingSpace() {
	w.pendingSpaces++
}

// writePrefix emits the line prefix followed by one deferred space, so a
// line that stays otherwise blank carries the bare prefix with no trailing
// whitespace. The first line of the document defers the prefix itself: an
// empty document produces no output at all.
func (w *indentWriter) writePrefix() error {
	w.atDocStart = false
	if w.prefix == "" {
		return nil
	}
	if _, err := io.WriteString(w.out, w.prefix); err != nil {
		return err
	}
	w.pendingSpaces++
	return nil
}

// writeIndent emits the line prefix and each open frame's contribution,
// outermost first. Quote markers are written immediately so a blank line
// inside a quote still carries its ">"; list alignment is deferred so it
// vanishes on lines that stay blank.
func (w *indentWriter) writeIndent() error {
	if err := w.writePrefix(); err != nil {
		return err
	}
	for i := range w.frames {
		switch f := &w.frames[i]; f.kind {
		case frameListItem:
			if f.ordered {
				w.pendingSpaces += f.next/10 + 3
			} else {
				w.pendingSpaces += 2
			}
		case frameBlockQuote:
			if err := w.writeText(">"); err != nil {
				return err
			}
			w.pendingSpaces++
		}
	}
	return nil
}

var spaceRun = strings.Repeat(" ", 256)

func writeSpaces(out io.Writer, n int) error {
	for n > 0 {
		chunk := n
		if chunk > len(spaceRun) {
			chunk = len(spaceRun)
		}
		if _, err := io.WriteString(out, spaceRun[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
