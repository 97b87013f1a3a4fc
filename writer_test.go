package mdfmt

import (
	"bytes"
	"testing"
)

func TestWriterDropsPendingSpacesOnBreak(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	if err := w.writeText("a"); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.writeNonBreakingSpace()
	w.writeNonBreakingSpace()
	if err := w.writeHardBreak(); err != nil {
		t.Fatalf("break: %v", err)
	}
	if err := w.writeText("b"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "a\nb" {
		t.Fatalf("got %q, want %q", buf.String(), "a\nb")
	}
}

func TestWriterFlushesPendingSpacesBeforeText(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	w.writeNonBreakingSpace()
	if err := w.writeText("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != " x" {
		t.Fatalf("got %q, want %q", buf.String(), " x")
	}
}

func TestWriterIndentComposesOuterToInner(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	w.pushFrame(frame{kind: frameListItem})
	w.pushFrame(frame{kind: frameBlockQuote})
	w.pushFrame(frame{kind: frameListItem, ordered: true, next: 2})
	if err := w.writeIndent(); err != nil {
		t.Fatalf("indent: %v", err)
	}
	if err := w.writeText("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	// 2 deferred bullet spaces, quote marker plus 1, ordinal width 2/10+3.
	if buf.String() != "  >    x" {
		t.Fatalf("got %q, want %q", buf.String(), "  >    x")
	}
}

func TestWriterOrdinalWidthGrowsWithOrdinal(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	w.pushFrame(frame{kind: frameListItem, ordered: true, next: 12})
	if err := w.writeIndent(); err != nil {
		t.Fatalf("indent: %v", err)
	}
	if err := w.writeText("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "    x" {
		t.Fatalf("got %q, want %q", buf.String(), "    x")
	}
}

func TestWriterIndentBlankQuoteLineHasNoTrailingSpace(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	w.pushFrame(frame{kind: frameBlockQuote})
	if err := w.writeIndent(); err != nil {
		t.Fatalf("indent: %v", err)
	}
	if err := w.writeHardBreak(); err != nil {
		t.Fatalf("break: %v", err)
	}
	if buf.String() != ">\n" {
		t.Fatalf("got %q, want %q", buf.String(), ">\n")
	}
}

func TestWriterPrefixDeferredUntilFirstWrite(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "//!")
	if buf.Len() != 0 {
		t.Fatalf("constructor wrote %q", buf.String())
	}
	if err := w.writeText("doc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "//! doc" {
		t.Fatalf("got %q, want %q", buf.String(), "//! doc")
	}
}

func TestWriterFrameStackGrowsPastBackingArray(t *testing.T) {
	var buf bytes.Buffer
	w := newIndentWriter(&buf, "")
	depth := len(w.framesArr) + 8
	for i := 0; i < depth; i++ {
		w.pushFrame(frame{kind: frameBlockQuote})
	}
	if err := w.writeIndent(); err != nil {
		t.Fatalf("indent: %v", err)
	}
	if err := w.writeText("deep"); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">"
	for i := 1; i < depth; i++ {
		want += " >"
	}
	want += " deep"
	if buf.String() != want {
		t.Fatalf("depth %d: got %q", depth, buf.String())
	}
	for i := 0; i < depth; i++ {
		w.popFrame()
	}
	if w.topFrame() != nil {
		t.Fatal("expected empty stack")
	}
	w.popFrame()
}
