package mdfmt

import (
	"bytes"
	"fmt"
	"io"
)

// Option configures formatting behavior.
type Option func(*config)

type config struct {
	prefix string
}

// WithPrefix sets a prefix written at the start of every output line. Lines
// with content get the prefix followed by one space; blank separator lines
// get the bare prefix. Useful for embedding output in comment blocks, e.g.
// WithPrefix("///").
func WithPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.prefix = prefix
	}
}

// Format parses a Markdown document and returns it pretty printed in
// canonical form. A front matter block at the top of the document is passed
// through verbatim. Input that is not valid UTF-8 or looks binary is
// rejected with ErrInvalidUTF8 or ErrBinaryInput.
func Format(src []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, src, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fprint formats src like Format, writing the result to w.
func Fprint(w io.Writer, src []byte, opts ...Option) error {
	if w == nil {
		return fmt.Errorf("format: writer is nil")
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	matter, body := splitFrontMatter(src)
	events := Events(body)
	if len(matter) == 0 {
		printer := NewPrinter(w, opts...)
		return printer.PushAll(events)
	}
	// The body is rendered first: events that print nothing (a raw HTML
	// block, say) must not leave a dangling separator after the matter.
	var rendered bytes.Buffer
	printer := NewPrinter(&rendered, opts...)
	if err := printer.PushAll(events); err != nil {
		return err
	}
	if rendered.Len() == 0 {
		_, err := w.Write(bytes.TrimRight(matter, "\n"))
		return err
	}
	if _, err := w.Write(matter); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	_, err := w.Write(rendered.Bytes())
	return err
}
