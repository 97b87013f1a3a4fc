// Package mdfmt pretty prints Markdown into a canonical form.
//
// The formatter consumes the structural event stream of a parsed document
// and re-serializes it: alternate marker spellings collapse to one
// canonical spelling, blank lines between blocks are normalized to exactly
// one, and nested list and quote content is re-indented consistently. It
// never inspects raw source text; parsing is delegated to goldmark.
//
// Core properties:
//   - Canonical markers: *emphasis*, **strong**, - bullets, sequential ordinals
//   - Exactly one blank line between sibling blocks, never a trailing one
//   - Indentation composed per nesting level, quotes keep their > on blank lines
//   - Optional per-line prefix for embedding output in comment blocks
//
// Example:
//
//	out, err := mdfmt.Format([]byte("Lorem __ipsum__ dolor `sit` amet!"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(string(out)) // Lorem **ipsum** dolor `sit` amet!
//
// For event-level control, feed Events output (or hand-built events) into a
// Printer bound to any io.Writer.
package mdfmt
