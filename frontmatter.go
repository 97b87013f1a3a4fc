package mdfmt

import "bytes"

// splitFrontMatter separates a leading front matter block from the document
// body. The block opens with a ---, +++ or ;;; delimiter on the first line,
// must be followed by metadata-looking content, and runs through the
// matching closing delimiter line. Documents without such a block return
// (nil, src) unchanged; the formatter re-emits the block verbatim rather
// than feeding metadata to the Markdown parser.
func splitFrontMatter(src []byte) (matter, body []byte) {
	openLine, openNext, ok := frontMatterLine(src, 0)
	if !ok {
		return nil, src
	}
	delim, isFrontMatter := frontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, src
	}
	secondLine, secondNext, ok := frontMatterLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return nil, src
	}
	for idx := secondNext; idx <= len(src); {
		line, next, ok := frontMatterLine(src, idx)
		if !ok {
			return nil, src
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[:next], src[next:]
		}
		if next == idx {
			return nil, src
		}
		idx = next
	}
	return nil, src
}

// frontMatterLine returns the line starting at start with CR trimmed, and
// the offset just past its newline.
func frontMatterLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

// frontMatterMetadataLikely reports whether a line plausibly begins a
// metadata body, keeping thematic breaks at the top of plain documents out
// of the front matter path.
func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
