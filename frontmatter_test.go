package mdfmt

import "testing"

func TestSplitFrontMatterYAML(t *testing.T) {
	src := []byte("---\ntitle: Test\ndate: 2026-01-01\n---\nbody text\n")
	matter, body := splitFrontMatter(src)
	if string(matter) != "---\ntitle: Test\ndate: 2026-01-01\n---\n" {
		t.Fatalf("matter %q", string(matter))
	}
	if string(body) != "body text\n" {
		t.Fatalf("body %q", string(body))
	}
}

func TestSplitFrontMatterTOMLAndJSONDelimiters(t *testing.T) {
	cases := []string{
		"+++\ntitle = \"Test\"\n+++\nbody\n",
		";;;\n{\"title\": \"Test\"}\n;;;\nbody\n",
	}
	for _, src := range cases {
		matter, body := splitFrontMatter([]byte(src))
		if len(matter) == 0 {
			t.Fatalf("no front matter detected in %q", src)
		}
		if string(body) != "body\n" {
			t.Fatalf("body %q for %q", string(body), src)
		}
	}
}

func TestSplitFrontMatterRequiresMetadata(t *testing.T) {
	src := []byte("---\nJust a paragraph\n---\nbody\n")
	matter, body := splitFrontMatter(src)
	if matter != nil {
		t.Fatalf("unexpected matter %q", string(matter))
	}
	if string(body) != string(src) {
		t.Fatalf("body %q", string(body))
	}
}

func TestSplitFrontMatterUnclosed(t *testing.T) {
	src := []byte("---\ntitle: Test\nnever closed\n")
	matter, body := splitFrontMatter(src)
	if matter != nil {
		t.Fatalf("unexpected matter %q", string(matter))
	}
	if string(body) != string(src) {
		t.Fatalf("body %q", string(body))
	}
}

func TestSplitFrontMatterCRLFAndBOM(t *testing.T) {
	src := []byte("\xef\xbb\xbf---\r\ntitle: Test\r\n---\r\nbody\r\n")
	matter, body := splitFrontMatter(src)
	if len(matter) == 0 {
		t.Fatal("expected front matter with BOM and CRLF")
	}
	if string(body) != "body\r\n" {
		t.Fatalf("body %q", string(body))
	}
}

func TestSplitFrontMatterEmptyDocument(t *testing.T) {
	matter, body := splitFrontMatter(nil)
	if matter != nil || body != nil {
		t.Fatalf("got %q / %q", string(matter), string(body))
	}
}
