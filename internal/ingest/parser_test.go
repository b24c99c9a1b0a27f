package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Chapter 1</w:t></w:r></w:p><w:p><w:r><w:t>Hello world.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if Normalize(got) != "Chapter 1\nHello world." {
		t.Fatalf("expected two paragraphs, got %q", got)
	}
}

func TestParseDOCXRunsAndRevisions(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>One</w:t><w:tab/><w:t>two</w:t><w:br/><w:t>three</w:t></w:r>`+
		`<w:del><w:r><w:delText>gone</w:delText></w:r></w:del>`+
		`<w:r><w:instrText>PAGE</w:instrText></w:r></w:p>`+
		`<w:p/><w:p><w:r><w:t xml:space="preserve">Last </w:t><w:t>line.</w:t></w:r></w:p>`+
		`</w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if want := "One two\nthree\nLast line."; Normalize(got) != want {
		t.Fatalf("expected %q, got %q", want, Normalize(got))
	}
}

func TestParseDOCXMissingBody(t *testing.T) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if _, err := parseDOCX(b.Bytes()); err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Fatalf("expected missing document.xml error, got %v", err)
	}
}

func TestParseFileDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.docx")
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Dear   reader,</w:t></w:r></w:p></w:body></w:document>`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if parsed.Title != "letter" || parsed.Format != "docx" || parsed.Text != "Dear reader," {
		t.Fatalf("unexpected parse result: %+v", parsed)
	}
}

func TestParseFileText(t *testing.T) {
	parsed, err := ParseFile(filepath.Join("testdata", "note.txt"))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if parsed.Text != "Café au lait.\nSecond line." {
		t.Fatalf("expected NFC text with collapsed whitespace, got %q", parsed.Text)
	}
}

func TestParseFileMarkdown(t *testing.T) {
	parsed, err := ParseFile(filepath.Join("testdata", "essay.md"))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	for _, want := range []string{"On Style", "fingerprints in every sentence.", "short words", "Second point!"} {
		if !strings.Contains(parsed.Text, want) {
			t.Fatalf("expected %q in %q", want, parsed.Text)
		}
	}
	for _, unwanted := range []string{"author:", "func ignored", "raw html", "https://", "*", "#"} {
		if strings.Contains(parsed.Text, unwanted) {
			t.Fatalf("expected %q to be stripped from %q", unwanted, parsed.Text)
		}
	}
}

func TestParseFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.odt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	_, err := ParseFile(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if Supported(path) || !Supported("a.PDF") || !Supported("b.markdown") {
		t.Fatal("unexpected Supported result")
	}
}

func TestParseFileInvalidInputs(t *testing.T) {
	dir := t.TempDir()
	bad := map[string][]byte{
		"broken.pdf":  []byte("not a pdf"),
		"broken.docx": []byte("not a zip"),
		"binary.txt":  {0xff, 0xfe, 0x00},
	}
	for name, raw := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := ParseFile(path); err == nil {
			t.Fatalf("expected error for %s", name)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  a\t b \r\n\r\n\n c  ")
	if got != "a b\nc" {
		t.Fatalf("expected %q, got %q", "a b\nc", got)
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
