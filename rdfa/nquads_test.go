package rdfa

import (
	"bytes"
	"strings"
	"testing"
)

func TestNQuadsWriter(t *testing.T) {
	factory := NewTermFactory()
	quads := []Quad{
		factory.Quad(
			factory.NamedNode("http://example.org/s"),
			factory.NamedNode("http://purl.org/dc/terms/title"),
			factory.Literal("A \"quoted\" title", "en", IRI{}),
			factory.NamedNode("http://example.org/g"),
		),
		factory.Quad(
			factory.BlankNode("b0"),
			factory.NamedNode("http://purl.org/dc/terms/date"),
			factory.Literal("2012-03-18", "", factory.NamedNode("http://www.w3.org/2001/XMLSchema#date")),
			nil,
		),
	}

	var buf bytes.Buffer
	w := NewNQuadsWriter(&buf)
	for _, q := range quads {
		if err := w.Write(q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<http://example.org/s> <http://purl.org/dc/terms/title> "A \"quoted\" title"@en <http://example.org/g> .
_:b0 <http://purl.org/dc/terms/date> "2012-03-18"^^<http://www.w3.org/2001/XMLSchema#date> .
`
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestNTriplesWriterDropsGraph(t *testing.T) {
	factory := NewTermFactory()
	quad := factory.Quad(
		factory.NamedNode("http://example.org/s"),
		factory.NamedNode("http://example.org/p"),
		factory.NamedNode("http://example.org/o"),
		factory.NamedNode("http://example.org/g"),
	)

	var buf bytes.Buffer
	w := NewNTriplesWriter(&buf)
	if err := w.Write(quad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "example.org/g") {
		t.Fatalf("graph name leaked into N-Triples output: %s", buf.String())
	}
}

func TestWriterRejectsIncompleteStatement(t *testing.T) {
	var buf bytes.Buffer
	w := NewNQuadsWriter(&buf)
	if err := w.Write(Quad{}); err == nil {
		t.Fatalf("expected an error for a statement with missing fields")
	}
}
