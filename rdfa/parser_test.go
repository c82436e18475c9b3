package rdfa

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const testBase = "http://example.org/doc"

func extract(t *testing.T, input string, opts ...Option) []Quad {
	t.Helper()
	var quads []Quad
	err := Parse(context.Background(), strings.NewReader(input), func(q Quad) error {
		quads = append(quads, q)
		return nil
	}, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return quads
}

func statements(quads []Quad) []string {
	out := make([]string, 0, len(quads))
	for _, q := range quads {
		out = append(out, q.S.String()+" "+q.P.Value+" "+q.O.String())
	}
	return out
}

func assertStatement(t *testing.T, quads []Quad, want string) {
	t.Helper()
	for _, s := range statements(quads) {
		if s == want {
			return
		}
	}
	t.Fatalf("statement %q not found in:\n%s", want, strings.Join(statements(quads), "\n"))
}

func quadWithPredicate(t *testing.T, quads []Quad, predicate string) Quad {
	t.Helper()
	for _, q := range quads {
		if q.P.Value == predicate {
			return q
		}
	}
	t.Fatalf("no statement with predicate %s in:\n%s", predicate, strings.Join(statements(quads), "\n"))
	return Quad{}
}

func TestContentAttribute(t *testing.T) {
	quads := extract(t, `<img src="img.jpg" property="dc:title" content="Portrait"/>`,
		OptBaseIRI("http://example.org/"))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d:\n%s", len(quads), strings.Join(statements(quads), "\n"))
	}
	assertStatement(t, quads, `http://example.org/img.jpg http://purl.org/dc/terms/title "Portrait"`)
}

func TestTextContentWithLanguage(t *testing.T) {
	quads := extract(t, `<div about="#x" property="dc:title" lang="en">Hello</div>`,
		OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	assertStatement(t, quads, testBase+`#x http://purl.org/dc/terms/title "Hello"@en`)
}

func TestTypeofCreatesBlankNode(t *testing.T) {
	quads := extract(t, `<html><body><div typeof="schema:Person" property="schema:name">Alice</div></body></html>`,
		OptBaseIRI(testBase))
	if len(quads) != 2 {
		t.Fatalf("expected 2 statements, got %d:\n%s", len(quads), strings.Join(statements(quads), "\n"))
	}
	assertStatement(t, quads, `_:b1 http://www.w3.org/1999/02/22-rdf-syntax-ns#type http://schema.org/Person`)
	assertStatement(t, quads, testBase+` http://schema.org/name _:b1`)
}

func TestVocabAttribute(t *testing.T) {
	quads := extract(t, `<div vocab="http://example.org/vocab#" property="name" content="n"></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, testBase+` http://www.w3.org/ns/rdfa#usesVocabulary http://example.org/vocab#`)
	assertStatement(t, quads, testBase+` http://example.org/vocab#name "n"`)
}

func TestEmptyVocabResetsToInitial(t *testing.T) {
	quads := extract(t, `<div vocab="http://example.org/v1#"><span vocab=""><b property="name" content="x"></b></span></div>`,
		OptBaseIRI(testBase), OptVocab("http://example.org/v0#"))
	assertStatement(t, quads, testBase+` http://example.org/v0#name "x"`)
}

func TestIncompleteTripleCompletion(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/a" rel="dc:creator"><span about="http://example.org/b">x</span></div>`,
		OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d:\n%s", len(quads), strings.Join(statements(quads), "\n"))
	}
	assertStatement(t, quads, `http://example.org/a http://purl.org/dc/terms/creator http://example.org/b`)
}

func TestRevAttribute(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/a" rev="dc:creator" resource="http://example.org/b"></div>`,
		OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	assertStatement(t, quads, `http://example.org/b http://purl.org/dc/terms/creator http://example.org/a`)
}

func TestRelTermExpansion(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/a" rel="LICENSE" href="http://example.org/l"></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `http://example.org/a http://www.w3.org/1999/xhtml/vocab#license http://example.org/l`)
}

func TestSafeCURIE(t *testing.T) {
	quads := extract(t, `<div about="[dc:x]" property="dc:title" content="t"></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `http://purl.org/dc/terms/x http://purl.org/dc/terms/title "t"`)
}

func TestEmptyBlankNodeLabel(t *testing.T) {
	quads := extract(t, `<div about="_:" property="dc:title" content="x"></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `_:b_identity http://purl.org/dc/terms/title "x"`)
}

func TestPrefixShadowing(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/s" prefix="dc: http://example.org/custom#"><span property="dc:t" content="1"></span></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `http://example.org/s http://example.org/custom#t "1"`)

	quads = extract(t, `<div about="http://example.org/s"><span property="dc:t" content="1"></span></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `http://example.org/s http://purl.org/dc/terms/t "1"`)
}

func TestBaseTagMovesDocumentBase(t *testing.T) {
	input := `<html><head><base href="http://other.org/doc"/></head><body><div property="dc:title" content="t"></div></body></html>`
	quads := extract(t, input, OptBaseIRI(testBase))
	assertStatement(t, quads, `http://other.org/doc http://purl.org/dc/terms/title "t"`)
}

func TestRoleAttribute(t *testing.T) {
	quads := extract(t, `<div role="button" id="x"></div>`, OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	assertStatement(t, quads, testBase+`#x http://www.w3.org/1999/xhtml/vocab#role http://www.w3.org/1999/xhtml/vocab#button`)
}

func TestXMLLiteral(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/a" property="dc:title" datatype="rdf:XMLLiteral">Hello <b>World</b>!</div>`,
		OptBaseIRI(testBase))
	q := quadWithPredicate(t, quads, "http://purl.org/dc/terms/title")
	lit, ok := q.O.(Literal)
	if !ok {
		t.Fatalf("expected literal object, got %T", q.O)
	}
	if lit.Lexical != "Hello <b>World</b>!" {
		t.Fatalf("unexpected lexical form %q", lit.Lexical)
	}
	if lit.Datatype.Value != "http://www.w3.org/1999/02/22-rdf-syntax-ns#XMLLiteral" {
		t.Fatalf("unexpected datatype %q", lit.Datatype.Value)
	}
}

func TestPropertyResourceObject(t *testing.T) {
	quads := extract(t, `<div about="http://example.org/a" property="dc:source" resource="http://example.org/src"></div>`,
		OptBaseIRI(testBase))
	assertStatement(t, quads, `http://example.org/a http://purl.org/dc/terms/source http://example.org/src`)
}

func TestRelSuppressedByProperty(t *testing.T) {
	// With property present, a bare rel term is dropped entirely.
	quads := extract(t, `<div about="http://example.org/a" rel="license" property="dc:title" href="http://example.org/l" content="t"></div>`,
		OptBaseIRI(testBase))
	for _, s := range statements(quads) {
		if strings.Contains(s, "license") {
			t.Fatalf("bare rel term should be ignored, got %s", s)
		}
	}
	assertStatement(t, quads, `http://example.org/a http://purl.org/dc/terms/title "t"`)
}

func TestPrefixListener(t *testing.T) {
	declared := map[string]string{}
	quads := extract(t, `<div prefix="ex: http://example.org/ns#" about="http://example.org/s" property="ex:p" content="1"></div>`,
		OptBaseIRI(testBase),
		OptPrefixListener(func(prefix, iri string) { declared[prefix] = iri }))
	if declared["ex"] != "http://example.org/ns#" {
		t.Fatalf("prefix listener missed declaration: %v", declared)
	}
	assertStatement(t, quads, `http://example.org/s http://example.org/ns#p "1"`)
}

func TestHandlerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	err := Parse(context.Background(), strings.NewReader(`<div about="#x" property="dc:title" content="a"></div>`),
		func(Quad) error { return boom }, OptBaseIRI(testBase))
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if Code(err) != ErrCodeHandlerError {
		t.Fatalf("unexpected error code %s", Code(err))
	}
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Parse(ctx, strings.NewReader(`<div></div>`), func(Quad) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if Code(err) != ErrCodeContextCanceled {
		t.Fatalf("unexpected error code %s", Code(err))
	}
}

func TestUnknownProfile(t *testing.T) {
	_, err := NewParser(func(Quad) error { return nil }, OptProfile(Profile("bogus")))
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
	if Code(err) != ErrCodeUnknownProfile {
		t.Fatalf("unexpected error code %s", Code(err))
	}
}

func TestDefaultGraphOption(t *testing.T) {
	graph := IRI{Value: "http://example.org/graph"}
	quads := extract(t, `<div about="#x" property="dc:title" content="t"></div>`,
		OptBaseIRI(testBase), OptDefaultGraph(graph))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	if quads[0].G == nil || quads[0].G.String() != graph.Value {
		t.Fatalf("expected graph %s, got %v", graph.Value, quads[0].G)
	}
	if quads[0].InDefaultGraph() {
		t.Fatalf("statement with a named graph reported as default-graph")
	}
}

func TestQuadPredicates(t *testing.T) {
	var zero Quad
	if !zero.IsZero() || !zero.InDefaultGraph() {
		t.Fatalf("unexpected zero-quad predicates: %+v", zero)
	}

	quads := extract(t, `<div about="#x" property="dc:title" content="t"></div>`, OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	if quads[0].IsZero() {
		t.Fatalf("extracted statement reported as zero: %+v", quads[0])
	}
	if !quads[0].InDefaultGraph() {
		t.Fatalf("statement without a graph name reported as named-graph")
	}
}
