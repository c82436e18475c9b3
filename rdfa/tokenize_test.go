package rdfa

import (
	"context"
	"strings"
	"testing"
)

func TestStrictPrefixedNames(t *testing.T) {
	input := `<doc xmlns:ex="http://example.org/ns#" about="http://example.org/s">` +
		`<ex:label property="ex:p">Amy</ex:label></doc>`
	quads := extract(t, input, OptBaseIRI(testBase), OptStrict(), OptProfile(ProfileXML))

	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d:\n%s", len(quads), strings.Join(statements(quads), "\n"))
	}
	assertStatement(t, quads, `http://example.org/s http://example.org/ns#p "Amy"`)
}

func TestStrictMismatchedCloseTag(t *testing.T) {
	var quads []Quad
	err := Parse(context.Background(), strings.NewReader(`<a><b></a></b>`), func(q Quad) error {
		quads = append(quads, q)
		return nil
	}, OptBaseIRI(testBase), OptStrict(), OptProfile(ProfileXML))
	if err == nil {
		t.Fatalf("expected an error for mismatched close tags")
	}
	if Code(err) != ErrCodeTokenizeError {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeTokenizeError)
	}
	if !strings.Contains(err.Error(), "</a>") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStrictUnexpectedEOF(t *testing.T) {
	err := Parse(context.Background(), strings.NewReader(`<a><b>`), func(Quad) error {
		return nil
	}, OptBaseIRI(testBase), OptStrict(), OptProfile(ProfileXML))
	if err == nil {
		t.Fatalf("expected an error for input ending inside an open element")
	}
	if Code(err) != ErrCodeTokenizeError {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeTokenizeError)
	}
}

func TestLenientClosesDanglingTags(t *testing.T) {
	input := `<div about="http://example.org/s" prefix="dc: http://purl.org/dc/terms/">` +
		`<span property="dc:title">Open`
	quads := extract(t, input, OptBaseIRI(testBase))
	assertStatement(t, quads, `http://example.org/s http://purl.org/dc/terms/title "Open"`)
}

func TestLenientDropsStrayClose(t *testing.T) {
	input := `</div><p about="http://example.org/s" property="dc:title" ` +
		`prefix="dc: http://purl.org/dc/terms/" content="T"></p>`
	quads := extract(t, input, OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d:\n%s", len(quads), strings.Join(statements(quads), "\n"))
	}
}

func TestParseListenerObservesEvents(t *testing.T) {
	listener := &countingListener{}
	input := `<div><span>x</span></div>`
	_ = extract(t, input, OptBaseIRI(testBase), OptParseListener(listener))

	if listener.opens != 2 || listener.closes != 2 || listener.texts != 1 || listener.ends != 1 {
		t.Fatalf("unexpected event counts: %+v", listener)
	}
}

type countingListener struct {
	opens, closes, texts, ends int
}

func (l *countingListener) OnTagOpen(string, map[string]string) { l.opens++ }
func (l *countingListener) OnText(string)                       { l.texts++ }
func (l *countingListener) OnTagClose()                         { l.closes++ }
func (l *countingListener) OnEnd()                              { l.ends++ }
