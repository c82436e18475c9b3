package rdfa

import (
	"bufio"
	"fmt"
	"io"
)

// Writer streams statements to an output.
type Writer interface {
	Write(Quad) error
	Flush() error
	Close() error
}

type nqEncoder struct {
	writer *bufio.Writer
	quads  bool
	err    error
}

// NewNQuadsWriter creates a writer emitting N-Quads.
func NewNQuadsWriter(w io.Writer) Writer {
	return &nqEncoder{writer: bufio.NewWriter(w), quads: true}
}

// NewNTriplesWriter creates a writer emitting N-Triples; graph names are
// dropped.
func NewNTriplesWriter(w io.Writer) Writer {
	return &nqEncoder{writer: bufio.NewWriter(w)}
}

func (e *nqEncoder) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return fmt.Errorf("nquads: missing statement fields")
	}
	line := renderTerm(q.S) + " " + renderIRI(q.P) + " " + renderTerm(q.O)
	if e.quads && !q.InDefaultGraph() {
		line += " " + renderTerm(q.G)
	}
	line += " .\n"
	_, err := e.writer.WriteString(line)
	if err != nil {
		e.err = err
	}
	return err
}

func (e *nqEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

func (e *nqEncoder) Close() error {
	return e.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		if value.Lang != "" {
			return fmt.Sprintf("%q@%s", value.Lexical, value.Lang)
		}
		if value.Datatype.Value != "" {
			return fmt.Sprintf("%q^^%s", value.Lexical, renderIRI(value.Datatype))
		}
		return fmt.Sprintf("%q", value.Lexical)
	default:
		return ""
	}
}
