package rdfa

import "fmt"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Quad is an extracted RDF statement (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P.Value == "" && q.O == nil && q.G == nil
}

// InDefaultGraph reports whether the quad is in the default graph (no named graph).
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// TermFactory constructs the terms and statements emitted by the parser.
// Hosts may substitute their own factory to intern terms, relabel blank
// nodes, or count allocations. A factory instance is owned by exactly one
// parser per document; blank node labels must be stable within a document.
type TermFactory interface {
	// NamedNode constructs an IRI term.
	NamedNode(value string) IRI
	// BlankNode constructs a blank node. An empty label requests a fresh,
	// document-unique node.
	BlankNode(label string) BlankNode
	// Literal constructs a literal. A non-empty datatype takes precedence
	// over the language tag.
	Literal(lexical, language string, datatype IRI) Literal
	// Quad assembles a statement.
	Quad(s Term, p IRI, o Term, g Term) Quad
}

// defaultTermFactory builds plain model terms with a per-document blank
// node counter.
type defaultTermFactory struct {
	counter int
}

// NewTermFactory returns the default term factory.
func NewTermFactory() TermFactory {
	return &defaultTermFactory{}
}

func (f *defaultTermFactory) NamedNode(value string) IRI { return IRI{Value: value} }

func (f *defaultTermFactory) BlankNode(label string) BlankNode {
	if label == "" {
		f.counter++
		label = fmt.Sprintf("b%d", f.counter)
	}
	return BlankNode{ID: label}
}

func (f *defaultTermFactory) Literal(lexical, language string, datatype IRI) Literal {
	if datatype.Value != "" {
		return Literal{Lexical: lexical, Datatype: datatype}
	}
	return Literal{Lexical: lexical, Lang: language}
}

func (f *defaultTermFactory) Quad(s Term, p IRI, o Term, g Term) Quad {
	return Quad{S: s, P: p, O: o, G: g}
}
