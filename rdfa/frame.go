package rdfa

// resourceRef names an RDF resource, or defers to the base IRI in effect
// at emission time. The deferred form exists because <base> may move the
// document base mid-stream.
type resourceRef struct {
	term    Term
	useBase bool
}

func (r resourceRef) valid() bool {
	return r.useBase || r.term != nil
}

func (r resourceRef) equal(o resourceRef) bool {
	if r.useBase || o.useBase {
		return r.useBase && o.useBase
	}
	if r.term == nil || o.term == nil {
		return r.term == nil && o.term == nil
	}
	return r.term.Kind() == o.term.Kind() && r.term.String() == o.term.String()
}

// incompleteTriple is a predicate whose object becomes known only once a
// descendant establishes a subject.
type incompleteTriple struct {
	predicate IRI
	reverse   bool
	list      bool
}

// listMapping accumulates @inlist items per predicate, in document order.
// A mapping is owned by the frame that established its subject scope and
// shared by reference with descendant frames.
type listMapping struct {
	entries map[string][]Term
	order   []string
}

func newListMapping() *listMapping {
	return &listMapping{entries: map[string][]Term{}}
}

// ensure registers a predicate so an empty scope still materializes rdf:nil.
func (m *listMapping) ensure(predicate string) {
	if _, ok := m.entries[predicate]; !ok {
		m.entries[predicate] = nil
		m.order = append(m.order, predicate)
	}
}

func (m *listMapping) add(predicate string, item Term) {
	m.ensure(predicate)
	m.entries[predicate] = append(m.entries[predicate], item)
}

func (m *listMapping) empty() bool {
	return len(m.order) == 0
}

// activeTag is the evaluation frame for one open tag. Scoped values
// (prefixes, vocab, language, datatype, local base) are copied on write:
// a frame shares its parent's data until the tag declares its own, so
// mutation never leaks into the parent or siblings.
type activeTag struct {
	name string

	// prefixesAll is the effective prefix table; prefixesCustom holds only
	// bindings declared in the document, used when serializing namespace
	// declarations into captured markup.
	prefixesAll    map[string]string
	prefixesCustom map[string]string

	subject resourceRef
	object  resourceRef

	// predicates are pending property IRIs whose literal value is the
	// tag's text content, resolved at tag close.
	predicates []IRI

	vocab    string
	language string
	datatype IRI

	incompleteTriples []incompleteTriple

	inlist   bool
	lists    *listMapping
	ownsList bool

	skipElement bool

	// collectChildTags switches the subtree into markup-capture mode for
	// XML/HTML literals. collectedPattern records the subtree of an
	// rdfa:Pattern template instead of emitting it.
	collectChildTags bool
	collectedPattern *rdfaPattern
	patternID        string

	interpretObjectAsTime bool

	// text is the accumulated character data; textWithTags additionally
	// carries serialized child markup for XML/HTML literals.
	text         []string
	textWithTags []string

	localBaseIRI string
}

// tagStack is the evaluation context stack: one frame per open tag,
// LIFO-disciplined to match tag nesting.
type tagStack struct {
	frames []*activeTag
}

func (s *tagStack) top() *activeTag {
	return s.frames[len(s.frames)-1]
}

func (s *tagStack) parent() *activeTag {
	if len(s.frames) < 2 {
		return nil
	}
	return s.frames[len(s.frames)-2]
}

func (s *tagStack) push(f *activeTag) {
	s.frames = append(s.frames, f)
}

func (s *tagStack) pop() *activeTag {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

func (s *tagStack) depth() int {
	return len(s.frames)
}
