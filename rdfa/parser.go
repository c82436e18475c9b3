package rdfa

import "strings"

// Handler processes statements in push mode. Returning a non-nil error
// aborts extraction.
type Handler func(Quad) error

// Parser runs the extraction rules over a stream of tag events. It is
// normally fed by Parse or a Decoder, but can also be driven directly
// through OnTagOpen, OnText, OnTagClose and OnEnd when the host brings
// its own tokenizer.
type Parser struct {
	features Features
	factory  TermFactory
	handler  Handler

	stack tagStack

	// baseIRI is the document base, mutable mid-stream via <base>.
	baseIRI      string
	defaultGraph Term
	initialVocab string

	patterns      map[string]*rdfaPattern
	patternOrder  []string
	pendingCopies []pendingCopy
	replayStack   []string

	// blankNodeOverride replaces fresh blank node allocation during
	// pattern replay so copies of one pattern share nodes.
	blankNodeOverride func() Term

	onPrefix func(prefix, iri string)

	err error
}

// NewParser creates a parser that pushes extracted statements to handler.
func NewParser(handler Handler, options ...Option) (*Parser, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	return newParser(handler, opts)
}

func newParser(handler Handler, opts Options) (*Parser, error) {
	features, err := opts.featureSet()
	if err != nil {
		return nil, err
	}
	factory := opts.Factory
	if factory == nil {
		factory = NewTermFactory()
	}

	p := &Parser{
		features:     features,
		factory:      factory,
		handler:      handler,
		baseIRI:      stripFragment(opts.BaseIRI),
		defaultGraph: opts.DefaultGraph,
		initialVocab: opts.Vocab,
		patterns:     map[string]*rdfaPattern{},
		onPrefix:     opts.PrefixListener,
	}

	rootPrefixes := initialContext
	if features.XHTMLInitialContext {
		merged := make(map[string]string, len(initialContext)+len(xhtmlInitialContext))
		for prefix, iri := range initialContext {
			merged[prefix] = iri
		}
		for term, iri := range xhtmlInitialContext {
			merged[term] = iri
		}
		rootPrefixes = merged
	}

	// Sentinel frame holding the document-level evaluation context.
	p.stack.push(&activeTag{
		prefixesAll:    rootPrefixes,
		prefixesCustom: map[string]string{},
		subject:        resourceRef{useBase: true},
		vocab:          opts.Vocab,
		language:       opts.Language,
		lists:          newListMapping(),
		ownsList:       true,
	})
	return p, nil
}

// Err returns the first error encountered, if any.
func (p *Parser) Err() error { return p.err }

func (p *Parser) baseIRIFor(tag *activeTag) string {
	if tag.localBaseIRI != "" {
		return tag.localBaseIRI
	}
	return p.baseIRI
}

// termOrBase resolves a resource reference against the base in effect.
func (p *Parser) termOrBase(ref resourceRef, tag *activeTag) Term {
	if ref.useBase {
		return p.factory.NamedNode(p.baseIRIFor(tag))
	}
	return ref.term
}

func (p *Parser) createBlankNode() Term {
	if p.blankNodeOverride != nil {
		return p.blankNodeOverride()
	}
	return p.factory.BlankNode("")
}

// emit pushes one statement to the handler. Statements with a missing
// subject, predicate or object are dropped silently.
func (p *Parser) emit(s Term, predicate IRI, o Term) {
	if p.err != nil || s == nil || o == nil || predicate.Value == "" {
		return
	}
	if err := p.handler(p.factory.Quad(s, predicate, o, p.defaultGraph)); err != nil {
		p.err = err
	}
}

// OnTagOpen processes a tag-open event.
func (p *Parser) OnTagOpen(name string, attributes map[string]string) error {
	if p.err != nil {
		return p.err
	}
	parentTag := p.stack.top()

	tag := &activeTag{
		name:             name,
		collectChildTags: parentTag.collectChildTags,
		vocab:            parentTag.vocab,
		language:         parentTag.language,
		localBaseIRI:     parentTag.localBaseIRI,
		lists:            parentTag.lists,
	}
	if hasAttr(attributes, "inlist") {
		tag.inlist = true
	}
	p.stack.push(tag)

	attrs := attributes

	allowRelTerms := true
	allowRevTerms := true
	if p.features.OnlyAllowURIRelRevIfProperty {
		if hasAttr(attrs, "property") && hasAttr(attrs, "rel") {
			allowRelTerms = false
			if !strings.Contains(attrs["rel"], ":") {
				attrs = withoutAttr(attrs, "rel")
			}
		}
		if hasAttr(attrs, "property") && hasAttr(attrs, "rev") {
			allowRevTerms = false
			if !strings.Contains(attrs["rev"], ":") {
				attrs = withoutAttr(attrs, "rev")
			}
		}
	}

	// Scoped declarations: prefixes, language, vocabulary, base.
	var declared []prefixBinding
	tag.prefixesAll, declared = parsePrefixes(attrs, parentTag.prefixesAll, p.features.XMLNSPrefixMappings)
	if len(declared) == 0 {
		tag.prefixesCustom = parentTag.prefixesCustom
	} else {
		merged := make(map[string]string, len(parentTag.prefixesCustom)+len(declared))
		for prefix, iri := range parentTag.prefixesCustom {
			merged[prefix] = iri
		}
		for _, binding := range declared {
			merged[binding.prefix] = binding.iri
		}
		tag.prefixesCustom = merged
	}

	if p.features.LangAttribute {
		xmlLang, hasXMLLang := attrs["xml:lang"]
		lang, hasLang := attrs["lang"]
		if hasXMLLang || hasLang {
			if xmlLang != "" {
				tag.language = xmlLang
			} else {
				tag.language = lang
			}
		}
	}

	emitVocab := false
	if vocab, ok := attrs["vocab"]; ok {
		if vocab != "" {
			tag.vocab = vocab
			emitVocab = true
		} else {
			// An empty vocab resets to the initial vocabulary.
			tag.vocab = p.initialVocab
		}
	}

	if p.features.BaseTag && name == "base" {
		if href, ok := attrs["href"]; ok {
			p.baseIRI = resolveIRI(p.baseIRI, stripFragment(href))
		}
	}
	if p.features.XMLBase {
		if value, ok := attrs["xml:base"]; ok {
			tag.localBaseIRI = resolveIRI(p.baseIRIFor(tag), stripFragment(value))
		}
	}
	if p.features.TimeTag && name == "time" && !hasAttr(attrs, "datatype") {
		tag.interpretObjectAsTime = true
	}

	// Pattern subtrees are collected instead of evaluated; copies are
	// queued for resolution at stream end.
	if p.features.CopyRDFaPatterns {
		if parentTag.collectedPattern != nil {
			child := &rdfaPattern{name: name, attributes: attrs}
			parentTag.collectedPattern.children = append(parentTag.collectedPattern.children, child)
			tag.collectedPattern = child
			return nil
		}
		if attrs["typeof"] == "rdfa:Pattern" {
			tag.collectedPattern = &rdfaPattern{
				rootPattern: true,
				name:        name,
				attributes:  attrs,
				parentFrame: parentTag,
			}
			tag.patternID = p.patternKey(attrs, tag)
			return nil
		}
		if attrs["property"] == "rdfa:copy" {
			if target := p.copyTargetKey(attrs, tag); target != "" {
				origin := append([]string(nil), p.replayStack...)
				p.pendingCopies = append(p.pendingCopies, pendingCopy{target: target, frame: parentTag, origin: origin})
			}
			return nil
		}
	}

	if parentTag.collectChildTags {
		tag.textWithTags = append(tag.textWithTags, p.serializeOpenTag(name, attrs, tag, parentTag))
		if p.features.SkipXMLLiteralChildren {
			return nil
		}
	}

	if emitVocab {
		p.emit(p.factory.NamedNode(p.baseIRIFor(tag)), p.factory.NamedNode(rdfaNS+"usesVocabulary"), p.factory.NamedNode(tag.vocab))
	}
	if p.onPrefix != nil {
		for _, binding := range declared {
			p.onPrefix(binding.prefix, binding.iri)
		}
	}

	if p.features.RoleAttribute {
		if role, ok := attrs["role"]; ok && role != "" {
			var roleSubject Term
			if id := attrs["id"]; id != "" {
				roleSubject = p.createIri("#"+id, tag, false, false, false)
			} else {
				roleSubject = p.createBlankNode()
			}
			if roleSubject != nil {
				// Role values resolve in the XHTML vocabulary.
				savedVocab := tag.vocab
				tag.vocab = xhtmlVocab
				for _, roleTerm := range p.createVocabIris(role, tag, true, false) {
					p.emit(roleSubject, p.factory.NamedNode(xhtmlVocab+"role"), roleTerm)
				}
				tag.vocab = savedVocab
			}
		}
	}

	isRoot := p.stack.depth() == 2
	hasRel := hasAttr(attrs, "rel")
	hasRev := hasAttr(attrs, "rev")
	hasProperty := hasAttr(attrs, "property")
	hasContent := hasAttr(attrs, "content")
	hasDatatype := hasAttr(attrs, "datatype")
	hasTypeof := hasAttr(attrs, "typeof")
	hasAbout := hasAttr(attrs, "about")
	headBody := p.features.InheritSubjectInHeadBody && (name == "head" || name == "body")

	var newSubject, currentObjectResource, typedResource resourceRef

	if !hasRel && !hasRev {
		if hasProperty && !hasContent && !hasDatatype {
			// Subject for a property whose object comes from the tag.
			if hasAbout {
				if t := p.createIri(attrs["about"], tag, false, true, true); t != nil {
					newSubject = resourceRef{term: t}
				}
			} else if isRoot {
				newSubject = resourceRef{useBase: true}
			} else if parentTag.object.valid() {
				newSubject = parentTag.object
			}

			if hasTypeof {
				if hasAbout {
					if t := p.createIri(attrs["about"], tag, false, true, true); t != nil {
						typedResource = resourceRef{term: t}
					}
				}
				if !typedResource.valid() && isRoot {
					typedResource = resourceRef{useBase: true}
				}
				if !typedResource.valid() && hasAttr(attrs, "resource") {
					if t := p.createIri(attrs["resource"], tag, false, true, true); t != nil {
						typedResource = resourceRef{term: t}
					}
				}
				if !typedResource.valid() {
					if value, ok := firstPresent(attrs, "href", "src"); ok {
						if t := p.createIri(value, tag, false, false, true); t != nil {
							typedResource = resourceRef{term: t}
						}
					}
				}
				if !typedResource.valid() {
					if headBody {
						typedResource = newSubject
					} else {
						typedResource = resourceRef{term: p.createBlankNode()}
					}
				}
				currentObjectResource = typedResource
			}
		} else {
			if hasAbout || hasAttr(attrs, "resource") {
				value := attrs["about"]
				if value == "" {
					value = attrs["resource"]
				}
				if t := p.createIri(value, tag, false, true, true); t != nil {
					newSubject = resourceRef{term: t}
				}
			}
			if !newSubject.valid() {
				if value, ok := firstPresent(attrs, "href", "src"); ok {
					if t := p.createIri(value, tag, false, false, true); t != nil {
						newSubject = resourceRef{term: t}
					}
				}
			}
			if !newSubject.valid() {
				if isRoot {
					newSubject = resourceRef{useBase: true}
				} else if headBody && parentTag.object.valid() {
					newSubject = parentTag.object
				} else if hasTypeof {
					newSubject = resourceRef{term: p.createBlankNode()}
				} else if parentTag.object.valid() {
					newSubject = parentTag.object
					if !hasProperty {
						tag.skipElement = true
					}
				}
			}
			if hasTypeof {
				typedResource = newSubject
			}
		}
	} else {
		if hasAbout {
			if t := p.createIri(attrs["about"], tag, false, true, true); t != nil {
				newSubject = resourceRef{term: t}
			}
			if hasTypeof {
				typedResource = newSubject
			}
		} else if isRoot {
			newSubject = resourceRef{useBase: true}
		} else if parentTag.object.valid() {
			newSubject = parentTag.object
		}

		if hasAttr(attrs, "resource") {
			if t := p.createIri(attrs["resource"], tag, false, true, true); t != nil {
				currentObjectResource = resourceRef{term: t}
			}
		}
		if !currentObjectResource.valid() {
			if value, ok := firstPresent(attrs, "href", "src"); ok {
				if t := p.createIri(value, tag, false, false, true); t != nil {
					currentObjectResource = resourceRef{term: t}
				}
			} else if hasTypeof && !hasAbout && !headBody {
				currentObjectResource = resourceRef{term: p.createBlankNode()}
			}
		}
		if hasTypeof && !hasAbout {
			if headBody {
				typedResource = newSubject
			} else {
				typedResource = currentObjectResource
			}
		}
	}

	if typedResource.valid() {
		typeSubject := p.termOrBase(typedResource, tag)
		for _, typeTerm := range p.createVocabIris(attrs["typeof"], tag, true, true) {
			p.emit(typeSubject, p.factory.NamedNode(rdfNS+"type"), typeTerm)
		}
	}

	// A subject of its own opens a fresh list scope; otherwise the tag
	// shares the mapping of the scope it contributes to.
	if newSubject.valid() && !newSubject.equal(parentTag.object) {
		tag.lists = newListMapping()
		tag.ownsList = true
	}

	if newSubject.valid() {
		tag.subject = newSubject
	} else {
		tag.subject = parentTag.subject
	}

	if hasRel || hasRev {
		relPredicates := p.createPredicates(attrs["rel"], tag, allowRelTerms)
		revPredicates := p.createPredicates(attrs["rev"], tag, allowRevTerms)

		if currentObjectResource.valid() {
			subject := p.termOrBase(tag.subject, tag)
			object := p.termOrBase(currentObjectResource, tag)
			if hasRel && tag.inlist {
				for _, predicate := range relPredicates {
					tag.lists.add(predicate.Value, object)
				}
			} else {
				for _, predicate := range relPredicates {
					p.emit(subject, predicate, object)
				}
			}
			for _, predicate := range revPredicates {
				p.emit(object, predicate, subject)
			}
		} else {
			for _, predicate := range relPredicates {
				tag.incompleteTriples = append(tag.incompleteTriples, incompleteTriple{predicate: predicate, list: tag.inlist})
			}
			for _, predicate := range revPredicates {
				tag.incompleteTriples = append(tag.incompleteTriples, incompleteTriple{predicate: predicate, reverse: true})
			}
			if len(tag.incompleteTriples) > 0 {
				currentObjectResource = resourceRef{term: p.createBlankNode()}
			}
			if hasRel && tag.inlist {
				// Register the predicates so an empty scope still yields rdf:nil.
				for _, predicate := range relPredicates {
					tag.lists.ensure(predicate.Value)
				}
			}
		}
	}

	if hasProperty {
		tag.predicates = p.createPredicates(attrs["property"], tag, true)

		var objectResource resourceRef
		if hasDatatype {
			if t := p.createIri(attrs["datatype"], tag, true, true, false); t != nil {
				if iri, ok := t.(IRI); ok {
					tag.datatype = iri
				}
			}
			if p.isMarkupDatatype(tag.datatype) {
				tag.collectChildTags = true
			}
		} else {
			if !hasRel && !hasRev && !hasContent {
				if hasAttr(attrs, "resource") {
					if t := p.createIri(attrs["resource"], tag, false, true, true); t != nil {
						objectResource = resourceRef{term: t}
					}
				}
				if !objectResource.valid() {
					if value, ok := firstPresent(attrs, "href", "src"); ok {
						if t := p.createIri(value, tag, false, false, true); t != nil {
							objectResource = resourceRef{term: t}
						}
					}
				}
			}
			if hasTypeof && !hasAbout {
				objectResource = typedResource
			}
		}

		subject := p.termOrBase(tag.subject, tag)
		switch {
		case hasContent:
			p.emitPropertyObject(tag, subject, p.createLiteral(attrs["content"], tag))
			tag.predicates = nil
		case p.features.DatetimeAttribute && hasAttr(attrs, "datetime"):
			tag.interpretObjectAsTime = true
			p.emitPropertyObject(tag, subject, p.createLiteral(attrs["datetime"], tag))
			tag.predicates = nil
		case objectResource.valid():
			p.emitPropertyObject(tag, subject, p.termOrBase(objectResource, tag))
			tag.predicates = nil
		}
	}

	// Complete triples a parent left hanging for the first child with a
	// subject of its own.
	if !tag.skipElement && newSubject.valid() && len(parentTag.incompleteTriples) > 0 {
		object := p.termOrBase(newSubject, tag)
		parentSubject := p.termOrBase(parentTag.subject, tag)
		for _, it := range parentTag.incompleteTriples {
			switch {
			case it.list:
				parentTag.lists.add(it.predicate.Value, object)
			case it.reverse:
				p.emit(object, it.predicate, parentSubject)
			default:
				p.emit(parentSubject, it.predicate, object)
			}
		}
	}
	if tag.skipElement {
		tag.incompleteTriples = parentTag.incompleteTriples
	}

	if currentObjectResource.valid() {
		tag.object = currentObjectResource
	} else if newSubject.valid() {
		tag.object = newSubject
	} else {
		tag.object = parentTag.object
	}

	return p.err
}

// OnText processes a character-data event.
func (p *Parser) OnText(data string) error {
	if p.err != nil {
		return p.err
	}
	tag := p.stack.top()
	if tag.collectedPattern != nil {
		tag.collectedPattern.text = append(tag.collectedPattern.text, data)
		return nil
	}
	tag.text = append(tag.text, data)
	tag.textWithTags = append(tag.textWithTags, data)
	return nil
}

// OnTagClose processes a tag-close event.
func (p *Parser) OnTagClose() error {
	if p.err != nil {
		return p.err
	}
	if p.stack.depth() < 2 {
		p.err = &ParseError{Format: "rdfa", Err: ErrUnbalancedClose}
		return p.err
	}
	parentTag := p.stack.parent()
	tag := p.stack.pop()

	if tag.collectedPattern != nil {
		if tag.collectedPattern.rootPattern {
			if _, ok := p.patterns[tag.patternID]; !ok {
				p.patternOrder = append(p.patternOrder, tag.patternID)
			}
			p.patterns[tag.patternID] = tag.collectedPattern
		}
		return nil
	}

	if len(tag.predicates) > 0 {
		value := strings.Join(tag.text, "")
		if p.isMarkupDatatype(tag.datatype) {
			value = strings.Join(tag.textWithTags, "")
		}
		p.emitPropertyObject(tag, p.termOrBase(tag.subject, tag), p.createLiteral(value, tag))
	}

	if tag.ownsList && !tag.lists.empty() {
		p.materializeLists(tag)
	}

	if parentTag.collectChildTags {
		tag.textWithTags = append(tag.textWithTags, "</"+tag.name+">")
	}
	if len(tag.text) > 0 {
		parentTag.text = append(parentTag.text, tag.text...)
	}
	if len(tag.textWithTags) > 0 {
		parentTag.textWithTags = append(parentTag.textWithTags, tag.textWithTags...)
	}
	return p.err
}

// OnEnd processes the end of the event stream.
func (p *Parser) OnEnd() error {
	if p.err != nil {
		return p.err
	}
	if p.features.CopyRDFaPatterns {
		p.resolvePatternCopies()
	}
	root := p.stack.frames[0]
	if root.ownsList && !root.lists.empty() {
		p.materializeLists(root)
	}
	return p.err
}

func (p *Parser) emitPropertyObject(tag *activeTag, subject Term, object Term) {
	if object == nil {
		return
	}
	if tag.inlist {
		for _, predicate := range tag.predicates {
			tag.lists.add(predicate.Value, object)
		}
		return
	}
	for _, predicate := range tag.predicates {
		p.emit(subject, predicate, object)
	}
}

func (p *Parser) isMarkupDatatype(datatype IRI) bool {
	return datatype.Value == rdfNS+"XMLLiteral" ||
		(p.features.HTMLDatatype && datatype.Value == rdfNS+"HTML")
}

// materializeLists emits the rdf:first/rdf:rest chains accumulated in a
// tag's list mapping, attached to the tag's subject.
func (p *Parser) materializeLists(tag *activeTag) {
	subject := p.termOrBase(tag.subject, tag)
	nilTerm := p.factory.NamedNode(rdfNS + "nil")
	first := p.factory.NamedNode(rdfNS + "first")
	rest := p.factory.NamedNode(rdfNS + "rest")

	for _, key := range tag.lists.order {
		predicate := p.factory.NamedNode(key)
		items := tag.lists.entries[key]
		if len(items) == 0 {
			p.emit(subject, predicate, nilTerm)
			continue
		}
		nodes := make([]Term, len(items))
		for i := range items {
			nodes[i] = p.createBlankNode()
		}
		p.emit(subject, predicate, nodes[0])
		for i, item := range items {
			p.emit(nodes[i], first, item)
			var tail Term = nilTerm
			if i+1 < len(nodes) {
				tail = nodes[i+1]
			}
			p.emit(nodes[i], rest, tail)
		}
	}
}

func hasAttr(attrs map[string]string, name string) bool {
	_, ok := attrs[name]
	return ok
}

// firstPresent returns the first non-empty value among the named
// attributes; ok reports whether any was present at all.
func firstPresent(attrs map[string]string, names ...string) (string, bool) {
	found := false
	for _, name := range names {
		if value, ok := attrs[name]; ok {
			found = true
			if value != "" {
				return value, true
			}
		}
	}
	return "", found
}

func withoutAttr(attrs map[string]string, name string) map[string]string {
	clone := make(map[string]string, len(attrs))
	for key, value := range attrs {
		if key != name {
			clone[key] = value
		}
	}
	return clone
}
