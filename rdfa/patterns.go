package rdfa

// rdfaPattern is a collected pattern template subtree. It is instantiated
// once per copy reference; unreferenced patterns surface at stream end as
// ordinary content.
type rdfaPattern struct {
	rootPattern bool
	name        string
	attributes  map[string]string
	text        []string
	children    []*rdfaPattern

	referenced bool

	// parentFrame is the evaluation frame surrounding the declaration,
	// retained so copies resolve CURIEs in the declaration scope.
	parentFrame *activeTag

	// constructedBlankNodes records blank nodes allocated by the first
	// instantiation; later copies replay them by index so every copy of
	// one pattern shares nodes.
	constructedBlankNodes []Term
}

// pendingCopy is a copy reference waiting for its target pattern. origin
// records the chain of pattern replays that produced it, for cycle
// detection.
type pendingCopy struct {
	target string
	frame  *activeTag
	origin []string
}

// patternKey derives the identifying key of a pattern declaration.
func (p *Parser) patternKey(attrs map[string]string, tag *activeTag) string {
	value, ok := firstPresent(attrs, "about", "resource")
	if !ok {
		return p.baseIRIFor(tag)
	}
	if t := p.createIri(value, tag, false, true, true); t != nil {
		return t.String()
	}
	return value
}

// copyTargetKey derives the key of the pattern a copy reference targets.
func (p *Parser) copyTargetKey(attrs map[string]string, tag *activeTag) string {
	value, ok := firstPresent(attrs, "resource", "href", "src")
	if !ok {
		return ""
	}
	if t := p.createIri(value, tag, false, true, true); t != nil {
		return t.String()
	}
	return value
}

// resolvePatternCopies runs pending copy references to a fixed point.
// Copies whose target appears in their own replay chain are dropped, as
// are copies of patterns that were never declared. Patterns nobody
// referenced are then replayed as ordinary content.
func (p *Parser) resolvePatternCopies() {
	for len(p.pendingCopies) > 0 && p.err == nil {
		pending := p.pendingCopies
		p.pendingCopies = nil
		progress := false
		for _, pc := range pending {
			if containsString(pc.origin, pc.target) {
				progress = true
				continue
			}
			pattern, ok := p.patterns[pc.target]
			if !ok {
				p.pendingCopies = append(p.pendingCopies, pc)
				continue
			}
			p.instantiatePattern(pattern, pc)
			progress = true
		}
		if !progress {
			break
		}
	}
	p.pendingCopies = nil

	saved := p.features.CopyRDFaPatterns
	p.features.CopyRDFaPatterns = false
	for _, id := range p.patternOrder {
		if p.err != nil {
			break
		}
		if pattern := p.patterns[id]; !pattern.referenced {
			p.replayUnreferenced(pattern)
		}
	}
	p.features.CopyRDFaPatterns = saved
}

func (p *Parser) instantiatePattern(pattern *rdfaPattern, pc pendingCopy) {
	pattern.referenced = true

	frame := p.replayFrame(pattern, pc.frame)
	p.stack.push(frame)

	// Copies queued during this replay snapshot the full chain, so a
	// pattern reached transitively still sees every ancestor.
	savedStack := p.replayStack
	p.replayStack = append(append([]string(nil), pc.origin...), pc.target)

	index := 0
	savedOverride := p.blankNodeOverride
	p.blankNodeOverride = func() Term {
		if index < len(pattern.constructedBlankNodes) {
			node := pattern.constructedBlankNodes[index]
			index++
			return node
		}
		node := p.factory.BlankNode("")
		pattern.constructedBlankNodes = append(pattern.constructedBlankNodes, node)
		index++
		return node
	}

	p.replayPattern(pattern, true)

	p.blankNodeOverride = savedOverride
	p.replayStack = savedStack

	replayed := p.stack.pop()
	if replayed.ownsList && !replayed.lists.empty() {
		p.materializeLists(replayed)
	}
}

// replayFrame rebuilds an evaluation frame for a pattern replay:
// resolution scope comes from the declaration site, subject and object
// from the consuming site.
func (p *Parser) replayFrame(pattern *rdfaPattern, consumer *activeTag) *activeTag {
	declaration := pattern.parentFrame
	return &activeTag{
		name:           consumer.name,
		prefixesAll:    declaration.prefixesAll,
		prefixesCustom: declaration.prefixesCustom,
		vocab:          declaration.vocab,
		language:       declaration.language,
		localBaseIRI:   declaration.localBaseIRI,
		subject:        consumer.subject,
		object:         consumer.object,
		lists:          newListMapping(),
		ownsList:       true,
	}
}

// replayPattern drives a pattern subtree back through the tag events. On
// the root the identifying attributes are stripped so the copy attaches
// to the consuming subject instead of redeclaring the pattern.
func (p *Parser) replayPattern(pattern *rdfaPattern, root bool) {
	attrs := make(map[string]string, len(pattern.attributes))
	for key, value := range pattern.attributes {
		if root && (key == "typeof" || key == "about" || key == "resource") {
			continue
		}
		attrs[key] = value
	}

	p.OnTagOpen(pattern.name, attrs)
	for _, text := range pattern.text {
		p.OnText(text)
	}
	for _, child := range pattern.children {
		p.replayPattern(child, false)
	}
	p.OnTagClose()
}

func (p *Parser) replayUnreferenced(pattern *rdfaPattern) {
	frame := p.replayFrame(pattern, pattern.parentFrame)
	p.stack.push(frame)
	p.replayPattern(pattern, false)
	replayed := p.stack.pop()
	if replayed.ownsList && !replayed.lists.empty() {
		p.materializeLists(replayed)
	}
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
