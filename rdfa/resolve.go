package rdfa

import (
	"sort"
	"strings"
)

// prefixBinding is one prefix declared locally on a tag.
type prefixBinding struct {
	prefix string
	iri    string
}

// parsePrefixes merges, in increasing precedence: parent prefixes, xmlns:*
// attributes (when enabled), and the prefix attribute parsed as
// whitespace-separated "name:" / "iri" pairs. Malformed pairs are skipped.
// When nothing is declared locally, the parent table is shared unchanged.
// The returned bindings list the local declarations in deterministic order.
func parsePrefixes(attributes map[string]string, parentPrefixes map[string]string, xmlns bool) (map[string]string, []prefixBinding) {
	var declared []prefixBinding

	if xmlns {
		var names []string
		for name := range attributes {
			if strings.HasPrefix(name, "xmlns:") && len(name) > len("xmlns:") {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			declared = append(declared, prefixBinding{prefix: name[len("xmlns:"):], iri: attributes[name]})
		}
	}

	if value, ok := attributes["prefix"]; ok {
		declared = append(declared, parsePrefixAttribute(value)...)
	}

	if len(declared) == 0 {
		return parentPrefixes, nil
	}

	merged := make(map[string]string, len(parentPrefixes)+len(declared))
	for prefix, iri := range parentPrefixes {
		merged[prefix] = iri
	}
	for _, binding := range declared {
		merged[binding.prefix] = binding.iri
	}
	return merged, declared
}

// parsePrefixAttribute parses a prefix attribute value. A pair is a token
// ending in ':' (the prefix name) followed by a token (the IRI); anything
// else is skipped without invalidating surrounding pairs.
func parsePrefixAttribute(value string) []prefixBinding {
	tokens := strings.Fields(value)
	var bindings []prefixBinding
	for i := 0; i < len(tokens); {
		name := tokens[i]
		if !strings.HasSuffix(name, ":") || len(name) == 1 {
			i++
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		bindings = append(bindings, prefixBinding{prefix: name[:len(name)-1], iri: tokens[i+1]})
		i += 2
	}
	return bindings
}

// expandPrefixedTerm expands a CURIE or bare term against the tag's prefix
// table. Unresolvable input is returned unchanged.
func expandPrefixedTerm(term string, tag *activeTag) string {
	colon := strings.IndexByte(term, ':')
	if colon >= 0 {
		prefix := term[:colon]
		local := term[colon+1:]
		if prefix == "" {
			// Bare ':suffix' resolves in the XHTML vocabulary.
			return xhtmlVocab + local
		}
		if prefix == "_" {
			return term
		}
		if strings.HasPrefix(local, "//") {
			// Looks like an absolute IRI whose scheme shadows a prefix.
			return term
		}
		if iri, ok := tag.prefixesAll[prefix]; ok {
			return iri + local
		}
		return term
	}

	// Term expansion: exact match first, then case-insensitive.
	if iri, ok := tag.prefixesAll[term]; ok {
		return iri
	}
	lower := strings.ToLower(term)
	var keys []string
	for prefix := range tag.prefixesAll {
		if strings.ToLower(prefix) == lower {
			keys = append(keys, prefix)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		return tag.prefixesAll[keys[0]]
	}
	return term
}

// createIri resolves a term string (safe CURIE, CURIE, bare term, or IRI)
// to a term, or nil when resolution fails. In vocab mode bare terms expand
// against the active vocabulary; otherwise relative references resolve
// against the base IRI. When safe CURIEs are disallowed the input is
// treated as a plain IRI reference.
func (p *Parser) createIri(term string, tag *activeTag, vocab, allowSafeCurie, allowBlankNode bool) Term {
	if !allowSafeCurie {
		if !vocab {
			term = resolveIRI(p.baseIRIFor(tag), term)
		}
		if !validIRI(term) {
			return nil
		}
		return p.factory.NamedNode(term)
	}

	if len(term) > 1 && term[0] == '[' && term[len(term)-1] == ']' {
		term = term[1 : len(term)-1]
		// Safe CURIEs must carry a prefix separator.
		if !strings.Contains(term, ":") {
			return nil
		}
	}

	if strings.HasPrefix(term, "_:") {
		if !allowBlankNode {
			return nil
		}
		label := term[2:]
		if label == "" {
			label = "b_identity"
		}
		return p.factory.BlankNode(label)
	}

	if vocab && tag.vocab != "" && term != "" && !strings.Contains(term, ":") {
		return p.factory.NamedNode(tag.vocab + term)
	}

	iri := expandPrefixedTerm(term, tag)
	if !vocab {
		iri = resolveIRI(p.baseIRIFor(tag), iri)
	} else if iri != term && !validIRI(iri) {
		// The prefix itself was bound to a relative IRI.
		iri = resolveIRI(p.baseIRI, iri)
	}
	if !validIRI(iri) {
		return nil
	}
	return p.factory.NamedNode(iri)
}

// createVocabIris resolves a whitespace-separated attribute value into
// terms in vocab mode. Bare terms are skipped entirely when allowTerms is
// false; unresolvable tokens are dropped.
func (p *Parser) createVocabIris(value string, tag *activeTag, allowTerms, allowBlankNode bool) []Term {
	var terms []Term
	for _, token := range strings.Fields(value) {
		if !allowTerms && !strings.Contains(token, ":") {
			continue
		}
		if t := p.createIri(token, tag, true, true, allowBlankNode); t != nil {
			terms = append(terms, t)
		}
	}
	return terms
}

// createPredicates resolves an attribute value into predicate IRIs,
// discarding anything that is not an IRI.
func (p *Parser) createPredicates(value string, tag *activeTag, allowTerms bool) []IRI {
	var predicates []IRI
	for _, t := range p.createVocabIris(value, tag, allowTerms, false) {
		if iri, ok := t.(IRI); ok {
			predicates = append(predicates, iri)
		}
	}
	return predicates
}
