package rdfa

import (
	"sort"
	"strings"
)

// serializeOpenTag renders a captured open tag for an XML or HTML
// literal. Attributes are emitted in sorted order. On the outermost
// captured tag, in-scope document-declared prefixes are added as xmlns
// declarations so the literal stays namespace well-formed.
func (p *Parser) serializeOpenTag(name string, attrs map[string]string, tag, parentTag *activeTag) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)

	names := make([]string, 0, len(attrs))
	for attr := range attrs {
		names = append(names, attr)
	}
	sort.Strings(names)
	for _, attr := range names {
		sb.WriteByte(' ')
		sb.WriteString(attr)
		sb.WriteString(`="`)
		sb.WriteString(attrs[attr])
		sb.WriteByte('"')
	}

	if p.isLiteralRootChild(parentTag) && len(tag.prefixesCustom) > 0 {
		prefixes := make([]string, 0, len(tag.prefixesCustom))
		for prefix := range tag.prefixesCustom {
			if !hasAttr(attrs, "xmlns:"+prefix) {
				prefixes = append(prefixes, prefix)
			}
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			sb.WriteString(` xmlns:`)
			sb.WriteString(prefix)
			sb.WriteString(`="`)
			sb.WriteString(tag.prefixesCustom[prefix])
			sb.WriteByte('"')
		}
	}

	sb.WriteByte('>')
	return sb.String()
}

// isLiteralRootChild reports whether parentTag is the tag carrying the
// markup-valued property, making the current tag an outermost captured
// tag.
func (p *Parser) isLiteralRootChild(parentTag *activeTag) bool {
	if !parentTag.collectChildTags {
		return false
	}
	depth := p.stack.depth()
	if depth < 3 {
		return true
	}
	return !p.stack.frames[depth-3].collectChildTags
}
