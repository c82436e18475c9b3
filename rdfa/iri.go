package rdfa

import (
	"net/url"
	"strings"
)

// resolveIRI resolves a relative IRI against a base IRI according to RFC 3986.
func resolveIRI(baseStr, relative string) string {
	if baseStr == "" {
		return relative
	}

	// Use Go's net/url for proper RFC 3986 resolution.
	baseURL, err := url.Parse(baseStr)
	if err != nil {
		return concatIRI(baseStr, relative)
	}

	relURL, err := url.Parse(relative)
	if err != nil {
		return concatIRI(baseStr, relative)
	}

	// If relative URL has a scheme, it's absolute - return as-is.
	if relURL.Scheme != "" {
		return relative
	}

	return baseURL.ResolveReference(relURL).String()
}

// concatIRI is the fallback for bases or references net/url cannot parse.
func concatIRI(baseStr, relative string) string {
	if strings.HasSuffix(baseStr, "/") {
		return baseStr + relative
	}
	if lastSlash := strings.LastIndex(baseStr, "/"); lastSlash >= 0 {
		return baseStr[:lastSlash+1] + relative
	}
	return baseStr + "/" + relative
}

// validIRI reports whether a string is an acceptable absolute IRI:
// a scheme followed by a colon, with no whitespace, control, or
// angle-bracket characters anywhere.
func validIRI(iri string) bool {
	colon := strings.IndexByte(iri, ':')
	if colon <= 0 {
		return false
	}
	scheme := iri[:colon]
	first := scheme[0]
	if !isAlpha(first) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isAlpha(c) && !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	for _, r := range iri {
		if r <= 0x20 || r == '<' || r == '>' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// stripFragment removes a trailing fragment from a base IRI value.
func stripFragment(iri string) string {
	if hash := strings.IndexByte(iri, '#'); hash >= 0 {
		return iri[:hash]
	}
	return iri
}
