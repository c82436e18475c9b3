package rdfa

import (
	"bytes"
	"context"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// JSONLDOptions configures the conversion of extracted statements to
// JSON-LD.
type JSONLDOptions struct {
	// BaseIRI resolves relative IRIs during conversion.
	BaseIRI string
	// ProcessingMode controls JSON-LD version semantics: "json-ld-1.0"
	// or "json-ld-1.1".
	ProcessingMode string

	// RDF conversion flags.
	UseNativeTypes bool
	UseRdfType     bool
}

// QuadsToJSONLD converts extracted statements to a JSON-LD document.
func QuadsToJSONLD(ctx context.Context, quads []Quad, opts JSONLDOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	nquads, err := quadsToNQuads(quads)
	if err != nil {
		return nil, err
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := newJSONGoldOptions(opts)
	goldOpts.Format = "application/n-quads"
	return proc.FromRDF(nquads, goldOpts)
}

// ExtractJSONLD extracts statements from r and returns them as a JSON-LD
// document.
func ExtractJSONLD(ctx context.Context, r io.Reader, jsonldOpts JSONLDOptions, opts ...Option) (interface{}, error) {
	var quads []Quad
	err := Parse(ctx, r, func(q Quad) error {
		quads = append(quads, q)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return QuadsToJSONLD(ctx, quads, jsonldOpts)
}

func newJSONGoldOptions(opts JSONLDOptions) *ld.JsonLdOptions {
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	if opts.ProcessingMode != "" {
		goldOpts.ProcessingMode = opts.ProcessingMode
	}
	if opts.UseNativeTypes {
		goldOpts.UseNativeTypes = opts.UseNativeTypes
	}
	if opts.UseRdfType {
		goldOpts.UseRdfType = opts.UseRdfType
	}
	return goldOpts
}

func quadsToNQuads(quads []Quad) (string, error) {
	var buf bytes.Buffer
	enc := NewNQuadsWriter(&buf)
	for _, q := range quads {
		if err := enc.Write(q); err != nil {
			_ = enc.Close()
			return "", err
		}
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
