// Package rdfa extracts RDF statements from RDFa-annotated markup.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package implements the RDFa Core processing sequence as a streaming,
// push-driven state machine: the parser consumes tag-open/text/tag-close
// events and synchronously emits quads. It supports CURIE and safe-CURIE
// resolution, vocabulary terms, incomplete triples, @inlist collections,
// the rdfa:Pattern/rdfa:copy extension, and per-host-language feature
// profiles (HTML, XHTML, XML, core).
//
// Three entry points are provided:
//   - Parse: tokenize an input stream (lenient HTML or strict XML) and
//     push every extracted statement to a handler.
//   - NewDecoder: a pull-style decoder returning one quad per Next call.
//   - NewParser: the raw event-driven engine, for hosts that bring their
//     own tokenizer.
//
// Example (push mode):
//
//	err := rdfa.Parse(ctx, strings.NewReader(input), func(q rdfa.Quad) error {
//	    // process q.S, q.P, q.O, q.G
//	    return nil
//	}, rdfa.OptBaseIRI("http://example.org/"))
//
// Example (pull mode):
//
//	dec, err := rdfa.NewDecoder(strings.NewReader(input), rdfa.OptBaseIRI("http://example.org/"))
//	if err != nil {
//	    // handle error
//	}
//	defer dec.Close()
//
//	for {
//	    quad, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process quad
//	}
//
// Malformed markup below the tokenizer level aborts the stream with a
// ParseError. Resolution failures inside the extraction rules (invalid
// IRIs, unknown prefixes without a vocabulary fallback, malformed prefix
// declarations) never fail the stream; the affected statement is dropped
// and processing continues, which is the desired behavior for real-world
// documents.
package rdfa
