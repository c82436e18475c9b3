package rdfa

import (
	"context"
	"fmt"
)

// Option configures parser behavior.
type Option func(*Options)

// Options configures parser behavior.
type Options struct {
	// Context for cancellation and timeouts
	Context context.Context

	// BaseIRI is the initial document base for resolving relative IRIs.
	BaseIRI string
	// Vocab is the initial default vocabulary.
	Vocab string
	// Language is the initial language tag for plain literals.
	Language string
	// DefaultGraph names the graph of emitted quads; nil means the
	// default graph.
	DefaultGraph Term

	// Profile selects a named feature set. The zero value is the full
	// profile.
	Profile Profile
	// ContentType selects the profile from a media type when Profile is
	// unset.
	ContentType string
	// Features overrides the profile-derived feature set entirely.
	Features *Features

	// Strict selects the strict XML tokenizer instead of the lenient
	// HTML tokenizer.
	Strict bool

	// Factory supplies terms and statements; nil selects the built-in
	// factory.
	Factory TermFactory

	// Listener observes tokenizer events alongside extraction.
	Listener ParseListener
	// PrefixListener observes prefix declarations as they are parsed.
	PrefixListener func(prefix, iri string)
}

// Option helpers

// OptContext sets the context for cancellation and timeouts.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptBaseIRI sets the initial document base IRI.
func OptBaseIRI(baseIRI string) Option {
	return func(opts *Options) {
		opts.BaseIRI = baseIRI
	}
}

// OptVocab sets the initial default vocabulary.
func OptVocab(vocab string) Option {
	return func(opts *Options) {
		opts.Vocab = vocab
	}
}

// OptLanguage sets the initial language tag.
func OptLanguage(language string) Option {
	return func(opts *Options) {
		opts.Language = language
	}
}

// OptDefaultGraph names the graph of emitted quads.
func OptDefaultGraph(graph Term) Option {
	return func(opts *Options) {
		opts.DefaultGraph = graph
	}
}

// OptProfile selects a named feature profile.
func OptProfile(profile Profile) Option {
	return func(opts *Options) {
		opts.Profile = profile
	}
}

// OptContentType selects the feature profile from a media type.
func OptContentType(contentType string) Option {
	return func(opts *Options) {
		opts.ContentType = contentType
	}
}

// OptFeatures overrides the feature set entirely.
func OptFeatures(features Features) Option {
	return func(opts *Options) {
		opts.Features = &features
	}
}

// OptStrict selects the strict XML tokenizer.
func OptStrict() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// OptTermFactory sets the term factory.
func OptTermFactory(factory TermFactory) Option {
	return func(opts *Options) {
		opts.Factory = factory
	}
}

// OptParseListener registers a tokenizer event listener.
func OptParseListener(listener ParseListener) Option {
	return func(opts *Options) {
		opts.Listener = listener
	}
}

// OptPrefixListener registers a prefix declaration listener.
func OptPrefixListener(listener func(prefix, iri string)) Option {
	return func(opts *Options) {
		opts.PrefixListener = listener
	}
}

// Internal helpers

func defaultOptions() Options {
	return Options{
		Context: context.Background(),
	}
}

// featureSet resolves the effective features: an explicit set wins, then
// the profile, then the content type, then the full profile.
func (o Options) featureSet() (Features, error) {
	if o.Features != nil {
		return *o.Features, nil
	}
	profile := o.Profile
	if profile == ProfileFull && o.ContentType != "" {
		profile = ProfileForContentType(o.ContentType)
	}
	features, ok := FeaturesForProfile(profile)
	if !ok {
		return Features{}, fmt.Errorf("%w: %q", ErrUnknownProfile, string(profile))
	}
	return features, nil
}
