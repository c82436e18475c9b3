package rdfa

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ParseListener observes tokenizer events alongside extraction.
type ParseListener interface {
	OnTagOpen(name string, attributes map[string]string)
	OnText(data string)
	OnTagClose()
	OnEnd()
}

// voidElements never carry content in HTML; their open tag implies an
// immediate close.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

// Parse extracts statements from r and streams them to the handler.
// If ctx is nil, context.Background() is used as the default.
func Parse(ctx context.Context, r io.Reader, handler Handler, opts ...Option) error {
	options := defaultOptions()
	if ctx == nil {
		ctx = context.Background()
	}
	options.Context = ctx
	for _, opt := range opts {
		opt(&options)
	}

	parser, err := newParser(handler, options)
	if err != nil {
		return err
	}
	tok := newTokenizer(r, parser, options)

	for {
		if err := options.Context.Err(); err != nil {
			return err
		}
		done, err := tok.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// tokenizer feeds one event batch per step into the parser.
type tokenizer interface {
	step() (done bool, err error)
}

func newTokenizer(r io.Reader, parser *Parser, opts Options) tokenizer {
	if opts.Strict {
		return &strictTokenizer{dec: xml.NewDecoder(r), parser: parser, listener: opts.Listener}
	}
	return &lenientTokenizer{z: html.NewTokenizer(r), parser: parser, listener: opts.Listener}
}

// lenientTokenizer tokenizes tag soup. Stray close tags are dropped and
// open tags left dangling at EOF are closed implicitly.
type lenientTokenizer struct {
	z        *html.Tokenizer
	parser   *Parser
	listener ParseListener
	depth    int
}

func (t *lenientTokenizer) step() (bool, error) {
	switch tokenType := t.z.Next(); tokenType {
	case html.ErrorToken:
		if err := t.z.Err(); err != io.EOF {
			return false, wrapTokenizeError(0, err)
		}
		for t.depth > 0 {
			if err := t.close(); err != nil {
				return false, err
			}
		}
		if t.listener != nil {
			t.listener.OnEnd()
		}
		return true, t.parser.OnEnd()

	case html.TextToken:
		text := string(t.z.Text())
		if t.listener != nil {
			t.listener.OnText(text)
		}
		return false, t.parser.OnText(text)

	case html.StartTagToken, html.SelfClosingTagToken:
		name, attrs := t.readTag()
		if t.listener != nil {
			t.listener.OnTagOpen(name, attrs)
		}
		if err := t.parser.OnTagOpen(name, attrs); err != nil {
			return false, err
		}
		t.depth++
		if tokenType == html.SelfClosingTagToken || voidElements[name] {
			return false, t.close()
		}
		return false, nil

	case html.EndTagToken:
		if t.depth == 0 {
			return false, nil
		}
		return false, t.close()
	}
	return false, nil
}

func (t *lenientTokenizer) readTag() (string, map[string]string) {
	nameBytes, hasAttr := t.z.TagName()
	name := string(nameBytes)
	attrs := map[string]string{}
	for hasAttr {
		var key, value []byte
		key, value, hasAttr = t.z.TagAttr()
		attrs[string(key)] = string(value)
	}
	return name, attrs
}

func (t *lenientTokenizer) close() error {
	t.depth--
	if t.listener != nil {
		t.listener.OnTagClose()
	}
	return t.parser.OnTagClose()
}

// strictTokenizer tokenizes XML without namespace resolution, so
// prefixed names reach the parser as written. Unbalanced or mismatched
// tags are errors.
type strictTokenizer struct {
	dec      *xml.Decoder
	parser   *Parser
	listener ParseListener
	names    []string
}

func (t *strictTokenizer) step() (bool, error) {
	token, err := t.dec.RawToken()
	if err == io.EOF {
		if len(t.names) > 0 {
			return false, wrapTokenizeError(int(t.dec.InputOffset()),
				fmt.Errorf("unexpected end of input inside <%s>", t.names[len(t.names)-1]))
		}
		if t.listener != nil {
			t.listener.OnEnd()
		}
		return true, t.parser.OnEnd()
	}
	if err != nil {
		return false, wrapTokenizeError(int(t.dec.InputOffset()), err)
	}

	switch tok := token.(type) {
	case xml.StartElement:
		name := rawName(tok.Name)
		attrs := make(map[string]string, len(tok.Attr))
		for _, attr := range tok.Attr {
			attrs[rawName(attr.Name)] = attr.Value
		}
		t.names = append(t.names, name)
		if t.listener != nil {
			t.listener.OnTagOpen(name, attrs)
		}
		return false, t.parser.OnTagOpen(name, attrs)

	case xml.EndElement:
		name := rawName(tok.Name)
		if len(t.names) == 0 {
			return false, wrapTokenizeError(int(t.dec.InputOffset()), ErrUnbalancedClose)
		}
		if expected := t.names[len(t.names)-1]; expected != name {
			return false, wrapTokenizeError(int(t.dec.InputOffset()),
				fmt.Errorf("mismatched close tag </%s>, expected </%s>", name, expected))
		}
		t.names = t.names[:len(t.names)-1]
		if t.listener != nil {
			t.listener.OnTagClose()
		}
		return false, t.parser.OnTagClose()

	case xml.CharData:
		data := string(tok)
		if t.listener != nil {
			t.listener.OnText(data)
		}
		return false, t.parser.OnText(data)
	}
	// Comments, directives and processing instructions carry no data.
	return false, nil
}

// rawName renders an unresolved XML name back to its prefixed form.
func rawName(name xml.Name) string {
	if name.Space != "" {
		return name.Space + ":" + name.Local
	}
	return name.Local
}
