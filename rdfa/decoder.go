package rdfa

import "io"

// Decoder pulls extracted statements one at a time.
type Decoder struct {
	parser *Parser
	tok    tokenizer
	opts   Options

	queue []Quad
	done  bool
	err   error
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	d := &Decoder{opts: options}
	parser, err := newParser(func(q Quad) error {
		d.queue = append(d.queue, q)
		return nil
	}, options)
	if err != nil {
		return nil, err
	}
	d.parser = parser
	d.tok = newTokenizer(r, parser, options)
	return d, nil
}

// Next returns the next statement. It returns io.EOF when the input is
// exhausted.
func (d *Decoder) Next() (Quad, error) {
	for len(d.queue) == 0 {
		if d.err != nil {
			return Quad{}, d.err
		}
		if d.done {
			return Quad{}, io.EOF
		}
		if err := d.opts.Context.Err(); err != nil {
			d.err = err
			return Quad{}, err
		}
		done, err := d.tok.step()
		if err != nil {
			d.err = err
			return Quad{}, err
		}
		d.done = done
	}
	quad := d.queue[0]
	d.queue = d.queue[1:]
	return quad, nil
}

// Err returns the first error encountered, if any.
func (d *Decoder) Err() error { return d.err }

// Close releases decoder resources.
func (d *Decoder) Close() error { return nil }
