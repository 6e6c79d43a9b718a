package msh

import "fmt"

// defaultMaxLineLength bounds a single input line. Real 4.1 files stay
// far below this; the limit only guards against unbounded buffering on
// garbage input.
const defaultMaxLineLength = 1 << 20

// Options holds parse-time tunables. Construct via DefaultOptions and
// the With* functions; an invalid option is recorded internally and
// surfaced as ErrBadOption when Parse is invoked.
type Options struct {
	maxLineLength  int
	buildAdjacency bool

	// internal error recorded during option parsing
	err error
}

// Option configures Parse behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - 1 MiB maximum line length
//   - neighbour table built as part of the parse.
func DefaultOptions() Options {
	return Options{
		maxLineLength:  defaultMaxLineLength,
		buildAdjacency: true,
		err:            nil,
	}
}

// WithMaxLineLength bounds the length of a single input line in bytes.
// Values below 1 are an option violation.
func WithMaxLineLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("max line length %d: %w", n, ErrBadOption)
			return
		}
		o.maxLineLength = n
	}
}

// WithoutAdjacency skips the neighbour-table build. The returned mesh
// answers every Neighbour query with core.None; hosts that only need
// geometry and media save the topology pass.
func WithoutAdjacency() Option {
	return func(o *Options) { o.buildAdjacency = false }
}
