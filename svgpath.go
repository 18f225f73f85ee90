// Package svgpath parses the path-data mini-language of SVG documents (the
// d attribute of a path element) into a sequence of drawing commands, and
// transforms that sequence: resolving relative coordinates to absolute
// ones, rewriting smooth curve shorthands to their explicit form, tracing a
// cubic bezier path in the opposite direction, and serializing back to path
// data.
package svgpath

import (
	"fmt"
	"os"
)

// Options controls parsing. The zero value parses the path as written,
// keeping relative coordinates and smooth shorthands.
type Options struct {
	// Absolute resolves every relative coordinate against the current
	// point, leaving all elements absolute.
	Absolute bool

	// NoShortcuts additionally rewrites smooth curve shorthands to their
	// explicit commands by reflecting the implicit control point. Implies
	// Absolute.
	NoShortcuts bool

	// Initial substitutes for the origin when the leading moveto is
	// relative.
	Initial *Point

	// Verbose traces the parsing stages to stderr.
	Verbose bool

	// Warn receives advisory diagnostics, such as parameter text that does
	// not match a command's grammar. When nil, warnings are written to
	// stderr under Verbose and dropped otherwise.
	Warn func(error)
}

func (o *Options) warnf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	if o.Warn != nil {
		o.Warn(err)
	} else if o.Verbose {
		fmt.Fprintln(os.Stderr, "svgpath: warning:", err)
	}
}

func (o *Options) tracef(format string, args ...interface{}) {
	if o.Verbose {
		fmt.Fprintf(os.Stderr, "svgpath: "+format+"\n", args...)
	}
}

// Parse parses SVG path data into its sequence of drawing commands.
func Parse(d string, opts *Options) (Path, error) {
	if opts == nil {
		opts = &Options{}
	}
	tokens, err := tokenize(d, opts)
	if err != nil {
		return nil, err
	}

	var p Path
	for _, tok := range tokens {
		nums := scanNumbers(tok.params)
		opts.tracef("command '%c' with %d numbers", tok.letter, len(nums))
		elems, err := buildElements(tok.letter, nums)
		if err != nil {
			return nil, err
		}
		p = append(p, elems...)
	}

	if opts.Absolute || opts.NoShortcuts {
		if err := p.ToAbsolute(opts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustParse parses SVG path data and panics on a malformed path.
func MustParse(d string) Path {
	p, err := Parse(d, nil)
	if err != nil {
		panic(err)
	}
	return p
}
