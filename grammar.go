package svgpath

import (
	"regexp"
	"strings"
)

// The path-data grammar from the SVG specification, composed as pattern
// fragments and compiled once. The numeric extraction in scan.go is the
// source of truth for argument shape; the per-command patterns only back
// the advisory grammar check in tokenize.go.
const (
	wsp        = `[ \t\n\r\f]`
	commaWsp   = `(?:` + wsp + `+,?` + wsp + `*|,` + wsp + `*)`
	digitSeq   = `[0-9]+`
	fractional = `[0-9]*\.[0-9]+`
	exponent   = `[eE][+-]?[0-9]+`
	number     = `[+-]?(?:` + fractional + `|` + digitSeq + `)(?:` + exponent + `)?`
	coordinate = `(?:` + number + `)(?:` + commaWsp + `)?`
)

var (
	// numberRE recognizes one numeric literal.
	numberRE = regexp.MustCompile(number)

	// movetoRE requires path data to open with whitespace and a moveto.
	movetoRE = regexp.MustCompile(`\A` + wsp + `*[Mm]`)

	// commandRE holds the full argument-sequence grammar per command,
	// keyed by the uppercase command letter. Arc flags are matched as
	// plain numbers, exactly as the number scanner consumes them.
	commandRE = map[byte]*regexp.Regexp{
		'M': argSeqRE(`[Mm]`, 2),
		'Z': regexp.MustCompile(`\A[Zz]` + wsp + `*\z`),
		'L': argSeqRE(`[Ll]`, 2),
		'H': argSeqRE(`[Hh]`, 1),
		'V': argSeqRE(`[Vv]`, 1),
		'C': argSeqRE(`[Cc]`, 6),
		'S': argSeqRE(`[Ss]`, 4),
		'Q': argSeqRE(`[Qq]`, 4),
		'T': argSeqRE(`[Tt]`, 2),
		'A': argSeqRE(`[Aa]`, 7),
	}
)

// argSeqRE compiles the grammar of a command letter followed by one or more
// argument groups of the given arity.
func argSeqRE(letter string, arity int) *regexp.Regexp {
	return regexp.MustCompile(`\A` + letter + wsp + `*(?:` + strings.Repeat(coordinate, arity) + `)+\z`)
}
