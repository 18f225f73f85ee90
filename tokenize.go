package svgpath

import (
	"fmt"
	"strings"
)

// token is one command letter with the raw text that followed it, up to the
// next command letter.
type token struct {
	letter byte
	params string // parameter text, trimmed of leading whitespace
	orig   string // letter and untrimmed parameter text
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

func newToken(s string) token {
	return token{
		letter: s[0],
		params: strings.TrimLeft(s[1:], " \t\n\r\f"),
		orig:   s,
	}
}

// tokenize splits path data on its command letters. The text before the
// first letter must be whitespace and the first command must be a moveto.
// Parameter text that does not match the command's grammar is reported
// through opts as a warning, never as an error: the number scanner decides
// what the parameters actually contain.
func tokenize(d string, opts *Options) ([]token, error) {
	if !movetoRE.MatchString(d) {
		return nil, fmt.Errorf("bad path: path should start with a moveto command")
	}

	var tokens []token
	start := -1
	for i := 0; i < len(d); i++ {
		if isCommandLetter(d[i]) {
			if start != -1 {
				tokens = append(tokens, newToken(d[start:i]))
			}
			start = i
		}
	}
	tokens = append(tokens, newToken(d[start:]))

	for _, tok := range tokens {
		if !commandRE[upper(tok.letter)].MatchString(tok.orig) {
			opts.warnf("bad path: %q does not match the grammar of command '%c'", tok.orig, tok.letter)
		}
	}
	return tokens, nil
}
