package svgpath

import "fmt"

// Reverse parses path data and returns it traced end to start: every cubic
// bezier has its control points swapped and its endpoints walked backward.
// Only single-subpath data whose drawing commands are all cubic beziers can
// be reversed; a trailing closepath is kept. Smooth shorthands and relative
// coordinates are resolved before reversing.
func Reverse(d string) (string, error) {
	p, err := Parse(d, &Options{NoShortcuts: true})
	if err != nil {
		return "", err
	}

	closed := false
	for i := range p {
		e := &p[i]
		switch {
		case i == 0 && e.Cmd == MoveToCmd:
		case e.Cmd == CubeToCmd && !closed:
		case e.Cmd == CloseCmd && i == len(p)-1:
			closed = true
		default:
			return "", fmt.Errorf("bad path: cannot reverse %s commands", e.Cmd)
		}
	}

	last := len(p) - 1
	if closed {
		last--
	}
	rev := make(Path, 0, len(p))
	rev = append(rev, Element{Cmd: MoveToCmd, Key: 'M', End: p[last].End})
	for s := p[:last+1].ReverseScanner(); s.Scan(); {
		e := s.Element()
		if e.Cmd == MoveToCmd {
			break
		}
		rev = append(rev, Element{Cmd: CubeToCmd, Key: 'C',
			Control1: e.Control2, Control2: e.Control1, End: s.Start()})
	}
	if closed {
		rev = append(rev, Element{Cmd: CloseCmd, Key: 'Z'})
	}
	return rev.ToSVG(), nil
}
