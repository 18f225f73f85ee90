package svgpath

import "fmt"

// resolver is the running state of the absolute-resolution pass, threaded
// explicitly through every element.
type resolver struct {
	cur     Point // current point
	start   Point // start of the current subpath, restored on closepath
	drawing bool  // whether the current subpath has started drawing
	prev    *Element
}

// ToAbsolute rewrites every element to absolute coordinates in place,
// tracking the current point across the sequence. Under opts.NoShortcuts
// smooth curve shorthands are also rewritten to their explicit commands by
// reflecting the implicit control point, which fails when no curve of the
// matching family directly precedes. Resolving an already absolute path
// changes nothing.
func (p Path) ToAbsolute(opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	r := resolver{}
	if opts.Initial != nil {
		// substitutes for the origin when the leading moveto is relative
		r.cur = *opts.Initial
	}
	for i := range p {
		if err := r.resolve(&p[i], opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolve(e *Element, opts *Options) error {
	if e.Key == 0 {
		return fmt.Errorf("bad path: %s element has no source command letter", e.Cmd)
	}

	if e.Rel {
		switch e.Cmd {
		case MoveToCmd, LineToCmd, SmoothQuadToCmd:
			e.End = e.End.Add(r.cur)
		case HLineToCmd:
			e.End.X += r.cur.X
		case VLineToCmd:
			e.End.Y += r.cur.Y
		case CubeToCmd:
			e.Control1 = e.Control1.Add(r.cur)
			e.Control2 = e.Control2.Add(r.cur)
			e.End = e.End.Add(r.cur)
		case SmoothCubeToCmd:
			e.Control2 = e.Control2.Add(r.cur)
			e.End = e.End.Add(r.cur)
		case QuadToCmd:
			e.Control1 = e.Control1.Add(r.cur)
			e.End = e.End.Add(r.cur)
		case ArcToCmd:
			// radii, rotation and flags are not coordinates
			e.End = e.End.Add(r.cur)
		case CloseCmd:
		}
	}

	// the first drawing element of a subpath fixes where closepath returns
	if !r.drawing && e.Cmd != MoveToCmd && e.Cmd != CloseCmd {
		r.start = r.cur
		r.drawing = true
	}

	if opts.NoShortcuts {
		if err := r.removeShortcut(e); err != nil {
			return err
		}
	}

	switch e.Cmd {
	case HLineToCmd:
		r.cur.X = e.End.X
	case VLineToCmd:
		r.cur.Y = e.End.Y
	case CloseCmd:
		r.cur = r.start
		r.drawing = false
	default:
		r.cur = e.End
	}

	e.Rel = false
	e.Key = upper(e.Key)
	r.prev = e
	return nil
}

// removeShortcut rewrites a smooth curve to its explicit command. The
// implicit control point reflects the previous curve's final control point
// about the current point; a chain of smooth curves works because each
// rewritten element carries its control point explicitly for the next one.
func (r *resolver) removeShortcut(e *Element) error {
	switch e.Cmd {
	case SmoothCubeToCmd:
		if r.prev == nil || r.prev.Cmd != CubeToCmd {
			return fmt.Errorf("bad path: smooth cubic bezier is not preceded by a cubic bezier")
		}
		e.Control1 = r.cur.Reflect(r.prev.Control2)
		e.Cmd = CubeToCmd
		e.Key = 'C'
	case SmoothQuadToCmd:
		if r.prev == nil || r.prev.Cmd != QuadToCmd {
			return fmt.Errorf("bad path: smooth quadratic bezier is not preceded by a quadratic bezier")
		}
		e.Control1 = r.cur.Reflect(r.prev.Control1)
		e.Cmd = QuadToCmd
		e.Key = 'Q'
	}
	return nil
}
