package svgpath

// PathCmd distinguishes the drawing commands of the SVG path mini-language.
type PathCmd int

const (
	MoveToCmd PathCmd = iota
	LineToCmd
	HLineToCmd
	VLineToCmd
	CubeToCmd
	SmoothCubeToCmd
	QuadToCmd
	SmoothQuadToCmd
	ArcToCmd
	CloseCmd
)

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "moveto"
	case LineToCmd:
		return "lineto"
	case HLineToCmd:
		return "horizontal lineto"
	case VLineToCmd:
		return "vertical lineto"
	case CubeToCmd:
		return "cubic bezier"
	case SmoothCubeToCmd:
		return "smooth cubic bezier"
	case QuadToCmd:
		return "quadratic bezier"
	case SmoothQuadToCmd:
		return "smooth quadratic bezier"
	case ArcToCmd:
		return "elliptical arc"
	case CloseCmd:
		return "closepath"
	}
	return "unknown"
}

// Letter returns the command letter for the kind, lowercase when rel is set.
func (cmd PathCmd) Letter(rel bool) byte {
	var c byte
	switch cmd {
	case MoveToCmd:
		c = 'M'
	case LineToCmd:
		c = 'L'
	case HLineToCmd:
		c = 'H'
	case VLineToCmd:
		c = 'V'
	case CubeToCmd:
		c = 'C'
	case SmoothCubeToCmd:
		c = 'S'
	case QuadToCmd:
		c = 'Q'
	case SmoothQuadToCmd:
		c = 'T'
	case ArcToCmd:
		c = 'A'
	case CloseCmd:
		c = 'Z'
	default:
		panic("unknown path command")
	}
	if rel {
		c += 'a' - 'A'
	}
	return c
}

// Element is a single path command with its coordinates. Which fields are
// meaningful depends on Cmd: moveto, lineto and the bezier/arc commands use
// End as their endpoint, horizontal and vertical lineto use only End.X resp.
// End.Y, cubic beziers use Control1 and Control2, quadratic beziers use
// Control1, smooth cubic beziers use Control2 (the first control point is
// implicit), and arcs use Rx, Ry, Rotation, Large and Sweep. Closepath has
// no coordinates.
type Element struct {
	Cmd PathCmd
	Key byte // originating command letter, uppercase iff absolute
	Rel bool // coordinates are deltas from the current point

	End              Point
	Control1         Point
	Control2         Point
	Rx, Ry, Rotation float64
	Large, Sweep     bool
}

// Equals returns true if the elements have the same command, key, position
// kind and coordinates, with coordinates compared within epsilon.
func (e Element) Equals(o Element) bool {
	if e.Cmd != o.Cmd || e.Key != o.Key || e.Rel != o.Rel {
		return false
	}
	switch e.Cmd {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		return e.End.Equals(o.End)
	case HLineToCmd:
		return Equal(e.End.X, o.End.X)
	case VLineToCmd:
		return Equal(e.End.Y, o.End.Y)
	case CubeToCmd:
		return e.Control1.Equals(o.Control1) && e.Control2.Equals(o.Control2) && e.End.Equals(o.End)
	case SmoothCubeToCmd:
		return e.Control2.Equals(o.Control2) && e.End.Equals(o.End)
	case QuadToCmd:
		return e.Control1.Equals(o.Control1) && e.End.Equals(o.End)
	case ArcToCmd:
		return Equal(e.Rx, o.Rx) && Equal(e.Ry, o.Ry) && Equal(e.Rotation, o.Rotation) &&
			e.Large == o.Large && e.Sweep == o.Sweep && e.End.Equals(o.End)
	case CloseCmd:
		return true
	}
	return false
}

// Path is a parsed sequence of path elements.
type Path []Element

func (p Path) Empty() bool {
	return len(p) == 0
}

func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1].Cmd == CloseCmd
}

// Equals returns true if both paths have the same elements, with
// coordinates compared within epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equals(q[i]) {
			return false
		}
	}
	return true
}
