package svgpath

// PathScanner iterates over the elements of a path while tracking the
// current point, exposing the start point of each element, which the
// element itself does not store.
type PathScanner struct {
	p     Path
	i     int
	start Point
	cur   Point
	sub   Point // subpath start, where closepath returns to
}

func (p Path) Scanner() *PathScanner {
	return &PathScanner{p: p, i: -1}
}

func (s *PathScanner) Scan() bool {
	if s.i+1 == len(s.p) {
		return false
	}
	s.i++
	e := &s.p[s.i]
	s.start = s.cur
	switch e.Cmd {
	case MoveToCmd:
		s.cur = e.End
		s.sub = e.End
	case HLineToCmd:
		s.cur.X = e.End.X
	case VLineToCmd:
		s.cur.Y = e.End.Y
	case CloseCmd:
		s.cur = s.sub
	default:
		s.cur = e.End
	}
	return true
}

func (s *PathScanner) Element() *Element {
	return &s.p[s.i]
}

func (s *PathScanner) Cmd() PathCmd {
	return s.p[s.i].Cmd
}

// Start returns the point at which the element begins drawing. Only
// meaningful on absolute paths.
func (s *PathScanner) Start() Point {
	return s.start
}

// End returns the point at which the element ends, the current point for
// the next element.
func (s *PathScanner) End() Point {
	return s.cur
}

// CP1 returns the first control point for quadratic and cubic beziers.
func (s *PathScanner) CP1() Point {
	if s.p[s.i].Cmd != QuadToCmd && s.p[s.i].Cmd != CubeToCmd {
		panic("must be quadratic or cubic bezier")
	}
	return s.p[s.i].Control1
}

// CP2 returns the second control point for cubic beziers.
func (s *PathScanner) CP2() Point {
	if s.p[s.i].Cmd != CubeToCmd {
		panic("must be cubic bezier")
	}
	return s.p[s.i].Control2
}

// PathReverseScanner iterates over the elements of a path from last to
// first.
type PathReverseScanner struct {
	p Path
	i int
}

func (p Path) ReverseScanner() *PathReverseScanner {
	return &PathReverseScanner{p: p, i: len(p)}
}

func (s *PathReverseScanner) Scan() bool {
	if s.i == 0 {
		return false
	}
	s.i--
	return true
}

func (s *PathReverseScanner) Element() *Element {
	return &s.p[s.i]
}

func (s *PathReverseScanner) Cmd() PathCmd {
	return s.p[s.i].Cmd
}

// Start returns the point at which the element begins drawing, the end
// point of the element before it. Only meaningful on absolute paths whose
// preceding element carries a full endpoint.
func (s *PathReverseScanner) Start() Point {
	if s.i == 0 {
		return Point{}
	}
	prev := &s.p[s.i-1]
	switch prev.Cmd {
	case HLineToCmd, VLineToCmd, CloseCmd:
		panic("start point not stored for horizontal, vertical or close commands")
	}
	return prev.End
}

// CP1 returns the first control point for quadratic and cubic beziers.
func (s *PathReverseScanner) CP1() Point {
	if s.p[s.i].Cmd != QuadToCmd && s.p[s.i].Cmd != CubeToCmd {
		panic("must be quadratic or cubic bezier")
	}
	return s.p[s.i].Control1
}

// CP2 returns the second control point for cubic beziers.
func (s *PathReverseScanner) CP2() Point {
	if s.p[s.i].Cmd != CubeToCmd {
		panic("must be cubic bezier")
	}
	return s.p[s.i].Control2
}
