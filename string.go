package svgpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// num formats a coordinate with Precision significant digits in the
// shortest representation the path grammar accepts.
type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ToSVG serializes the path to SVG path data. Command letters keep their
// case, so a relative path serializes to an equivalent relative path.
func (p Path) ToSVG() string {
	sb := strings.Builder{}
	for i := range p {
		p[i].toSVG(&sb)
	}
	return sb.String()
}

func (e *Element) toSVG(sb *strings.Builder) {
	if e.Key != 0 {
		sb.WriteByte(e.Key)
	} else {
		sb.WriteByte(e.Cmd.Letter(e.Rel))
	}
	switch e.Cmd {
	case MoveToCmd, LineToCmd, SmoothQuadToCmd:
		fmt.Fprintf(sb, "%v %v", num(e.End.X), num(e.End.Y))
	case HLineToCmd:
		fmt.Fprintf(sb, "%v", num(e.End.X))
	case VLineToCmd:
		fmt.Fprintf(sb, "%v", num(e.End.Y))
	case CubeToCmd:
		fmt.Fprintf(sb, "%v %v %v %v %v %v",
			num(e.Control1.X), num(e.Control1.Y), num(e.Control2.X), num(e.Control2.Y), num(e.End.X), num(e.End.Y))
	case SmoothCubeToCmd:
		fmt.Fprintf(sb, "%v %v %v %v", num(e.Control2.X), num(e.Control2.Y), num(e.End.X), num(e.End.Y))
	case QuadToCmd:
		fmt.Fprintf(sb, "%v %v %v %v", num(e.Control1.X), num(e.Control1.Y), num(e.End.X), num(e.End.Y))
	case ArcToCmd:
		fmt.Fprintf(sb, "%v %v %v %c %c %v %v",
			num(e.Rx), num(e.Ry), num(e.Rotation), flag(e.Large), flag(e.Sweep), num(e.End.X), num(e.End.Y))
	case CloseCmd:
	default:
		panic("unknown path command")
	}
}
