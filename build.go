package svgpath

import "fmt"

// arity is the number of parameters consumed per repetition of a command.
var arity = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// buildElements expands the numbers following one command letter into
// elements, one per repetition of the command's arity. A moveto with more
// than one coordinate pair yields implicit linetos for the extra pairs,
// sharing the moveto's position kind.
func buildElements(letter byte, nums []float64) ([]Element, error) {
	n, ok := arity[upper(letter)]
	if !ok {
		return nil, fmt.Errorf("bad path: unknown command '%c'", letter)
	}
	if n == 0 {
		if len(nums) != 0 {
			return nil, fmt.Errorf("bad path: no numbers should follow command '%c' but got %d", letter, len(nums))
		}
	} else if len(nums) == 0 || len(nums)%n != 0 {
		return nil, fmt.Errorf("bad path: a multiple of %d numbers should follow command '%c' but got %d", n, letter, len(nums))
	}

	rel := 'a' <= letter && letter <= 'z'
	elems := make([]Element, 0, 1+len(nums)/max(n, 1))
	switch upper(letter) {
	case 'M':
		elems = append(elems, Element{Cmd: MoveToCmd, Key: letter, Rel: rel, End: Point{nums[0], nums[1]}})
		for i := 2; i < len(nums); i += 2 {
			elems = append(elems, Element{Cmd: LineToCmd, Key: LineToCmd.Letter(rel), Rel: rel, End: Point{nums[i], nums[i+1]}})
		}
	case 'Z':
		elems = append(elems, Element{Cmd: CloseCmd, Key: letter, Rel: rel})
	case 'L':
		for i := 0; i < len(nums); i += 2 {
			elems = append(elems, Element{Cmd: LineToCmd, Key: letter, Rel: rel, End: Point{nums[i], nums[i+1]}})
		}
	case 'H':
		for i := 0; i < len(nums); i++ {
			elems = append(elems, Element{Cmd: HLineToCmd, Key: letter, Rel: rel, End: Point{X: nums[i]}})
		}
	case 'V':
		for i := 0; i < len(nums); i++ {
			elems = append(elems, Element{Cmd: VLineToCmd, Key: letter, Rel: rel, End: Point{Y: nums[i]}})
		}
	case 'C':
		for i := 0; i < len(nums); i += 6 {
			elems = append(elems, Element{Cmd: CubeToCmd, Key: letter, Rel: rel,
				Control1: Point{nums[i], nums[i+1]}, Control2: Point{nums[i+2], nums[i+3]}, End: Point{nums[i+4], nums[i+5]}})
		}
	case 'S':
		for i := 0; i < len(nums); i += 4 {
			elems = append(elems, Element{Cmd: SmoothCubeToCmd, Key: letter, Rel: rel,
				Control2: Point{nums[i], nums[i+1]}, End: Point{nums[i+2], nums[i+3]}})
		}
	case 'Q':
		for i := 0; i < len(nums); i += 4 {
			elems = append(elems, Element{Cmd: QuadToCmd, Key: letter, Rel: rel,
				Control1: Point{nums[i], nums[i+1]}, End: Point{nums[i+2], nums[i+3]}})
		}
	case 'T':
		for i := 0; i < len(nums); i += 2 {
			elems = append(elems, Element{Cmd: SmoothQuadToCmd, Key: letter, Rel: rel, End: Point{nums[i], nums[i+1]}})
		}
	case 'A':
		for i := 0; i < len(nums); i += 7 {
			elems = append(elems, Element{Cmd: ArcToCmd, Key: letter, Rel: rel,
				Rx: nums[i], Ry: nums[i+1], Rotation: nums[i+2],
				Large: Equal(nums[i+3], 1.0), Sweep: Equal(nums[i+4], 1.0),
				End: Point{nums[i+5], nums[i+6]}})
		}
	}
	return elems, nil
}
