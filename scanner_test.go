package svgpath

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathScanner(t *testing.T) {
	p := MustParse("M1,1 L2,2 H5 V7 Z M8,8")
	s := p.Scanner()

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), MoveToCmd)
	test.T(t, s.Start(), Point{0.0, 0.0})
	test.T(t, s.End(), Point{1.0, 1.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), LineToCmd)
	test.T(t, s.Start(), Point{1.0, 1.0})
	test.T(t, s.End(), Point{2.0, 2.0})

	test.That(t, s.Scan())
	test.T(t, s.End(), Point{5.0, 2.0})

	test.That(t, s.Scan())
	test.T(t, s.End(), Point{5.0, 7.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), CloseCmd)
	test.T(t, s.End(), Point{1.0, 1.0})

	test.That(t, s.Scan())
	test.T(t, s.End(), Point{8.0, 8.0})
	test.That(t, !s.Scan())
}

func TestPathScannerControlPoints(t *testing.T) {
	p := MustParse("M0,0 C1,1 2,2 3,3 Q4,4 5,5")
	s := p.Scanner()

	test.That(t, s.Scan())
	test.That(t, s.Scan())
	test.T(t, s.CP1(), Point{1.0, 1.0})
	test.T(t, s.CP2(), Point{2.0, 2.0})

	test.That(t, s.Scan())
	test.T(t, s.CP1(), Point{4.0, 4.0})
}

func TestPathReverseScanner(t *testing.T) {
	p := MustParse("M0,0 C1,1 2,2 3,3 C4,4 5,5 6,6")
	s := p.ReverseScanner()

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), CubeToCmd)
	test.T(t, s.Start(), Point{3.0, 3.0})
	test.T(t, s.CP1(), Point{4.0, 4.0})
	test.T(t, s.CP2(), Point{5.0, 5.0})

	test.That(t, s.Scan())
	test.T(t, s.Start(), Point{0.0, 0.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), MoveToCmd)
	test.T(t, s.Start(), Point{})
	test.That(t, !s.Scan())
}

func BenchmarkScanner(b *testing.B) {
	p := MustParse(strings.Repeat("M0,0 C1,1 2,1 3,0 L5,5 ", 200))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for s := p.Scanner(); s.Scan(); {
			_ = s.End()
		}
	}
}
