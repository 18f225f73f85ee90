package svgpath

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestReverse(t *testing.T) {
	var tts = []struct {
		d    string
		want string
	}{
		{"M0,0 C1,1 2,2 3,3", "M3 3C2 2 1 1 0 0"},
		{"m0,0 c1,1 2,2 3,3", "M3 3C2 2 1 1 0 0"},
		{"M0,0 C0,5 5,5 5,0 C5,-5 10,-5 10,0", "M10 0C10 -5 5 -5 5 0C5 5 0 5 0 0"},
		// smooth shorthands are made explicit before reversing
		{"M0,0 C1,1 2,2 3,3 S5,5 6,6", "M6 6C5 5 4 4 3 3C2 2 1 1 0 0"},
		{"M0,0 C0,5 5,5 5,0 C5,-5 0,-5 0,0 Z", "M0 0C0 -5 5 -5 5 0C5 5 0 5 0 0Z"},
		{"M1,2", "M1 2"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			rev, err := Reverse(tt.d)
			test.Error(t, err)
			test.T(t, rev, tt.want)
		})
	}
}

func TestReverseReverse(t *testing.T) {
	var tts = []string{
		"M0 0C1 1 2 2 3 3",
		"M0 0C0 5 5 5 5 0C5 -5 10 -5 10 0",
		"M0 0C0 5 5 5 5 0C5 -5 0 -5 0 0Z",
	}
	for _, d := range tts {
		t.Run(d, func(t *testing.T) {
			rev, err := Reverse(d)
			test.Error(t, err)
			rev2, err := Reverse(rev)
			test.Error(t, err)
			test.T(t, rev2, d)
		})
	}
}

func TestReverseErrors(t *testing.T) {
	var tts = []struct {
		d   string
		err string
	}{
		{"M0,0 L1,1", "bad path: cannot reverse lineto commands"},
		{"M0,0 H5", "bad path: cannot reverse horizontal lineto commands"},
		{"M0,0 V5", "bad path: cannot reverse vertical lineto commands"},
		{"M0,0 Q1,1 2,2", "bad path: cannot reverse quadratic bezier commands"},
		{"M0,0 A5 5 0 1 0 10,0", "bad path: cannot reverse elliptical arc commands"},
		{"M0,0 C1,1 2,2 3,3 M5,5 C6,6 7,7 8,8", "bad path: cannot reverse moveto commands"},
		{"M0,0 C1,1 2,2 3,3 Z C4,4 5,5 6,6", "bad path: cannot reverse closepath commands"},
		{"M0,0 T1,1", "bad path: smooth quadratic bezier is not preceded by a quadratic bezier"},
		{"L1,2", "bad path: path should start with a moveto command"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			_, err := Reverse(tt.d)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}
