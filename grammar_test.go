package svgpath

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNumberGrammar(t *testing.T) {
	var tts = []struct {
		s    string
		lits []string
	}{
		{"1 -2.5 +3e2 .5", []string{"1", "-2.5", "+3e2", ".5"}},
		{"1-2", []string{"1", "-2"}},
		{"0.5.5", []string{"0.5", ".5"}},
		{"1e2 1E-2 2.5E+3", []string{"1e2", "1E-2", "2.5E+3"}},
		{"10,20", []string{"10", "20"}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, numberRE.FindAllString(tt.s, -1), tt.lits)
		})
	}
}

func TestScanNumbers(t *testing.T) {
	nums := scanNumbers("1,-2.5 +3e2 .5")
	test.T(t, len(nums), 4)
	test.Float(t, nums[0], 1.0)
	test.Float(t, nums[1], -2.5)
	test.Float(t, nums[2], 300.0)
	test.Float(t, nums[3], 0.5)
}

func TestCommandGrammar(t *testing.T) {
	var tts = []struct {
		orig string
		ok   bool
	}{
		{"M0,0", true},
		{"M 0 , 0", true},
		{"m0,0 10,10", true},
		{"L1,2 ", true},
		{"L1,,2", false},
		{"L1", false},
		{"Z", true},
		{"Z  ", true},
		{"Z1", false},
		{"C1,1 2,2 3,3", true},
		{"C1,1 2,2", false},
		{"A5 4 30 1 0 10 0", true},
		{"Hx", false},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			test.T(t, commandRE[upper(tt.orig[0])].MatchString(tt.orig), tt.ok)
		})
	}
}
