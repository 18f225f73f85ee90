package svgpath

import "github.com/tdewolff/parse/v2/strconv"

// scanNumbers extracts the numeric literals of a parameter substring in
// left-to-right order. It checks lexical shape only; whether the count fits
// the command's arity is the builder's concern.
func scanNumbers(params string) []float64 {
	var nums []float64
	for _, lit := range numberRE.FindAllString(params, -1) {
		f, _ := strconv.ParseFloat([]byte(lit))
		nums = append(nums, f)
	}
	return nums
}
