package csscolor

import "strconv"

// scanNumbers extracts every numeric token from s in left-to-right order,
// ignoring all other characters (function names, parentheses, commas,
// percent signs, units, whitespace). A token is a run of digits with at
// most one decimal point and an optional leading sign; runs that fail to
// parse, like a lone sign, are dropped.
func scanNumbers(s string) []float64 {
	var nums []float64
	start := -1
	dot := false

	flush := func(end int) {
		if start < 0 {
			return
		}
		if v, err := strconv.ParseFloat(s[start:end], 64); err == nil {
			nums = append(nums, v)
		}
		start = -1
		dot = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if start < 0 {
				start = i
			}
		case c == '.':
			if dot {
				flush(i)
			}
			if start < 0 {
				start = i
			}
			dot = true
		case c == '-' || c == '+':
			flush(i)
			start = i
		default:
			flush(i)
		}
	}
	flush(len(s))
	return nums
}
