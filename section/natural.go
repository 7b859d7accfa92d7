package section

import "strings"

// naturalCompare orders strings by their runs of digits and non-digits. Digit
// runs compare by numeric value of any length, other runs bytewise, and a
// string that runs out first sorts first. Strings that differ only in
// leading zeros fall back to bytewise order, so only identical strings tie.
func naturalCompare(a, b string) int {
	x, y := a, b

	for x != "" && y != "" {
		var cx, cy string

		cx, x = nextRun(x)
		cy, y = nextRun(y)

		if c := compareRuns(cx, cy); c != 0 {
			return c
		}
	}

	switch {
	case x != "":
		return 1
	case y != "":
		return -1
	default:
		return strings.Compare(a, b)
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// nextRun splits s after its leading run of digits or non-digits.
func nextRun(s string) (run, rest string) {
	digits := isDigit(s[0])

	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}

	return s[:i], s[i:]
}

func compareRuns(x, y string) int {
	if !isDigit(x[0]) || !isDigit(y[0]) {
		return strings.Compare(x, y)
	}

	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")

	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}

		return 1
	}

	return strings.Compare(x, y)
}
