package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Money formats an amount with exactly two decimals.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Number formats a value with the shortest representation that round-trips,
// so 1500 prints as "1500" and 1500.5 as "1500.5".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HalfRate formats half a GST percent rate with one decimal, e.g. 18 -> "9.0".
// CGST and SGST are always an equal split of the product rate.
func HalfRate(rate float64) string {
	return fmt.Sprintf("%.1f", rate/2)
}

// FormatINR formats a number with Indian digit grouping: the last three
// integer digits form one group, every two digits before that another
// (12,34,567). The fractional part, if any, is carried through untouched.
func FormatINR(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]

	// Leading group of one or two digits, then two-digit groups.
	first := len(head) % 2
	if first == 0 {
		first = 2
	}
	b.WriteString(head[:first])
	for i := first; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)

	return sign + b.String() + fracPart
}
