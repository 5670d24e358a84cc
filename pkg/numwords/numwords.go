package numwords

import "strings"

// Word tables for the 0-999 group converter. Index 0 of ones/tens is unused.
var (
	ones  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// ToWords converts a non-negative amount into English words using the Indian
// numbering system (Crore/Lakh/Thousand). Only the integer part of the amount
// is worded; any fractional component is truncated, not rounded. The caller is
// expected to append a currency suffix such as "Rupees Only".
func ToWords(amount float64) string {
	if amount == 0 {
		return "Zero"
	}
	n := int64(amount)

	var b strings.Builder

	if n >= 10000000 {
		b.WriteString(group(int(n / 10000000)))
		b.WriteString(" Crore ")
		n %= 10000000
	}
	if n >= 100000 {
		b.WriteString(group(int(n / 100000)))
		b.WriteString(" Lakh ")
		n %= 100000
	}
	if n >= 1000 {
		b.WriteString(group(int(n / 1000)))
		b.WriteString(" Thousand ")
		n %= 1000
	}
	if n > 0 {
		b.WriteString(group(int(n)))
	}

	return strings.TrimSpace(b.String())
}

// group words a value in the range 0-999. Zero yields an empty string.
func group(n int) string {
	var b strings.Builder

	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" Hundred")
		n %= 100
		if n > 0 {
			b.WriteByte(' ')
		}
	}

	switch {
	case n >= 20:
		b.WriteString(tens[n/10])
		if n%10 > 0 {
			b.WriteByte(' ')
			b.WriteString(ones[n%10])
		}
	case n >= 10:
		b.WriteString(teens[n-10])
	case n > 0:
		b.WriteString(ones[n])
	}

	return b.String()
}
