package view

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseQuantity coerces raw input the way a numeric form field does: the longest
// leading integer is used and the rest ignored. It returns nil when no number
// can be read, or when the number does not fit in an int.
func ParseQuantity(raw string) *int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// ParsePrice coerces raw input to a float using the longest leading decimal
// literal, exponent included. It returns nil when no finite number can be read.
func ParsePrice(raw string) *float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	intDigits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		intDigits++
	}
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		i := end + 1
		for i < len(s) && isDigit(s[i]) {
			i++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			end = i
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return nil
	}
	// exponent only counts when at least one digit follows it
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		i := end + 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i > expStart {
			end = i
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return nil
	}
	return &f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
