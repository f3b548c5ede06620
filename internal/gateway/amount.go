package gateway

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const maxAmountExponent = 64

// ParseMinorUnits converts a decimal string such as "10.50" or "1.05e1" to
// minor units, rounding half away from zero on the third fractional digit.
func ParseMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	if s[0] == '-' || s[0] == '+' {
		return 0, fmt.Errorf("amount %q must be an unsigned decimal", s)
	}

	mantissa, exponent, hasExp := strings.Cut(strings.ToLower(s), "e")
	whole, frac, _ := strings.Cut(mantissa, ".")
	if !allDigits(whole) || !allDigits(frac) || (whole == "" && frac == "") {
		return 0, fmt.Errorf("amount %q is not a decimal number", s)
	}

	if hasExp {
		exp, err := strconv.Atoi(exponent)
		if err != nil {
			return 0, fmt.Errorf("amount %q has an invalid exponent", s)
		}
		if exp > maxAmountExponent || exp < -maxAmountExponent {
			return 0, fmt.Errorf("amount %q is out of range", s)
		}
		whole, frac = shiftPoint(whole, frac, exp)
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}

	frac += "00"
	cents := int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	return units*100 + cents, nil
}

// shiftPoint moves the decimal point of whole.frac by exp places.
func shiftPoint(whole, frac string, exp int) (string, string) {
	digits := whole + frac
	point := len(whole) + exp

	switch {
	case point <= 0:
		return "", strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return digits + strings.Repeat("0", point-len(digits)), ""
	default:
		return digits[:point], digits[point:]
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
