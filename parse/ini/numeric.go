package ini

import (
	"math"
	"strconv"
	"strings"
)

// Numeric values are read permissively: the longest numeric prefix is used
// and anything after it is ignored, so "12abc" reads as 12 and "abc" as 0.
// Integers accept the same forms as C strtoll with base 0: decimal, "0x"
// hexadecimal and leading-zero octal.

// parseIntPrefix reads a signed integer prefix, saturating on overflow.
func parseIntPrefix(s string) int64 {
	neg, mag, overflow := scanInteger(s)
	if neg {
		if overflow || mag > 1<<63 {
			return math.MinInt64
		}
		return -int64(mag)
	}
	if overflow || mag > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(mag)
}

// parseUintPrefix reads an unsigned integer prefix. A leading minus negates
// the value modulo 2^64; overflow saturates.
func parseUintPrefix(s string) uint64 {
	neg, mag, overflow := scanInteger(s)
	if overflow {
		return math.MaxUint64
	}
	if neg {
		return -mag
	}
	return mag
}

func scanInteger(s string) (neg bool, mag uint64, overflow bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i < len(s) && s[i] == '0' {
		base = 8
		if i+2 < len(s) && (s[i+1]|0x20) == 'x' && isHexDigit(s[i+2]) {
			base = 16
			i += 2
		}
	}

	for ; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			break
		}
		if overflow {
			continue
		}
		if mag > (math.MaxUint64-d)/base {
			overflow = true
			continue
		}
		mag = mag*base + d
	}
	return neg, mag, overflow
}

// parseFloatPrefix reads a floating point prefix the way C strtod does:
// decimal with optional exponent, "0x" hexadecimal with optional binary
// exponent, "inf", "infinity" and "nan", all with an optional sign.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, spaceChars)

	sign := 1.0
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}

	switch {
	case hasPrefixFold(body, "inf"):
		return math.Inf(int(sign))
	case hasPrefixFold(body, "nan"):
		return math.NaN()
	}

	signLen := len(s) - len(body)
	if len(body) > 2 && body[0] == '0' && (body[1]|0x20) == 'x' {
		if n, hasExp := hexFloatLen(body[2:]); n > 0 {
			lit := s[:signLen+2+n]
			if !hasExp {
				lit += "p0"
			}
			f, _ := strconv.ParseFloat(lit, 64)
			return f
		}
	}

	n := decimalFloatLen(body)
	if n == 0 {
		return 0
	}
	// out of range literals come back as ±Inf or 0, matching strtod
	f, _ := strconv.ParseFloat(s[:signLen+n], 64)
	return f
}

func decimalFloatLen(s string) int {
	i, digits := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i]|0x20) == 'e' {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func hexFloatLen(s string) (n int, hasExp bool) {
	i, digits := 0, 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isHexDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i]|0x20) == 'p' {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			return j, true
		}
	}
	return i, false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	_, ok := digitValue(c)
	return ok
}
