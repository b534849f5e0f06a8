package jsonparse

import (
	"math"

	"github.com/rpcpool/injson/document"
)

// maxExp mirrors the original library's documented bound: any decimal
// exponent larger than this already produces underflow or overflow in a
// float64, so it is rejected outright rather than computed.
const maxExp = 511

// number is the result of parsing a JSON number token: either an integer
// (isInt true, ival holds the value) or a float (fval holds the value).
type number struct {
	isInt bool
	ival  int64
	fval  float64
}

// parseNumber parses a JSON number per RFC 8259, starting at the current
// position (which must be '-' or a digit).
func (p *parser) parseNumber() (number, error) {
	c := p.c
	c.markTokenStart()

	neg := false
	if b, ok := c.peek(); ok && b == '-' {
		c.advance()
		neg = true
	}

	first, ok := c.peek()
	if !ok || !isDigit(first) {
		return number{}, c.errorf(document.ErrUnexpectedEOF, "expected digit in number")
	}

	dec, ndigits := p.parseDigits()
	if ndigits > 1 && first == '0' {
		return number{}, c.errorf(document.ErrLeadingZero, "number cannot have a leading zero")
	}

	exp := 0
	if ndigits > 18 {
		exp = ndigits - 18
	}

	var fract float64
	fexp := 0
	hasFraction := false
	if b, ok := c.peek(); ok && b == '.' {
		hasFraction = true
		c.advance()
		var fd int
		fract, fd = p.parseDigitsFloat()
		if fd == 0 {
			return number{}, c.errorf(document.ErrTruncatedNumber, "number truncated after '.'")
		}
		fexp = fd
	}

	hasExponent := false
	expNegative := false
	if b, ok := c.peek(); ok && (b == 'e' || b == 'E') {
		hasExponent = true
		c.advance()
		if b, ok := c.peek(); ok && (b == '+' || b == '-') {
			expNegative = b == '-'
			c.advance()
		}
		e, ed := p.parseDigits()
		if ed == 0 {
			return number{}, c.errorf(document.ErrTruncatedNumber, "number truncated at 'e'")
		}
		if expNegative {
			exp -= int(e)
		} else {
			exp += int(e)
		}
	}

	var num float64
	if exp != 0 {
		if hasExponent && expNegative {
			if exp < -maxExp {
				return number{}, c.errorf(document.ErrExponentOverflow, "exponent overflow")
			} else {
				num = (float64(dec) + fract/math.Pow10(fexp)) / math.Pow10(-exp)
			}
		} else {
			if exp > maxExp {
				return number{}, c.errorf(document.ErrExponentOverflow, "exponent overflow")
			}
			if exp > fexp {
				num = float64(dec)*math.Pow10(exp) + fract*math.Pow10(exp-fexp)
			} else {
				num = float64(dec)*math.Pow10(exp) + fract/math.Pow10(fexp-exp)
			}
		}
	} else if !hasFraction {
		n := int64(dec)
		if neg {
			n = -n
		}
		return number{isInt: true, ival: n}, nil
	} else {
		num = float64(dec) + fract/math.Pow10(fexp)
	}

	if neg {
		num = -num
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return number{}, c.errorf(document.ErrNonFiniteNumber, "numeric overflow")
	}
	return number{fval: num}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseDigits consumes a run of ASCII digits, returning their value
// capped to the first 18 significant digits (extra digits are still
// consumed and counted but do not contribute to the returned magnitude),
// and the total digit count.
func (p *parser) parseDigits() (uint64, int) {
	c := p.c
	var v uint64
	n := 0
	for {
		b, ok := c.peek()
		if !ok || !isDigit(b) {
			break
		}
		c.advance()
		if n < 18 {
			v = v*10 + uint64(b-'0')
		}
		n++
	}
	return v, n
}

// parseDigitsFloat is parseDigits for the fractional part, returning the
// digits' value already divided appropriately by caller via the digit
// count (the fraction numerator), capped the same way.
func (p *parser) parseDigitsFloat() (float64, int) {
	v, n := p.parseDigits()
	if n > 18 {
		n = 18
	}
	return float64(v), n
}
