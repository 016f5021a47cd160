// Package jsnum carries integers that follow browser parseInt semantics,
// including the NaN produced when a form field holds no leading digits.
package jsnum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Int is an integer that may be NaN. The zero value is NaN. Digit runs too
// long for int64 keep the nearest float64, as the browser does.
type Int struct {
	v     int64
	wide  float64
	valid bool
	isBig bool
}

// Of returns a valid Int holding n.
func Of(n int64) Int { return Int{v: n, valid: true} }

// NaN returns the not-a-number Int.
func NaN() Int { return Int{} }

func (i Int) IsNaN() bool { return !i.valid }

// Int64 returns the value and false when i is NaN or outside int64.
func (i Int) Int64() (int64, bool) { return i.v, i.valid && !i.isBig }

// Ptr returns nil for NaN, which is how nullable columns store it.
func (i Int) Ptr() *int64 {
	v, ok := i.Int64()
	if !ok {
		return nil
	}
	return &v
}

func (i Int) String() string {
	switch {
	case !i.valid:
		return "NaN"
	case i.isBig:
		return formatWide(i.wide)
	}
	return strconv.FormatInt(i.v, 10)
}

// MarshalJSON writes NaN and infinities as null, matching JSON.stringify.
func (i Int) MarshalJSON() ([]byte, error) {
	switch {
	case !i.valid || (i.isBig && math.IsInf(i.wide, 0)):
		return []byte("null"), nil
	case i.isBig:
		return []byte(formatWide(i.wide)), nil
	}
	return strconv.AppendInt(nil, i.v, 10), nil
}

// formatWide prints f the way Number#toString does for integral values.
func formatWide(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

// UnmarshalJSON accepts an integral number or null.
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = NaN()
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("jsnum: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("jsnum: %s is not an integer", n)
	}
	*i = Of(v)
	return nil
}

// ParseInt mirrors parseInt(s) with no radix: leading whitespace is skipped,
// an optional sign and 0x prefix are honoured and parsing stops at the first
// non-digit. No digits at all yields NaN.
func ParseInt(s string) Int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return NaN()
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if errors.Is(err, strconv.ErrRange) {
		return wide(digits, base)
	}
	if err != nil {
		return NaN()
	}
	return Of(v)
}

func wide(digits string, base int) Int {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return Int{wide: f, valid: true, isBig: true}
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
