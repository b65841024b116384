package core

import "errors"

// ErrInvalidTime is returned by Parse for text that is not H:MM, HH:MM or HH:MM:SS
var ErrInvalidTime = errors.New("invalid time of day")

// ParseError records the text that Parse rejected
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return ErrInvalidTime.Error() + ": \"" + e.Input + "\""
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidTime
}

// Parse reads "H:MM", "HH:MM" or "HH:MM:SS" decimal text, as typed into
// a trigger-time form or printed by Format.
// The hour takes one to three digits, minute and second two or three.
// Each field must fit in a byte but is otherwise not range-checked.
func Parse(s string) (TimeOfDay, error) {
	var fields [3]uint8
	n := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ':' {
			continue
		}
		if n == len(fields) {
			return TimeOfDay{}, &ParseError{Input: s}
		}
		v, ok := parseUint8(s[start:i])
		if !ok || (n > 0 && i-start < 2) {
			return TimeOfDay{}, &ParseError{Input: s}
		}
		fields[n] = v
		n++
		start = i + 1
	}
	if n < 2 {
		return TimeOfDay{}, &ParseError{Input: s}
	}
	return NewTimeOfDay(fields[0], fields[1], fields[2]), nil
}

// parseUint8 accepts one to three decimal digits with a value up to 255
func parseUint8(s string) (uint8, bool) {
	if len(s) == 0 || len(s) > 3 {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint32(c-'0')
	}
	if v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// appendPad2 appends n in decimal with a leading zero when it has a single digit
func appendPad2(buf []byte, n uint8) []byte {
	if n < 10 {
		buf = append(buf, '0')
	}
	return append(buf, utoa(uint32(n))...)
}

// utoa converts an unsigned integer to a string without using fmt
// This is a lightweight alternative for embedded systems
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}
