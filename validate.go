package asciiwire

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or looks like a
// binary file. Errors wrap ErrInvalidUTF8 or ErrBinaryInput and name the
// first offending line.
func ValidateInput(src []byte) error {
	line := 1
	var total, control, firstControlLine int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("line %d: %w", line, ErrInvalidUTF8)
		}
		if r == 0 {
			return fmt.Errorf("line %d: %w", line, ErrBinaryInput)
		}
		total += size
		if isControlRune(r) {
			if control == 0 {
				firstControlLine = line
			}
			control++
		}
		if r == '\n' {
			line++
		}
		i += size
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return fmt.Errorf("line %d: %w", firstControlLine, ErrBinaryInput)
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
