package lut

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAngleInput indicates angle text that is not a finite real number.
var ErrInvalidAngleInput = errors.New("please enter a valid angle value")

// InputError wraps ErrInvalidAngleInput with the rejected text.
type InputError struct {
	Input string
}

func (e *InputError) Error() string {
	return ErrInvalidAngleInput.Error()
}

func (e *InputError) Unwrap() error {
	return ErrInvalidAngleInput
}

// ParseAngle parses user-entered degrees. Surrounding whitespace is ignored;
// NaN and infinities are rejected.
func ParseAngle(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Input: s}
	}
	return v, nil
}
