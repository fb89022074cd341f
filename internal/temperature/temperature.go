// Package temperature converts Fahrenheit readings to Celsius using integer arithmetic.
package temperature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when the input text is not a 32-bit signed integer
var ErrInvalidValue = errors.New("invalid value")

// ParseFahrenheit parses one line of user input
func ParseFahrenheit(text string) (int32, error) {
	s := strings.TrimSpace(text)
	f, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return int32(f), nil
}

// ToCelsius converts with truncating division, so 100f is 37c.
func ToCelsius(f int32) int32 {
	return (f - 32) * 5 / 9
}

// Format renders a conversion result as "{F}f is {C}c"
func Format(f, c int32) string {
	return fmt.Sprintf("%df is %dc", f, c)
}
