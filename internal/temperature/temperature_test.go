package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCelsius(t *testing.T) {
	tests := []struct {
		f, want int32
	}{
		{32, 0},
		{212, 100},
		{100, 37},
		{-40, -40},
		{0, -17},
		{33, 0},
		{-459, -272},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCelsius(tt.f), "ToCelsius(%d)", tt.f)
	}
}

func TestParseFahrenheit(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"212\n", 212},
		{"  -40  ", -40},
		{"+7", 7},
		{"2147483647", 2147483647},
	}

	for _, tt := range tests {
		got, err := ParseFahrenheit(tt.input)
		require.NoError(t, err, "ParseFahrenheit(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFahrenheitInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12.5", "1e3", "2147483648", "12 34"} {
		_, err := ParseFahrenheit(input)
		assert.ErrorIs(t, err, ErrInvalidValue, "ParseFahrenheit(%q)", input)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "212f is 100c", Format(212, ToCelsius(212)))
	assert.Equal(t, "-40f is -40c", Format(-40, ToCelsius(-40)))
}
