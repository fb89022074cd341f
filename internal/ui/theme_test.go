package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeIsPlainForNonTerminal(t *testing.T) {
	theme := NewTheme(&bytes.Buffer{})

	assert.Equal(t, "Enter Farenheit value:", theme.Prompt.Render("Enter Farenheit value:"))
	assert.Equal(t, "Invalid value", theme.Invalid.Render("Invalid value"))
}
