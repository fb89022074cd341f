package prompt

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atoi(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line))
}

func TestAskAcceptsFirstValidLine(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("42\n"), &out, nil)

	got, err := Ask(context.Background(), p, "Number?", "Bad", atoi)
	require.NoError(t, err)

	assert.Equal(t, 42, got)
	assert.Equal(t, "Number?\n", out.String())
}

func TestAskRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n\n1.5\n7\n"), &out, nil)

	got, err := Ask(context.Background(), p, "Number?", "Bad", atoi)
	require.NoError(t, err)

	assert.Equal(t, 7, got)
	assert.Equal(t, strings.Repeat("Number?\nBad\n", 3)+"Number?\n", out.String())
}

func TestAskParsesFinalLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("x\n9"), &bytes.Buffer{}, nil)

	got, err := Ask(context.Background(), p, "Number?", "Bad", atoi)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestAskInputClosed(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("nope\n"), &out, nil)

	_, err := Ask(context.Background(), p, "Number?", "Bad", atoi)
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "Number?\nBad\nNumber?\n", out.String())
}

func TestAskReadError(t *testing.T) {
	p := New(iotest.ErrReader(errors.New("device gone")), &bytes.Buffer{}, nil)

	_, err := Ask(context.Background(), p, "Number?", "Bad", atoi)
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "device gone")
}

func TestAskHonorsCancelledContext(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("1\n"), &out, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Ask(ctx, p, "Number?", "Bad", atoi)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
