// Package fibonacci computes Fibonacci numbers by plain recursion.
//
// Fib makes no attempt to be fast: the call tree grows exponentially with n,
// so indices much above 40 take impractically long. Results are arbitrary
// precision and never overflow.
package fibonacci

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when the input text is not a non-negative integer
var ErrInvalidNumber = errors.New("invalid number")

// ParseIndex parses one line of user input as a sequence index
func ParseIndex(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// Fib returns the nth Fibonacci number, with Fib(0) = 0 and Fib(1) = 1.
func Fib(n uint64) *big.Int {
	switch n {
	case 0:
		return big.NewInt(0)
	case 1:
		return big.NewInt(1)
	}
	return new(big.Int).Add(Fib(n-1), Fib(n-2))
}

// Format renders a result as "{N} fibonacci number is {value}"
func Format(n uint64, value *big.Int) string {
	return fmt.Sprintf("%d fibonacci number is %d", n, value)
}
