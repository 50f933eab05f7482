// Package change makes greedy coin change in US denominations.
package change

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Denominations are tried largest first.
var Denominations = [...]int{25, 10, 5, 1}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNegativeAmount  = fmt.Errorf("%w: amount cannot be negative", ErrInvalidArgument)
	ErrNotInteger      = fmt.Errorf("%w: amount must be an integer", ErrInvalidArgument)
)

// Counts maps each denomination to the number of coins used.
type Counts map[int]int

// Make covers amount exactly using as few coins as possible.
func Make[T constraints.Integer](amount T) (Counts, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	counts := make(Counts, len(Denominations))
	remaining := uint64(amount)
	for _, d := range Denominations {
		counts[d] = int(remaining / uint64(d))
		remaining %= uint64(d)
	}
	return counts, nil
}

// MakeFrom accepts a dynamically typed amount. Only integer kinds are
// accepted; 3.5 and 3.0 are both rejected.
func MakeFrom(v any) (Counts, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Make(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Make(rv.Uint())
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotInteger, v)
	}
}

// Parse reads a base 10 amount.
func Parse(s string) (Counts, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w, got %q", ErrNotInteger, s)
	}
	return Make(n)
}

// String renders counts largest denomination first, e.g. "25:1 10:2 5:0 1:3".
func (c Counts) String() string {
	parts := make([]string, 0, len(Denominations))
	for _, d := range Denominations {
		parts = append(parts, fmt.Sprintf("%d:%d", d, c[d]))
	}
	return strings.Join(parts, " ")
}
