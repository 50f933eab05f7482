// Package sequence produces lazy numeric sequences.
package sequence

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Powers yields base^0, base^1, ... up to and including limit, stopping at
// the first power greater than limit. Each range over the result starts
// again from 1.
//
// The sequence always ends: it stops before a power would overflow T, and
// bases of 0, 1 and -1 yield each of their distinct powers once.
func Powers[T constraints.Integer](base, limit T) iter.Seq[T] {
	return func(yield func(T) bool) {
		power := T(1)
		for power <= limit {
			if !yield(power) {
				return
			}
			next, ok := nextPower(power, base)
			if !ok {
				return
			}
			power = next
		}
	}
}

// nextPower returns power*base, or false when the product overflows or the
// sequence would repeat a value.
func nextPower[T constraints.Integer](power, base T) (T, bool) {
	switch base {
	case 0:
		return 0, power != 0
	case 1:
		return 0, false
	}
	if base < 0 && base == ^T(0) { // -1
		return -power, power == 1
	}
	next := power * base
	if next/base != power {
		return 0, false
	}
	return next, true
}
