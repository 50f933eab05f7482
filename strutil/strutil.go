// Package strutil finds the first string matching a predicate.
package strutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FirstThenLowerCase returns the lower-cased first item satisfying pred.
// The boolean is false when nothing matches or pred is nil.
func FirstThenLowerCase(items []string, pred func(string) bool) (string, bool) {
	return FirstThenLowerCaseIn(language.Und, items, pred)
}

// FirstThenLowerCaseIn is FirstThenLowerCase with the casing rules of tag.
func FirstThenLowerCaseIn(tag language.Tag, items []string, pred func(string) bool) (string, bool) {
	lower := cases.Lower(tag)
	return FirstThenApply(items, pred, lower.String)
}

func FirstThenApply[T, U any](items []T, pred func(T) bool, f func(T) U) (U, bool) {
	var zero U
	if pred == nil {
		return zero, false
	}
	for _, item := range items {
		if pred(item) {
			return f(item), true
		}
	}
	return zero, false
}
