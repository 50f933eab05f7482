// Package stack implements a bounded LIFO stack whose storage grows and
// shrinks with its contents.
package stack

import "errors"

const (
	InitialCapacity = 16
	MaxCapacity     = 32768
)

var (
	ErrFull  = errors.New("stack has reached maximum capacity")
	ErrEmpty = errors.New("cannot pop from empty stack")
)

// Stack holds elements in slots [0, top). The zero value is not ready for
// use; call New.
type Stack[T any] struct {
	elements []T
	top      int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{elements: make([]T, InitialCapacity)}
}

func (s *Stack[T]) Size() int     { return s.top }
func (s *Stack[T]) Capacity() int { return len(s.elements) }
func (s *Stack[T]) IsEmpty() bool { return s.top == 0 }
func (s *Stack[T]) IsFull() bool  { return s.top == MaxCapacity }

func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrFull
	}
	if s.top == len(s.elements) {
		s.reallocate(min(len(s.elements)*2, MaxCapacity))
	}
	s.elements[s.top] = v
	s.top++
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	s.top--
	v := s.elements[s.top]
	s.elements[s.top] = zero
	if s.top <= len(s.elements)/4 {
		s.reallocate(max(len(s.elements)/2, InitialCapacity))
	}
	return v, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.elements[s.top-1], nil
}

func (s *Stack[T]) reallocate(capacity int) {
	if capacity == len(s.elements) {
		return
	}
	elements := make([]T, capacity)
	copy(elements, s.elements[:s.top])
	s.elements = elements
}
