// Package tree implements a persistent binary search tree.
package tree

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree is an immutable binary search tree. The nil *Tree is the empty tree,
// and Insert returns a new tree sharing unchanged subtrees with the old one.
type Tree[T constraints.Ordered] struct {
	value       T
	left, right *Tree[T]
	size        int
}

func New[T constraints.Ordered]() *Tree[T] {
	return nil
}

func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Tree[T]) Contains(v T) bool {
	for t != nil {
		switch {
		case v < t.value:
			t = t.left
		case v > t.value:
			t = t.right
		default:
			return true
		}
	}
	return false
}

// Insert returns a tree that also holds v. Inserting a value already
// present returns t itself.
func (t *Tree[T]) Insert(v T) *Tree[T] {
	if t == nil {
		return &Tree[T]{value: v, size: 1}
	}
	switch {
	case v < t.value:
		return t.with(t.left.Insert(v), t.right)
	case v > t.value:
		return t.with(t.left, t.right.Insert(v))
	default:
		return t
	}
}

func (t *Tree[T]) with(left, right *Tree[T]) *Tree[T] {
	if left == t.left && right == t.right {
		return t
	}
	return &Tree[T]{value: t.value, left: left, right: right, size: 1 + left.Size() + right.Size()}
}

// All yields the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(yield)
	}
}

func (t *Tree[T]) walk(yield func(T) bool) bool {
	if t == nil {
		return true
	}
	return t.left.walk(yield) && yield(t.value) && t.right.walk(yield)
}

// String renders the tree with empty subtrees omitted: "()" for the empty
// tree, "(B)" for a leaf and "((A)B(C))" for a node with two children.
func (t *Tree[T]) String() string {
	if t == nil {
		return "()"
	}
	var sb strings.Builder
	t.format(&sb)
	return sb.String()
}

func (t *Tree[T]) format(sb *strings.Builder) {
	sb.WriteByte('(')
	if t.left != nil {
		t.left.format(sb)
	}
	fmt.Fprint(sb, t.value)
	if t.right != nil {
		t.right.format(sb)
	}
	sb.WriteByte(')')
}
