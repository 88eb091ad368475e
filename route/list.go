package route

import "iter"

// node is a single element of a List.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a doubly ended singly linked sequence. It supports constant-time
// insertion at the front and at the back, indexed reads, and forward
// iteration. The zero value is ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList creates an empty List.
// Complexity: O(1)
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append adds v at the end of the list.
// Complexity: O(1)
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds v at the beginning of the list.
// Complexity: O(1)
func (l *List[T]) Prepend(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head = n
	}
	l.size++
}

// At returns the element at position i (0-based). The boolean is false
// when i is out of range.
// Complexity: O(i)
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, false
	}

	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur.value, true
}

// Len returns the number of elements in the list.
// Complexity: O(1)
func (l *List[T]) Len() int {
	return l.size
}

// All iterates the list front to back.
// Complexity: O(n) for a full iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Slice copies the list into a fresh slice, front to back.
// Complexity: O(n)
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}
