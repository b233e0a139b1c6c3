package stack

import (
	"errors"
)

var ErrEmptyStack = errors.New("empty stack")

// Stack is a LIFO of values. The zero value is an empty stack.
type Stack[T any] struct {
	s []T
}

func New[T any](initialSize int) *Stack[T] {
	return &Stack[T]{make([]T, 0, initialSize)}
}

func (s *Stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

func (s *Stack[T]) Pop() (T, error) {
	l := len(s.s)
	if l == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	value := s.s[l-1]
	// release the popped value
	var zero T
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value, nil
}

func (s *Stack[T]) Top() (T, error) {
	l := len(s.s)
	if l == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.s[l-1], nil
}

func (s *Stack[T]) Size() int {
	return len(s.s)
}

func (s *Stack[T]) Empty() bool {
	return len(s.s) == 0
}
