package Stacks

import "iter"

// Stack is a LIFO container. Pop and Peek report an empty stack through the
// second return value instead of an error; the first value is then the zero T.
type Stack[T any] interface {
	Push(item T) error
	Pop() (T, bool)
	Peek() (T, bool)
	Empty() bool
	Size() int
}

// BoundedStack is a Stack whose capacity is fixed when it's created.
type BoundedStack[T any] interface {
	Stack[T]
	Cap() int
	Full() bool
	//Contains reports whether an element equal to item is retained.
	Contains(item T) (bool, error)
	//All yields the elements from top to bottom. The stack must not be
	//modified while iterating.
	All() iter.Seq[T]
	Clear()
}

var (
	ErrInvalidArgument = &InvalidArgumentError{}
	ErrIllegalUsage    = &IllegalUsageError{}
)

type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	if e.msg == "" {
		return "invalid argument"
	}
	return "invalid argument: " + e.msg
}

// Is makes every InvalidArgumentError match ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// IllegalUsageError is the panic value used when a stack is modified during iteration.
type IllegalUsageError struct {
	msg string
}

func (e *IllegalUsageError) Error() string {
	if e.msg == "" {
		return "illegal usage"
	}
	return "illegal usage: " + e.msg
}

func (e *IllegalUsageError) Is(target error) bool {
	_, ok := target.(*IllegalUsageError)
	return ok
}
