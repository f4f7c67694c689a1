// Package GodsStack wraps an EvictStack so it satisfies the untyped stack
// interfaces of github.com/emirpasic/gods.
package GodsStack

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/stacks"
	"github.com/g-m-twostay/lightlibs/Stacks"
)

// Stack is a gods stacks.Stack backed by an EvictStack. gods' Push has no error return, so
// pushing a value that isn't a T, or is nil, panics with the error EvictStack would return.
type Stack[T any] struct {
	es *Stacks.EvictStack[T]
}

func New[T comparable](capacity int) (*Stack[T], error) {
	es, err := Stacks.New[T](capacity)
	if err != nil {
		return nil, err
	}
	return From(es), nil
}

// From wraps es. The returned Stack shares its elements with es.
func From[T any](es *Stacks.EvictStack[T]) *Stack[T] {
	return &Stack[T]{es: es}
}

// Unwrap returns the underlying EvictStack.
func (s *Stack[T]) Unwrap() *Stacks.EvictStack[T] {
	return s.es
}

func (s *Stack[T]) Push(value interface{}) {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Errorf("%w: %T is not a %T", Stacks.ErrInvalidArgument, value, *new(T)))
	}
	if err := s.es.Push(v); err != nil {
		panic(err)
	}
}

func (s *Stack[T]) Pop() (value interface{}, ok bool) {
	if v, ok := s.es.Pop(); ok {
		return v, true
	}
	return nil, false
}

func (s *Stack[T]) Peek() (value interface{}, ok bool) {
	if v, ok := s.es.Peek(); ok {
		return v, true
	}
	return nil, false
}

func (s *Stack[T]) Empty() bool {
	return s.es.Empty()
}

func (s *Stack[T]) Size() int {
	return s.es.Size()
}

func (s *Stack[T]) Clear() {
	s.es.Clear()
}

// Values returns the elements from top to bottom, like gods' arraystack.
func (s *Stack[T]) Values() []interface{} {
	vs := make([]interface{}, 0, s.es.Size())
	for v := range s.es.All() {
		vs = append(vs, v)
	}
	return vs
}

func (s *Stack[T]) String() string {
	str := "EvictStack\n"
	vs := make([]string, 0, s.es.Size())
	for v := range s.es.All() {
		vs = append(vs, fmt.Sprintf("%v", v))
	}
	return str + strings.Join(vs, ", ")
}

// Iterator returns a stateful iterator walking the stack from top to bottom.
func (s *Stack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{es: s.es, index: -1}
}

// Iterator follows gods' iterator protocol: call Next before reading Value or Index.
type Iterator[T any] struct {
	es    *Stacks.EvictStack[T]
	index int
}

// Next moves to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.index < it.es.Size() {
		it.index++
	}
	return it.index < it.es.Size()
}

func (it *Iterator[T]) Value() interface{} {
	v, _ := it.es.At(it.index)
	return v
}

func (it *Iterator[T]) Index() int {
	return it.index
}

// Begin resets the iterator to one before the top.
func (it *Iterator[T]) Begin() {
	it.index = -1
}

// First moves to the top and reports whether the stack has one.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo moves to the next element satisfying f and reports whether there is one.
func (it *Iterator[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.Index(), it.Value()) {
			return true
		}
	}
	return false
}

var (
	_ stacks.Stack                 = (*Stack[int])(nil)
	_ containers.IteratorWithIndex = (*Iterator[int])(nil)
)
