package Stacks

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// EvictStack is a stack of fixed capacity that drops its oldest element when it's pushed full.
// It's backed by a slice used as a circular buffer: head is where the next element is written,
// sz is the number of live elements, so the live window is the sz slots ending right before head.
// Keeping sz separately from head is what tells an empty stack apart from a full one.
// EvictStack isn't safe for concurrent use, callers must serialize access themselves.
type EvictStack[T any] struct {
	vs       []T
	head, sz int
	eq       func(T, T) bool
	nilable  bool
	mod      uint
}

// State of an EvictStack, derived from its size and capacity.
type State byte

const (
	StateEmpty State = iota
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePartial:
		return "Partial"
	case StateFull:
		return "Full"
	}
	return fmt.Sprintf("State(%d)", byte(s))
}

// New creates an EvictStack that compares elements with ==.
func New[T comparable](capacity int) (*EvictStack[T], error) {
	return NewFunc[T](capacity, func(a, b T) bool {
		return a == b
	})
}

// NewFunc creates an EvictStack holding at most capacity elements. eq is the equality used by Contains.
func NewFunc[T any](capacity int, eq func(a, b T) bool) (*EvictStack[T], error) {
	if capacity < 1 {
		return nil, &InvalidArgumentError{fmt.Sprintf("capacity must be at least 1, got %d", capacity)}
	}
	if eq == nil {
		return nil, &InvalidArgumentError{"nil equality function"}
	}
	return &EvictStack[T]{vs: make([]T, capacity), eq: eq, nilable: nilableKind(reflect.TypeFor[T]().Kind())}, nil
}

func nilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v holds no value. An interface holding a typed nil counts as nil too.
func (es *EvictStack[T]) isNil(v T) bool {
	if !es.nilable {
		return false
	}
	a := any(v)
	if a == nil {
		return true
	}
	if r := reflect.ValueOf(a); nilableKind(r.Kind()) {
		return r.IsNil()
	}
	return false
}

// prev returns the index before i, wrapping to the end.
func (es *EvictStack[T]) prev(i int) int {
	if i == 0 {
		return len(es.vs) - 1
	}
	return i - 1
}

// wrap is i mod len(vs) that never goes negative.
func (es *EvictStack[T]) wrap(i int) int {
	i %= len(es.vs)
	if i < 0 {
		i += len(es.vs)
	}
	return i
}

// Push v as the new top. If the stack is full, the oldest element is overwritten.
// Pushing a nil pointer, map, slice, chan, func or interface fails and leaves the stack unchanged.
func (es *EvictStack[T]) Push(v T) error {
	if es.isNil(v) {
		return &InvalidArgumentError{"cannot push a nil value"}
	}
	//when full, head is also the slot of the oldest element.
	es.vs[es.head] = v
	if es.head++; es.head == len(es.vs) {
		es.head = 0
	}
	if es.sz < len(es.vs) {
		es.sz++
	}
	es.mod++
	return nil
}

// Pop removes and returns the top. ok is false when the stack is empty.
func (es *EvictStack[T]) Pop() (v T, ok bool) {
	if es.sz == 0 {
		return
	}
	es.head = es.prev(es.head)
	v, es.vs[es.head] = es.vs[es.head], *new(T)
	es.sz--
	es.mod++
	return v, true
}

// Peek returns the top without removing it. ok is false when the stack is empty.
func (es *EvictStack[T]) Peek() (v T, ok bool) {
	if es.sz == 0 {
		return
	}
	return es.vs[es.prev(es.head)], true
}

// Bottom returns the oldest retained element, the one the next Push evicts when full.
func (es *EvictStack[T]) Bottom() (v T, ok bool) {
	if es.sz == 0 {
		return
	}
	return es.vs[es.wrap(es.head-es.sz)], true
}

// At returns the i-th element counting from the top, At(0) being the top.
func (es *EvictStack[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= es.sz {
		return
	}
	return es.vs[es.wrap(es.head-1-i)], true
}

// Contains reports whether an element equal to v is retained, searching from the top.
// Time: O(Size())
func (es *EvictStack[T]) Contains(v T) (bool, error) {
	if es.isNil(v) {
		return false, &InvalidArgumentError{"cannot search for a nil value"}
	}
	for i, left := es.head, es.sz; left > 0; left-- {
		i = es.prev(i)
		if es.eq(es.vs[i], v) {
			return true, nil
		}
	}
	return false, nil
}

func (es *EvictStack[T]) Size() int {
	return es.sz
}

func (es *EvictStack[T]) Cap() int {
	return len(es.vs)
}

func (es *EvictStack[T]) Empty() bool {
	return es.sz == 0
}

func (es *EvictStack[T]) Full() bool {
	return es.sz == len(es.vs)
}

func (es *EvictStack[T]) State() State {
	switch es.sz {
	case 0:
		return StateEmpty
	case len(es.vs):
		return StateFull
	}
	return StatePartial
}

// Clear removes all elements. The capacity is kept.
func (es *EvictStack[T]) Clear() {
	clear(es.vs)
	es.head, es.sz = 0, 0
	es.mod++
}

func (es *EvictStack[T]) modified() {
	panic(&IllegalUsageError{"stack modified during iteration"})
}

// All yields the elements from top to bottom. Each call to the returned sequence starts over
// from the current top. Pushing or popping while iterating panics with an IllegalUsageError.
func (es *EvictStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		i, mod := es.head, es.mod
		for left := es.sz; left > 0; left-- {
			if es.mod != mod {
				es.modified()
			}
			i = es.prev(i)
			if !yield(es.vs[i]) {
				return
			}
		}
	}
}

// Range calls f on the elements from top to bottom until f returns false.
func (es *EvictStack[T]) Range(f func(T) bool) {
	es.All()(f)
}

// TopDown returns a closure f acting like an iterator: v, ok := f() gives the elements
// from top to bottom. Once ok is false, f is exhausted and stays so. Modifying the stack
// before f is exhausted makes the next call panic.
func (es *EvictStack[T]) TopDown() func() (T, bool) {
	i, left, mod := es.head, es.sz, es.mod
	return func() (v T, ok bool) {
		if left == 0 {
			return
		}
		if es.mod != mod {
			es.modified()
		}
		i = es.prev(i)
		left--
		return es.vs[i], true
	}
}

// Values returns a new slice with the elements from top to bottom.
func (es *EvictStack[T]) Values() []T {
	vs := make([]T, 0, es.sz)
	for v := range es.All() {
		vs = append(vs, v)
	}
	return vs
}

func (es *EvictStack[T]) String() string {
	var b strings.Builder
	b.WriteString("EvictStack[")
	for i, v := range es.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

var _ BoundedStack[int] = (*EvictStack[int])(nil)
