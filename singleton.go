// Package singleton provides a sequence that yields exactly one value and then stays exhausted.
//
// It lets a single value take part wherever a sequence is expected,
// such as chaining, mapping or folding, without allocating a container for it.
//
//	s := singleton.New(42)
//	v, ok := s.Next() // 42, true
//	_, ok = s.Next()  // false
//	s.Len()           // 0
package singleton

import (
	"fmt"
	"iter"
	"reflect"

	"go.llib.dev/singleton/port/sequence"
)

var (
	_ sequence.Producer[any]          = (*Seq[any])(nil)
	_ sequence.BackProducer[any]      = (*Seq[any])(nil)
	_ sequence.ExactSizeProducer[any] = (*Seq[any])(nil)
	_ sequence.FusedProducer[any]     = (*Seq[any])(nil)
)

// Seq is a sequence of exactly one element.
//
// Seq is not safe for concurrent use.
type Seq[T any] struct {
	value   T
	pending bool
}

// New creates a sequence that produces v once.
func New[T any](v T) *Seq[T] {
	return &Seq[T]{value: v, pending: true}
}

// Of promotes a value into a singleton sequence.
func Of[T any](v T) *Seq[T] { return New(v) }

// Next moves out the pending value.
// Once it returned false, it will keep returning false.
func (s *Seq[T]) Next() (T, bool) {
	var zero T
	if s == nil || !s.pending {
		return zero, false
	}
	v := s.value
	s.value, s.pending = zero, false
	return v, true
}

// NextBack produces the element from the end of the sequence,
// which for a single element is the same as Next.
func (s *Seq[T]) NextBack() (T, bool) { return s.Next() }

// Len reports the exact number of remaining elements.
func (s *Seq[T]) Len() int {
	if s == nil || !s.pending {
		return 0
	}
	return 1
}

// Done reports whether the sequence is exhausted.
func (s *Seq[T]) Done() bool { return s.Len() == 0 }

// Fused marks that Seq stays exhausted after the first end-of-sequence.
func (*Seq[T]) Fused() {}

// All returns a single-use iterator that consumes the sequence.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := s.Next(); ok {
			yield(v)
		}
	}
}

// Backward returns a single-use iterator that consumes the sequence from its end.
func (s *Seq[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := s.NextBack(); ok {
			yield(v)
		}
	}
}

func (s *Seq[T]) String() string {
	name := "singleton.Seq[" + reflect.TypeFor[T]().String() + "]"
	if s.Done() {
		return name + "{}"
	}
	return fmt.Sprintf("%s{%v}", name, s.value)
}

// Fold consumes the sequence and accumulates its element into init.
func Fold[R, T any](s *Seq[T], init R, fn func(R, T) R) R {
	acc := init
	for v := range s.All() {
		acc = fn(acc, v)
	}
	return acc
}

// RFold folds the sequence from its back.
// With at most one element, the order is immaterial, so it is a Fold.
func RFold[R, T any](s *Seq[T], init R, fn func(R, T) R) R {
	return Fold(s, init, fn)
}
