// Package iterkit holds generic algorithms over pull based sequence producers.
//
// It is the glue that lets a producer, such as a singleton.Seq,
// take part in chaining, mapping, collecting and range loops.
// Where a producer exposes optional capabilities,
// the algorithms use them instead of draining the producer blindly.
package iterkit

import (
	"iter"

	"go.llib.dev/singleton/port/sequence"
)

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// Sequences backed by a producer are single use,
// since every produced value is moved out of the producer.
type SingleUseSeq[T any] = iter.Seq[T]

// FromProducer turns a sequence.Producer into a range-able iterator.
func FromProducer[T any](p sequence.Producer[T]) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		if p == nil {
			return
		}
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromBackProducer iterates the producer from its end.
func FromBackProducer[T any](p sequence.BackProducer[T]) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		if p == nil {
			return
		}
		for {
			v, ok := p.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ToProducer exposes an iterator as a sequence.Producer.
// The stop function must be called when the producer is no longer used,
// unless it was drained until exhaustion.
func ToProducer[T any](i iter.Seq[T]) (sequence.FusedProducer[T], func()) {
	next, stop := iter.Pull(i)
	return &pullProducer[T]{next: next}, stop
}

// pullProducer wraps the next function of iter.Pull,
// which keeps returning false after the first false.
type pullProducer[T any] struct {
	next func() (T, bool)
}

func (p *pullProducer[T]) Next() (T, bool) { return p.next() }

func (*pullProducer[T]) Fused() {}

type sizeHinter interface {
	SizeHint() (int, bool)
}

// SizeHint returns the exact number of remaining elements,
// when the producer can tell it.
func SizeHint[T any](p sequence.Producer[T]) (int, bool) {
	switch p := p.(type) {
	case sequence.ExactSizer:
		return p.Len(), true
	case sizeHinter:
		return p.SizeHint()
	default:
		return 0, false
	}
}

// IsFused reports whether the producer guarantees to stay exhausted.
func IsFused[T any](p sequence.Producer[T]) bool {
	_, ok := p.(sequence.Fused)
	return ok
}

// Fuse makes a producer stay exhausted after its first end-of-sequence.
// Fused producers are returned as is.
func Fuse[T any](p sequence.Producer[T]) sequence.FusedProducer[T] {
	if fp, ok := p.(sequence.FusedProducer[T]); ok {
		return fp
	}
	return &fuse[T]{p: p}
}

type fuse[T any] struct {
	p    sequence.Producer[T]
	done bool
}

func (f *fuse[T]) Next() (T, bool) {
	var zero T
	if f.done {
		return zero, false
	}
	v, ok := f.p.Next()
	if !ok {
		f.done = true
		return zero, false
	}
	return v, true
}

func (*fuse[T]) Fused() {}

func (f *fuse[T]) SizeHint() (int, bool) {
	if f.done {
		return 0, true
	}
	return SizeHint(f.p)
}

// Collect drains the producer into a slice.
// The slice is preallocated when the size of the producer is known.
func Collect[T any](p sequence.Producer[T]) []T {
	if p == nil {
		return nil
	}
	n, _ := SizeHint(p)
	vs := make([]T, 0, n)
	for {
		v, ok := p.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

// Count consumes the producer and returns how many values it had.
// Producers with a known size are only advanced, their values are not inspected.
func Count[T any](p sequence.Producer[T]) int {
	if p == nil {
		return 0
	}
	if n, ok := SizeHint(p); ok {
		for range n {
			p.Next()
		}
		return n
	}
	var total int
	for {
		if _, ok := p.Next(); !ok {
			return total
		}
		total++
	}
}

// Last consumes the producer and returns its last value.
// A BackProducer is asked for its last value directly.
func Last[T any](p sequence.Producer[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	if p == nil {
		return last, false
	}
	if bp, isBack := p.(sequence.BackProducer[T]); isBack {
		last, ok = bp.NextBack()
		for more := ok; more; {
			_, more = p.Next()
		}
		return last, ok
	}
	for {
		v, more := p.Next()
		if !more {
			return last, ok
		}
		last, ok = v, true
	}
}

// Reverse iterates the producer from its end.
//
// # WARNING
//
// Producers without NextBack are collected before the first value is yielded,
// so it does not work with infinite producers.
func Reverse[T any](p sequence.Producer[T]) SingleUseSeq[T] {
	if bp, ok := p.(sequence.BackProducer[T]); ok {
		return FromBackProducer(bp)
	}
	return func(yield func(T) bool) {
		vs := Collect(p)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}
