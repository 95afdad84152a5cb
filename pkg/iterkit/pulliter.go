package iterkit

import (
	"errors"
	"io"

	"go.llib.dev/singleton/port/sequence"
)

// PullIter is the Next/Value style iterator protocol,
// inspired by https://golang.org/pkg/encoding/json/#Decoder.
type PullIter[V any] interface {
	// Next prepares the next value for Value.
	// It returns false when there are no more values or an error occurred.
	Next() bool
	// Value returns the current value, repeatable without side effects.
	Value() V
	io.Closer
	// Err returns the cause when Next stopped because of a failure.
	Err() error
}

// ProducerPullIter exposes a sequence.Producer through the PullIter protocol.
// Closing it ends the iteration without consuming the remaining values of the producer.
func ProducerPullIter[T any](p sequence.Producer[T]) PullIter[T] {
	return &producerPullIter[T]{p: p}
}

type producerPullIter[T any] struct {
	p      sequence.Producer[T]
	val    T
	closed bool
}

func (i *producerPullIter[T]) Next() bool {
	var zero T
	if i.closed {
		return false
	}
	v, ok := i.p.Next()
	if !ok {
		i.val = zero
		return false
	}
	i.val = v
	return true
}

func (i *producerPullIter[T]) Value() T { return i.val }

func (i *producerPullIter[T]) Close() error {
	var zero T
	i.closed, i.val = true, zero
	return nil
}

func (*producerPullIter[T]) Err() error { return nil }

// FromPullIter turns a PullIter into a producer.
// The PullIter is closed when it runs out of values,
// and the returned function reports its Err and Close results.
func FromPullIter[T any](itr PullIter[T]) (sequence.FusedProducer[T], func() error) {
	p := &pullIterProducer[T]{itr: itr}
	return p, func() error { return p.err }
}

type pullIterProducer[T any] struct {
	itr  PullIter[T]
	done bool
	err  error
}

func (p *pullIterProducer[T]) Next() (T, bool) {
	var zero T
	if p.done {
		return zero, false
	}
	if p.itr.Next() {
		return p.itr.Value(), true
	}
	p.done = true
	p.err = errors.Join(p.itr.Err(), p.itr.Close())
	return zero, false
}

func (*pullIterProducer[T]) Fused() {}
