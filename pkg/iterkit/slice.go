package iterkit

import "go.llib.dev/singleton/port/sequence"

var _ interface {
	sequence.BackProducer[any]
	sequence.ExactSizer
	sequence.Fused
} = (*SliceProducer[any])(nil)

// FromSlice creates a producer that yields the values of vs from either end.
// The slice is not modified.
func FromSlice[T any](vs []T) *SliceProducer[T] {
	return &SliceProducer[T]{vs: vs}
}

type SliceProducer[T any] struct {
	vs []T
}

func (p *SliceProducer[T]) Next() (T, bool) {
	if len(p.vs) == 0 {
		var zero T
		return zero, false
	}
	v := p.vs[0]
	p.vs = p.vs[1:]
	return v, true
}

func (p *SliceProducer[T]) NextBack() (T, bool) {
	if len(p.vs) == 0 {
		var zero T
		return zero, false
	}
	v := p.vs[len(p.vs)-1]
	p.vs = p.vs[:len(p.vs)-1]
	return v, true
}

func (p *SliceProducer[T]) Len() int { return len(p.vs) }

func (*SliceProducer[T]) Fused() {}
