package iterkit

import (
	"slices"

	"go.llib.dev/singleton/port/sequence"
)

// Chain concatenates the producers, one after the other.
// A producer is left behind at its first end-of-sequence, so the chain itself is fused.
func Chain[T any](ps ...sequence.Producer[T]) sequence.FusedProducer[T] {
	return &chain[T]{ps: slices.Clone(ps)}
}

type chain[T any] struct {
	ps []sequence.Producer[T]
}

func (c *chain[T]) Next() (T, bool) {
	for 0 < len(c.ps) {
		if p := c.ps[0]; p != nil {
			if v, ok := p.Next(); ok {
				return v, true
			}
		}
		c.ps[0] = nil
		c.ps = c.ps[1:]
	}
	var zero T
	return zero, false
}

func (*chain[T]) Fused() {}

// SizeHint is known when every remaining producer knows its size.
func (c *chain[T]) SizeHint() (int, bool) {
	var total int
	for _, p := range c.ps {
		if p == nil {
			continue
		}
		n, ok := SizeHint(p)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Map transforms the produced values.
// The size of the source producer is kept.
func Map[To, From any](p sequence.Producer[From], transform func(From) To) sequence.Producer[To] {
	return &mapper[To, From]{p: p, transform: transform}
}

type mapper[To, From any] struct {
	p         sequence.Producer[From]
	transform func(From) To
}

func (m *mapper[To, From]) Next() (To, bool) {
	v, ok := m.p.Next()
	if !ok {
		var zero To
		return zero, false
	}
	return m.transform(v), true
}

func (m *mapper[To, From]) SizeHint() (int, bool) { return SizeHint(m.p) }
