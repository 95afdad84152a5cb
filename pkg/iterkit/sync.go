package iterkit

import (
	"sync"

	"go.llib.dev/singleton/port/sequence"
)

// Sync makes a producer safe to share between goroutines.
// Every value is handed to exactly one caller.
func Sync[T any](p sequence.Producer[T]) sequence.FusedProducer[T] {
	return &syncProducer[T]{p: Fuse(p)}
}

type syncProducer[T any] struct {
	m sync.Mutex
	p sequence.FusedProducer[T]
}

func (s *syncProducer[T]) Next() (T, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.p.Next()
}

func (*syncProducer[T]) Fused() {}

func (s *syncProducer[T]) SizeHint() (int, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	return SizeHint[T](s.p)
}
