// Package sequence defines the capabilities a pull-based sequence producer can expose.
//
// A producer only has to implement Producer.
// The other interfaces are optional capabilities that generic algorithms can look for.
package sequence

// Producer is an object from which a caller repeatedly requests the next value.
type Producer[T any] interface {
	// Next returns the next value and true,
	// or the zero value and false when the sequence is exhausted.
	Next() (T, bool)
}

// BackProducer can produce elements from the end of the sequence as well.
type BackProducer[T any] interface {
	Producer[T]
	// NextBack returns the last not yet produced value.
	NextBack() (T, bool)
}

// ExactSizer reports the exact number of remaining elements.
// It is a strict count, not an estimate.
type ExactSizer interface {
	Len() int
}

// Fused is a marker for producers that,
// once they reported the end of the sequence,
// report it on every subsequent Next call.
type Fused interface {
	Fused()
}

// ExactSizeProducer is a Producer that knows how many values it has left.
type ExactSizeProducer[T any] interface {
	Producer[T]
	ExactSizer
}

// FusedProducer is a Producer that stays exhausted once it reported the end of the sequence.
type FusedProducer[T any] interface {
	Producer[T]
	Fused
}
