package sequencecontract

import (
	"slices"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/singleton/port/contract"
	"go.llib.dev/singleton/port/option"
	"go.llib.dev/singleton/port/sequence"
)

// Subject is what a contract receives from its Make function.
type Subject[T any, P any] struct {
	Producer P
	// Values are the elements the Producer is expected to yield, in forward order.
	Values []T
}

type Config struct {
	// MaxRepeat is the upper bound of calls made against an exhausted producer.
	MaxRepeat int
}

func (c *Config) Init() {
	c.MaxRepeat = 42
}

func (c Config) Configure(t *Config) {
	if c.MaxRepeat != 0 {
		t.MaxRepeat = c.MaxRepeat
	}
}

type Option interface {
	option.Option[Config]
}

func MaxRepeat(n int) Option {
	return option.Func[Config](func(c *Config) { c.MaxRepeat = n })
}

func Producer[T any, P sequence.Producer[T]](mk contract.Make[Subject[T, P]], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.Use[Config](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, P] {
		return mk(t)
	})

	s.Then("values are produced in order", func(t *testcase.T) {
		sub := subject.Get(t)
		assertValues(t, sub.Values, drain[T](sub.Producer.Next, len(sub.Values)+1))
	})

	s.Then("exhaustion is reported with the zero value", func(t *testcase.T) {
		sub := subject.Get(t)
		drain[T](sub.Producer.Next, len(sub.Values)+1)

		var zero T
		v, ok := sub.Producer.Next()
		assert.False(t, ok)
		assert.Equal(t, zero, v)
	})

	s.Test("a value is produced only once", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(len(sub.Values)+1, len(sub.Values)+c.MaxRepeat)

		var produced int
		for range n {
			if _, ok := sub.Producer.Next(); ok {
				produced++
			}
		}
		assert.Equal(t, len(sub.Values), produced)
	})

	return s.AsSuite("sequence.Producer")
}

func BackProducer[T any, P sequence.BackProducer[T]](mk contract.Make[Subject[T, P]], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.Use[Config](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, P] {
		return mk(t)
	})

	s.Then("values are produced from the back in reverse order", func(t *testcase.T) {
		sub := subject.Get(t)
		exp := slices.Clone(sub.Values)
		slices.Reverse(exp)
		assertValues(t, exp, drain[T](sub.Producer.NextBack, len(sub.Values)+1))
	})

	s.Then("back production exhausts forward production", func(t *testcase.T) {
		sub := subject.Get(t)
		drain[T](sub.Producer.NextBack, len(sub.Values)+1)

		_, ok := sub.Producer.Next()
		assert.False(t, ok)
	})

	s.Test("a value is produced only once from the back", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(len(sub.Values)+1, len(sub.Values)+c.MaxRepeat)

		var produced int
		for range n {
			if _, ok := sub.Producer.NextBack(); ok {
				produced++
			}
		}
		assert.Equal(t, len(sub.Values), produced)
	})

	s.Then("the first value from the back matches the last value from the front", func(t *testcase.T) {
		front := subject.Get(t)
		back := mk(t)
		if len(front.Values) == 0 || len(back.Values) == 0 {
			t.Skip("the producer has no values to compare")
		}

		fvs := drain[T](front.Producer.Next, len(front.Values)+1)
		assertValues(t, front.Values, fvs)

		bv, ok := back.Producer.NextBack()
		assert.True(t, ok)
		assert.Equal(t, back.Values[len(back.Values)-1], bv)
	})

	return s.AsSuite("sequence.BackProducer")
}

func ExactSizer[T any, P sequence.ExactSizeProducer[T]](mk contract.Make[Subject[T, P]], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.Use[Config](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, P] {
		return mk(t)
	})

	s.Then("the initial length equals the number of values", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Values), sub.Producer.Len())
	})

	s.Then("every produced value decreases the length by one", func(t *testcase.T) {
		sub := subject.Get(t)
		for i := range sub.Values {
			_, ok := sub.Producer.Next()
			assert.True(t, ok)
			assert.Equal(t, len(sub.Values)-i-1, sub.Producer.Len())
		}
	})

	s.Then("an exhausted producer reports zero", func(t *testcase.T) {
		sub := subject.Get(t)
		drain[T](sub.Producer.Next, len(sub.Values)+1)
		t.Random.Repeat(1, c.MaxRepeat, func() {
			sub.Producer.Next()
			assert.Equal(t, 0, sub.Producer.Len())
		})
	})

	return s.AsSuite("sequence.ExactSizer")
}

func Fused[T any, P sequence.FusedProducer[T]](mk contract.Make[Subject[T, P]], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.Use[Config](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, P] {
		return mk(t)
	})

	s.Then("once exhausted, it stays exhausted", func(t *testcase.T) {
		sub := subject.Get(t)
		drain[T](sub.Producer.Next, len(sub.Values)+1)

		t.Random.Repeat(1, c.MaxRepeat, func() {
			_, ok := sub.Producer.Next()
			assert.False(t, ok)
		})
	})

	return s.AsSuite("sequence.Fused")
}

// Full runs every capability contract against the subject.
func Full[T any, P interface {
	sequence.BackProducer[T]
	sequence.ExactSizer
	sequence.Fused
}](mk contract.Make[Subject[T, P]], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	testcase.RunSuite(s,
		Producer[T, P](mk, opts...),
		BackProducer[T, P](mk, opts...),
		ExactSizer[T, P](mk, opts...),
		Fused[T, P](mk, opts...),
	)
	return s.AsSuite("sequence")
}

// drain calls next until it reports exhaustion, or until limit values were produced.
func drain[T any](next func() (T, bool), limit int) []T {
	var vs []T
	for range limit {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

func assertValues[T any](t *testcase.T, exp, got []T) {
	t.Helper()
	if len(exp) == 0 {
		assert.Empty(t, got)
		return
	}
	assert.Equal(t, exp, got)
}
