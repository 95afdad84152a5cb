package iterkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/singleton/pkg/iterkit"
	"go.llib.dev/singleton/port/sequence/sequencecontract"
)

func TestSliceProducer(t *testing.T) {
	sequencecontract.Full(func(tb testing.TB) sequencecontract.Subject[string, *iterkit.SliceProducer[string]] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(0, 7), t.Random.String)
		return sequencecontract.Subject[string, *iterkit.SliceProducer[string]]{
			Producer: iterkit.FromSlice(vs),
			Values:   vs,
		}
	}).Test(t)
}

func TestFromSlice_doesNotModifyTheSlice(t *testing.T) {
	vs := []int{1, 2, 3}
	p := iterkit.FromSlice(vs)
	p.Next()
	p.NextBack()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []int{1, 2, 3}, vs)
}
