package iterkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/singleton"
	"go.llib.dev/singleton/pkg/iterkit"
)

func TestProducerPullIter_singletonYieldsOnce(t *testing.T) {
	i := iterkit.ProducerPullIter[string](singleton.New("x"))
	defer i.Close()

	require.True(t, i.Next())
	require.Equal(t, "x", i.Value())
	require.Equal(t, "x", i.Value(), "value access should be repeatable")

	for n := 0; n < 42; n++ {
		require.False(t, i.Next())
	}
	require.Equal(t, "", i.Value())
	require.NoError(t, i.Err())
}

func TestProducerPullIter_closeStopsTheIteration(t *testing.T) {
	seq := singleton.New(42)
	i := iterkit.ProducerPullIter[int](seq)

	require.NoError(t, i.Close())
	require.False(t, i.Next())
	require.NoError(t, i.Close())
	require.Equal(t, 1, seq.Len(), "closing should not consume the producer")
}

func TestFromPullIter(t *testing.T) {
	p, errFunc := iterkit.FromPullIter(iterkit.ProducerPullIter[int](singleton.New(7)))

	require.Equal(t, []int{7}, iterkit.Collect[int](p))
	require.NoError(t, errFunc())

	_, ok := p.Next()
	require.False(t, ok)
}

type failingPullIter struct {
	err      error
	closed   int
	closeErr error
}

func (i *failingPullIter) Next() bool   { return false }
func (i *failingPullIter) Value() int   { return 0 }
func (i *failingPullIter) Err() error   { return i.err }
func (i *failingPullIter) Close() error { i.closed++; return i.closeErr }

func TestFromPullIter_errorsAreReported(t *testing.T) {
	itr := &failingPullIter{err: errors.New("boom"), closeErr: errors.New("close")}
	p, errFunc := iterkit.FromPullIter[int](itr)

	require.Empty(t, iterkit.Collect[int](p))
	require.ErrorIs(t, errFunc(), itr.err)
	require.ErrorIs(t, errFunc(), itr.closeErr)

	_, ok := p.Next()
	require.False(t, ok)
	require.Equal(t, 1, itr.closed)
}
