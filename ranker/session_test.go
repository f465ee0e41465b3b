package ranker

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/askrank/core"
)

// rankOracle 按字母序回答：字母越靠后越优。
type rankOracle struct {
	calls int
}

func (o *rankOracle) AskPreferred(_ context.Context, candidate, reference any) (bool, error) {
	o.calls++
	return candidate.(string) > reference.(string), nil
}

func (o *rankOracle) AskEquivalent(_ context.Context, candidate, reference any) (bool, error) {
	o.calls++
	return candidate.(string) == reference.(string), nil
}

// indifferentOracle 从不表达偏好。
type indifferentOracle struct{}

func (indifferentOracle) AskPreferred(context.Context, any, any) (bool, error)  { return false, nil }
func (indifferentOracle) AskEquivalent(context.Context, any, any) (bool, error) { return true, nil }

type brokenOracle struct{ err error }

func (o brokenOracle) AskPreferred(context.Context, any, any) (bool, error)  { return false, o.err }
func (o brokenOracle) AskEquivalent(context.Context, any, any) (bool, error) { return false, o.err }

func TestSession_MinimalCompare(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E"}
	o := &rankOracle{}
	s, err := New(items, o)
	require.NoError(t, err)

	got, err := s.MinimalCompare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "D", "C", "B", "A"}, got)
	assert.Equal(t, []string{"E", "D", "C", "B", "A"}, items, "result is written back to the caller's slice")
	assert.Equal(t, 5, s.Len())
	assert.NotEmpty(t, s.ID())

	st := s.Stats()
	assert.Equal(t, o.calls, st.Queries)
	assert.LessOrEqual(t, st.Queries, 5*4/2)
	assert.NoError(t, s.cmp.Cache().Verify())
}

func TestSession_MinimalCompareOddAndEven(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"empty", []string{}, []string{}},
		{"single", []string{"x"}, []string{"x"}},
		{"pair", []string{"a", "b"}, []string{"b", "a"}},
		{"straggler", []string{"c", "a", "g", "e", "b", "f", "d"}, []string{"g", "f", "e", "d", "c", "b", "a"}},
		{"even", []string{"h", "c", "a", "g", "e", "b", "f", "d"}, []string{"h", "g", "f", "e", "d", "c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.items, &rankOracle{})
			require.NoError(t, err)
			got, err := s.MinimalCompare(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Randomize(t *testing.T) {
	items := []string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"}
	s, err := New(items, &rankOracle{},
		WithRandomize(true),
		WithRand(rand.New(rand.NewPCG(7, 11))),
	)
	require.NoError(t, err)

	got, err := s.MinimalCompare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "w", "u", "t", "r", "q", "p", "o", "i", "e"}, got)
}

func TestSession_NeighborCompare(t *testing.T) {
	items := []string{"A", "C", "B", "D"}
	o := &rankOracle{}
	s, err := New(items, o)
	require.NoError(t, err)

	got, err := s.NeighborCompare(context.Background())
	require.NoError(t, err)
	// 单遍：D 只上移一格，A 一路被带到末尾
	assert.Equal(t, []string{"C", "B", "D", "A"}, got)
	assert.Equal(t, 3, s.Stats().Comparisons)
	assert.Equal(t, 3, o.calls)
}

func TestSession_NeighborAfterMinimalAsksNothing(t *testing.T) {
	items := []string{"d", "a", "f", "b", "e", "c"}
	o := &rankOracle{}
	s, err := New(items, o)
	require.NoError(t, err)

	_, err = s.MinimalCompare(context.Background())
	require.NoError(t, err)
	calls := o.calls

	got, err := s.NeighborCompare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "e", "d", "c", "b", "a"}, got)
	assert.Equal(t, calls, o.calls, "adjacent pairs are already known")
}

func TestSession_IndifferentOracle(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	s, err := New(items, indifferentOracle{})
	require.NoError(t, err)

	got, err := s.MinimalCompare(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f", "g"}, got)
	assert.NoError(t, s.cmp.Cache().Verify())

	_, err = s.NeighborCompare(context.Background())
	require.NoError(t, err)
}

func TestSession_MutableItems(t *testing.T) {
	items := [][]int{{1}, {2}}

	_, err := New(items, &rankOracle{})
	require.Error(t, err)
	assert.True(t, core.IsMutabilityError(err))

	s, err := New(items, &rankOracle{}, WithCaching(false))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestSession_StructItems(t *testing.T) {
	type dish struct {
		Name  string
		Score int
	}
	items := []dish{{"soup", 2}, {"pizza", 9}, {"salad", 4}}
	o := &funcOracle{preferred: func(c, r any) bool { return c.(dish).Score > r.(dish).Score }}

	s, err := New(items, o)
	require.NoError(t, err)
	got, err := s.MinimalCompare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dish{{"pizza", 9}, {"salad", 4}, {"soup", 2}}, got)
}

func TestSession_InvalidAfterError(t *testing.T) {
	boom := errors.New("prompt closed")
	items := []string{"a", "b", "c"}
	s, err := New(items, brokenOracle{err: boom})
	require.NoError(t, err)

	_, err = s.MinimalCompare(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b", "c"}, items, "caller slice untouched on failure")

	_, err = s.NeighborCompare(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)
}

func TestSession_NilOracle(t *testing.T) {
	_, err := New([]string{"a"}, nil)
	assert.True(t, core.IsInvalidInput(err))
}

type funcOracle struct {
	preferred func(candidate, reference any) bool
}

func (o *funcOracle) AskPreferred(_ context.Context, candidate, reference any) (bool, error) {
	return o.preferred(candidate, reference), nil
}

func (o *funcOracle) AskEquivalent(context.Context, any, any) (bool, error) { return false, nil }

func TestSession_Truncate(t *testing.T) {
	items := []string{"b", "e", "a", "d", "c"}
	o := &rankOracle{}
	s, err := New(items, o)
	require.NoError(t, err)

	_, err = s.MinimalCompare(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, s.Truncate(0))
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, s.Truncate(9))
	assert.Equal(t, []string{"e", "d", "c"}, s.Truncate(3))
	assert.Equal(t, 3, s.Len())

	calls := o.calls
	got, err := s.NeighborCompare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d", "c"}, got)
	assert.Equal(t, calls, o.calls)
}

func TestSession_TruncateBeforeSorting(t *testing.T) {
	items := []string{"q", "w", "e", "r", "t"}
	s, err := New(items, &rankOracle{},
		WithRandomize(true),
		WithRand(rand.New(rand.NewPCG(3, 5))),
	)
	require.NoError(t, err)

	kept := slices.Clone(s.Truncate(2))
	require.Len(t, kept, 2)

	got, err := s.MinimalCompare(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, kept, got)
	assert.True(t, got[0] > got[1])
	assert.Equal(t, got, items[:2])
}
