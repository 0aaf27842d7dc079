package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTwoIdeas(t *testing.T) {
	t.Parallel()

	s := NewState().SetIdeaName(0, "Idea A")
	s = scoreAll(s, 0, "5", "3", "4", "2", "1")
	s = s.AddIdea().SetIdeaName(1, "Idea B")

	results := Aggregate(s.Ideas)
	require.Len(t, results, 2)

	totals := []int{results[0].Total, results[1].Total}
	require.Equal(t, []int{15, 0}, totals)

	for _, c := range Criteria {
		assert.Equal(t, 0, results[1].Score(c), "unset %s should show 0", c)
	}
	assert.Equal(t, 4, results[0].Score(Impact))
}

func TestAggregateTotalProperty(t *testing.T) {
	t.Parallel()

	s := NewStateWithNames("x", "y", "z")
	inputs := []struct {
		idx int
		c   Criterion
		raw string
	}{
		{0, Cost, "2"},
		{1, Impact, "x"},
		{2, Timeframe, "5"},
		{0, Cost, "4"},
		{1, Alignment, "3"},
		{2, Feasibility, "7"},
		{0, Feasibility, "1"},
	}

	for _, in := range inputs {
		s = s.SetScore(in.idx, in.c, in.raw)

		for i, r := range Aggregate(s.Ideas) {
			want := 0
			for _, c := range Criteria {
				want += s.Ideas[i].Scores[c].Value()
			}
			require.Equal(t, want, r.Total)
		}
	}

	totals := make([]int, 0, 3)
	for _, r := range s.Results() {
		totals = append(totals, r.Total)
	}
	require.Equal(t, []int{5, 3, 5}, totals)
}

func TestAggregateIdempotentAndOrdered(t *testing.T) {
	t.Parallel()

	s := NewStateWithNames("first", "second", "third").
		SetScore(2, Impact, "5").
		SetScore(0, Cost, "1")

	a := Aggregate(s.Ideas)
	b := Aggregate(s.Ideas)
	require.Equal(t, a, b)

	names := []string{a[0].Name, a[1].Name, a[2].Name}
	require.Equal(t, []string{"first", "second", "third"}, names)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, Aggregate(nil))
}
