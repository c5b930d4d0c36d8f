package optimizer

import (
	"testing"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatesFor(t *testing.T, acts ...domain.Activity) []Candidate {
	t.Helper()
	p, err := BuildProblem(acts, domain.ZeroEffortFreeMax)
	require.NoError(t, err)
	return p.Candidates
}

func TestAllocateHours_WalksInRankOrder(t *testing.T) {
	cands := candidatesFor(t,
		testutil.Pending("slow", 0.5, 4), // rate 0.125, cap 40
		testutil.Pending("fast", 0.5, 1), // rate 0.5, cap 10
	)

	w := AllocateHours(cands, RankCandidates(cands), 15)

	assert.Equal(t, []int{1, 0}, w.Rank)
	assert.InDelta(t, 5.0, w.Hours[0], 1e-12)
	assert.InDelta(t, 10.0, w.Hours[1], 1e-12)
	assert.Equal(t, 0.0, w.Remaining)
}

func TestAllocateHours_RanksEveryCandidateEvenWhenBudgetIsGone(t *testing.T) {
	cands := candidatesFor(t,
		testutil.Pending("a", 0.3, 1),
		testutil.Pending("b", 0.3, 2),
		testutil.Pending("c", 0.4, 8),
	)

	w := AllocateHours(cands, RankCandidates(cands), 3)

	assert.Equal(t, []int{0, 1, 2}, w.Rank)
	assert.Equal(t, []float64{3, 0, 0}, w.Hours)
}

func TestAllocateHours_FreeCandidatesStayOutOfWalk(t *testing.T) {
	cands := candidatesFor(t,
		testutil.Pending("free", 0.5, 0),
		testutil.Pending("paid", 0.5, 1),
	)

	w := AllocateHours(cands, RankCandidates(cands), 4)

	assert.Equal(t, []int{-1, 0}, w.Rank)
	assert.Equal(t, []float64{0, 4}, w.Hours)
}

func TestTrimOverspend_RemovesRoundingExcess(t *testing.T) {
	hours := []float64{0.1, 0.2} // sums to 0.30000000000000004
	require.Greater(t, hours[0]+hours[1], 0.3)

	trimOverspend(hours, []int{0, 1}, 0.3)

	assert.LessOrEqual(t, hours[0]+hours[1], 0.3)
	assert.Equal(t, 0.1, hours[0])
	assert.InDelta(t, 0.2, hours[1], 1e-15)
}

func TestTrimOverspend_LeavesExactSplitAlone(t *testing.T) {
	hours := []float64{2.5, 7.5}

	trimOverspend(hours, []int{1, 0}, 10)

	assert.Equal(t, []float64{2.5, 7.5}, hours)
}

func TestAllocateHours_NegativeRateGetsNothing(t *testing.T) {
	cands := []Candidate{
		{Index: 0, Rate: 1.5, CapHours: 10},
		{Index: 1, Rate: -0.5, CapHours: 10},
	}

	w := AllocateHours(cands, RankCandidates(cands), 20)

	assert.Equal(t, []float64{10, 0}, w.Hours)
	assert.Equal(t, 10.0, w.Remaining)
}

func TestAllocateHours_Empty(t *testing.T) {
	w := AllocateHours(nil, nil, 12)
	assert.Empty(t, w.Hours)
	assert.Equal(t, 12.0, w.Remaining)
}

func TestBuildProblem_OffsetAndCandidates(t *testing.T) {
	acts := []domain.Activity{
		testutil.Done("d1", 0.4, 8),
		testutil.Pending("p1", 0.4, 2),
		testutil.Done("d2", 0.2, 5),
	}

	p, err := BuildProblem(acts, domain.ZeroEffortFreeMax)

	require.NoError(t, err)
	assert.InDelta(t, 4.2, p.Offset, 1e-12)
	require.Len(t, p.Candidates, 1)
	c := p.Candidates[0]
	assert.Equal(t, 1, c.Index)
	assert.InDelta(t, 0.2, c.Rate, 1e-12)
	assert.InDelta(t, 20.0, c.CapHours, 1e-12)
	assert.False(t, c.Free)
}

func TestPendingCount(t *testing.T) {
	acts := []domain.Activity{
		testutil.Done("d", 0.5, 8),
		testutil.Pending("p", 0.25, 1),
		testutil.Pending("q", 0.25, 1),
	}
	assert.Equal(t, 2, PendingCount(acts))
}
