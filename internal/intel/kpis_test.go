package intel

import (
	"testing"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKPIs_Empty(t *testing.T) {
	assert.Equal(t, KPIs{Total: 0, AvgDemand: 0, TrendingCount: 0, Highest: nil}, ComputeKPIs(nil))
	assert.Equal(t, KPIs{}, ComputeKPIs([]opportunity.Opportunity{}))
}

func TestComputeKPIs_IdenticalRecords(t *testing.T) {
	const n = 4
	opps := make([]opportunity.Opportunity, n)
	for i := range opps {
		opps[i] = scored("Same", 80, 50, 50, 75, 66)
	}
	k := ComputeKPIs(opps)
	assert.Equal(t, n, k.Total)
	assert.Equal(t, 80.0, k.AvgDemand)
	assert.Equal(t, n, k.TrendingCount)
	require.NotNil(t, k.Highest)
	assert.Equal(t, Highlight{ID: "id-Same", Name: "Same", Score: 66}, *k.Highest)
}

func TestComputeKPIs_AveragesAllRecordsAndCountsTrending(t *testing.T) {
	opps := []opportunity.Opportunity{
		scored("A", 90, 0, 0, 70, 40),
		scored("B", 30, 0, 0, 69.9, 81),
		scored("C", 60, 0, 0, 95, 12),
	}
	k := ComputeKPIs(opps)
	assert.Equal(t, 3, k.Total)
	assert.InDelta(t, 60.0, k.AvgDemand, 1e-9)
	assert.Equal(t, 2, k.TrendingCount)
	require.NotNil(t, k.Highest)
	assert.Equal(t, "B", k.Highest.Name)
}

func TestComputeKPIs_HighestUsesScoreNotComposite(t *testing.T) {
	a := scored("A", 0, 0, 0, 0, 99)
	a.Score = 10
	b := scored("B", 0, 0, 0, 0, 1)
	b.Score = 20
	k := ComputeKPIs([]opportunity.Opportunity{a, b})
	require.NotNil(t, k.Highest)
	assert.Equal(t, "B", k.Highest.Name)
	assert.Equal(t, 20.0, k.Highest.Score)
}

func TestComputeKPIs_TiesKeepFirstSeen(t *testing.T) {
	opps := []opportunity.Opportunity{
		scored("First", 0, 0, 0, 0, 50),
		scored("Second", 0, 0, 0, 0, 50),
	}
	k := ComputeKPIs(opps)
	require.NotNil(t, k.Highest)
	assert.Equal(t, "First", k.Highest.Name)
}
