package intel

import (
	"testing"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score        float64
		demand       Level
		momentum     Level
		buildability Level
	}{
		{-5, DemandLow, MomentumFading, BuildHard},
		{0, DemandLow, MomentumFading, BuildHard},
		{39.999, DemandLow, MomentumFading, BuildHard},
		{40, DemandMed, MomentumStable, BuildComplex},
		{69.9, DemandMed, MomentumStable, BuildComplex},
		{70, DemandHigh, MomentumRising, BuildSoloFriendly},
		{100, DemandHigh, MomentumRising, BuildSoloFriendly},
		{140, DemandHigh, MomentumRising, BuildSoloFriendly},
	}
	for _, tt := range tests {
		got := Classify(opportunity.ScoringDetails{Demand: tt.score, Trend: tt.score, Feasibility: tt.score})
		assert.Equal(t, tt.demand, got.Demand, "demand at %v", tt.score)
		assert.Equal(t, tt.momentum, got.Momentum, "momentum at %v", tt.score)
		assert.Equal(t, tt.buildability, got.Buildability, "buildability at %v", tt.score)
	}
}

func TestClassify_UsesIndependentScores(t *testing.T) {
	got := Classify(opportunity.ScoringDetails{Demand: 85, Feasibility: 30, Competition: 99, Trend: 50})
	assert.Equal(t, Signals{Demand: DemandHigh, Momentum: MomentumStable, Buildability: BuildHard}, got)
}
