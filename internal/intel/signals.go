package intel

import "github.com/blackwell-systems/nichewatch/internal/opportunity"

// Tier thresholds shared by every classifier and the ranking rules.
const (
	StrongThreshold   = 70.0
	ModerateThreshold = 40.0
)

// Classify maps scoring details onto signal levels. Scores are compared as-is:
// values above 100 land in the top tier and negatives in the bottom tier.
func Classify(s opportunity.ScoringDetails) Signals {
	return Signals{
		Demand:       DemandLevel(s.Demand),
		Momentum:     MomentumLevel(s.Trend),
		Buildability: BuildabilityLevel(s.Feasibility),
	}
}

// DemandLevel classifies a demand score.
func DemandLevel(score float64) Level {
	return tier(score, DemandHigh, DemandMed, DemandLow)
}

// MomentumLevel classifies a trend score.
func MomentumLevel(score float64) Level {
	return tier(score, MomentumRising, MomentumStable, MomentumFading)
}

// BuildabilityLevel classifies a feasibility score.
func BuildabilityLevel(score float64) Level {
	return tier(score, BuildSoloFriendly, BuildComplex, BuildHard)
}

func tier(score float64, high, mid, low Level) Level {
	switch {
	case score >= StrongThreshold:
		return high
	case score >= ModerateThreshold:
		return mid
	default:
		return low
	}
}
