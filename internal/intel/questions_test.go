package intel

import (
	"testing"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantQuestions = []string{
	"What user pain does this solve?",
	"Is momentum rising or fading?",
	"Can I build this solo?",
	"Is this a niche or mass market?",
	"What's the upside?",
	"What's the risk?",
}

func questionsOf(qas []QA) []string {
	out := make([]string, len(qas))
	for i, q := range qas {
		out[i] = q.Question
	}
	return out
}

func TestBuilderQuestions_NoGitHubSourceUsesDefaults(t *testing.T) {
	o := scored("Wled Strip", 50, 75, 60, 20, 55)
	qas := BuilderQuestions(&o)
	require.Len(t, qas, 6)
	assert.Equal(t, wantQuestions, questionsOf(qas))

	assert.Equal(t, "Integration for Wled Strip in Home Assistant ecosystem", qas[0].Answer)
	assert.Equal(t, "Based on 0 GitHub stars and community interest", qas[0].Why)
	assert.Equal(t, "Fading", qas[1].Answer)
	assert.Equal(t, "Trend score: 20.0/100", qas[1].Why)
	assert.Equal(t, "Solo-friendly", qas[2].Answer)
	assert.Equal(t, "Niche", qas[3].Answer)
	assert.Equal(t, "0 stars indicates focused appeal", qas[3].Why)
	assert.Equal(t, "Score: 55.0/100", qas[4].Answer)
	assert.Equal(t, "Composite of demand (50.0), feasibility (75.0), competition (60.0)", qas[4].Why)
	assert.Equal(t, "Manageable", qas[5].Answer)
	assert.Equal(t, "0 open issues", qas[5].Why)
}

func TestBuilderQuestions_GitHubMetadata(t *testing.T) {
	o := scored("Frigate", 90, 35, 20, 55, 70)
	o.DataSources = []opportunity.DataSource{
		githubSource(opportunity.Metadata{"stars": float64(4200), "open_issues": float64(57)}),
	}
	qas := BuilderQuestions(&o)
	require.Len(t, qas, 6)
	assert.Equal(t, wantQuestions, questionsOf(qas))
	assert.Equal(t, "Stable", qas[1].Answer)
	assert.Equal(t, "Hard", qas[2].Answer)
	assert.Equal(t, "Mass market", qas[3].Answer)
	assert.Equal(t, "4200 stars indicates broad appeal", qas[3].Why)
	assert.Equal(t, "High maintenance burden", qas[5].Answer)
	assert.Equal(t, "57 open issues", qas[5].Why)
}

func TestBuilderQuestions_ThresholdsAreStrict(t *testing.T) {
	o := scored("Edge", 50, 50, 50, 50, 50)
	o.DataSources = []opportunity.DataSource{
		githubSource(opportunity.Metadata{"stars": float64(1000), "open_issues": float64(20)}),
	}
	qas := BuilderQuestions(&o)
	assert.Equal(t, "Niche", qas[3].Answer)
	assert.Equal(t, "Manageable", qas[5].Answer)
}
