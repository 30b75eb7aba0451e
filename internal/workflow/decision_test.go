package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Decision
	}{
		{"yes", DecisionAffirmative},
		{"y", DecisionAffirmative},
		{"yeah", DecisionAffirmative},
		{"yep", DecisionAffirmative},
		{"correct", DecisionAffirmative},
		{"true", DecisionAffirmative},
		{"YES", DecisionAffirmative},
		{"  Yeah  ", DecisionAffirmative},
		{"no", DecisionNegative},
		{"n", DecisionNegative},
		{"nope", DecisionNegative},
		{"negative", DecisionNegative},
		{"false", DecisionNegative},
		{"not me", DecisionNegative},
		{"NOT ME", DecisionNegative},
		{"", DecisionAmbiguous},
		{"   ", DecisionAmbiguous},
		{"maybe", DecisionAmbiguous},
		{"i think so", DecisionAmbiguous},
		{"yes please", DecisionAmbiguous},
		{"nooo", DecisionAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyDecision(tt.input), "input %q", tt.input)
		})
	}
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "affirmative", DecisionAffirmative.String())
	assert.Equal(t, "negative", DecisionNegative.String())
	assert.Equal(t, "ambiguous", DecisionAmbiguous.String())
}

func TestNormalizeAnswer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fluffy", normalizeAnswer("  Fluffy "))
	assert.Equal(t, "not me", normalizeAnswer("Not Me"))
	assert.Equal(t, "", normalizeAnswer("   "))
}
