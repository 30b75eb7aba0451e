// decision.go: classifies the caller's free-text authorize/deny response
package workflow

import "strings"

// Decision is the classification of a caller's confirmation response.
type Decision int

const (
	DecisionAmbiguous Decision = iota
	DecisionAffirmative
	DecisionNegative
)

// String returns the decision name for logging.
func (d Decision) String() string {
	switch d {
	case DecisionAffirmative:
		return "affirmative"
	case DecisionNegative:
		return "negative"
	default:
		return "ambiguous"
	}
}

// The matching tables are data; speech recognition output is unreliable, so
// both sets stay small and literal. Anything outside them is ambiguous.
var affirmativeSet = map[string]struct{}{
	"yes":     {},
	"y":       {},
	"yeah":    {},
	"yep":     {},
	"correct": {},
	"true":    {},
}

var negativeSet = map[string]struct{}{
	"no":       {},
	"n":        {},
	"nope":     {},
	"negative": {},
	"false":    {},
	"not me":   {},
}

// ClassifyDecision normalizes the response (trim, case-fold) and matches it
// against the fixed affirmative and negative sets. No fuzzy matching.
func ClassifyDecision(response string) Decision {
	normalized := normalizeAnswer(response)

	if _, ok := affirmativeSet[normalized]; ok {
		return DecisionAffirmative
	}
	if _, ok := negativeSet[normalized]; ok {
		return DecisionNegative
	}
	return DecisionAmbiguous
}

// normalizeAnswer prepares free text for exact comparison: trimmed and
// case-folded. Shared by decision classification and answer verification.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
