// results.go: typed results returned to the conversational caller
package workflow

import "github.com/securebank/fraudflow/internal/datastore"

// Audit notes written on status transitions. One current note per case,
// overwritten on each transition.
const (
	noteVerificationFailed = "Security question answered incorrectly during voice verification."
	noteConfirmedSafe      = "Customer confirmed the transaction as legitimate via voice call."
	noteConfirmedFraud     = "Customer denied the transaction. Card blocked and dispute initiated."
	noteUnclearResponse    = "Unclear response during confirmation step."
)

// Caller-facing messages. The voice layer reads these aloud as-is.
const (
	MsgVerificationSuccess = "Verification successful."
	MsgVerificationFailed  = "Verification failed. Cannot proceed."
	MsgCaseNotFound        = "Case not found in our system."
	MsgConfirmedSafe       = "Transaction marked as legitimate. No further action required."
	MsgConfirmedFraud      = "Transaction marked as fraudulent. Card blocked and dispute opened."
	MsgUnclearResponse     = "Unable to confirm your response. Please contact us directly."
	MsgStorageFailure      = "We are unable to process your request right now. Please contact us directly."
)

// CaseSummary is the sanitized projection of a fraud case handed to the
// conversational caller. It never carries the security answer.
type CaseSummary struct {
	ID                 uint   `json:"id"`
	HolderName         string `json:"holder_name"`
	SecurityIdentifier string `json:"security_identifier"`
	MaskedCard         string `json:"masked_card"`
	Amount             string `json:"amount"`
	Merchant           string `json:"merchant"`
	Location           string `json:"location"`
	OccurredAt         string `json:"occurred_at"`
	Category           string `json:"category"`
	Source             string `json:"source"`
	SecurityQuestion   string `json:"security_question"`
	Status             string `json:"status"`
}

// summarize builds the sanitized projection from a full case row.
func summarize(c *datastore.FraudCase) *CaseSummary {
	return &CaseSummary{
		ID:                 c.ID,
		HolderName:         c.HolderName,
		SecurityIdentifier: c.SecurityIdentifier,
		MaskedCard:         c.MaskedCard,
		Amount:             c.Amount,
		Merchant:           c.Merchant,
		Location:           c.Location,
		OccurredAt:         c.OccurredAt,
		Category:           c.Category,
		Source:             c.Source,
		SecurityQuestion:   c.SecurityQuestion,
		Status:             c.Status,
	}
}

// FetchResult is the outcome of a case lookup.
type FetchResult struct {
	Found   bool         `json:"found"`
	Message string       `json:"message,omitempty"`
	Case    *CaseSummary `json:"case,omitempty"`
}

// VerifyResult is the outcome of a security answer check.
type VerifyResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// DecideResult is the outcome of committing the caller's decision.
type DecideResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
