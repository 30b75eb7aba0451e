// model.go this code defines the data model for the application
package datastore

import "time"

// Case statuses. A case is created in pending_review and moves exactly once
// into one of the terminal statuses.
const (
	StatusPendingReview      = "pending_review"
	StatusConfirmedSafe      = "confirmed_safe"
	StatusConfirmedFraud     = "confirmed_fraud"
	StatusVerificationFailed = "verification_failed"
)

// IsTerminalStatus reports whether a case in the given status accepts no
// further transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusConfirmedSafe, StatusConfirmedFraud, StatusVerificationFailed:
		return true
	}
	return false
}

// ValidStatus reports whether status is one of the known case statuses.
func ValidStatus(status string) bool {
	return status == StatusPendingReview || IsTerminalStatus(status)
}

// FraudCase represents one suspected-fraud transaction record
type FraudCase struct {
	ID                 uint   `gorm:"primaryKey"`
	HolderName         string `gorm:"index:idx_fraud_cases_holder;not null"`
	SecurityIdentifier string // informational only, read back to the caller
	MaskedCard         string // last-4 display value, never a full card number
	Amount             string // display string, e.g. "$129.99"
	Merchant           string
	Location           string
	OccurredAt         string // transaction timestamp as displayed to the caller
	Category           string
	Source             string
	SecurityQuestion   string
	SecurityAnswer     string `gorm:"not null"` // comparison secret, never leaves the verifier
	Status             string `gorm:"type:varchar(20);default:'pending_review';index:idx_fraud_cases_status"`
	OutcomeNote        string `gorm:"type:text"` // reason for the most recent transition, overwritten
	RawJSON            string `gorm:"column:raw_json;type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the default table name used by GORM
func (FraudCase) TableName() string {
	return "fraud_cases"
}

// Copy creates a deep copy of the FraudCase struct
func (c FraudCase) Copy() FraudCase {
	return c
}
