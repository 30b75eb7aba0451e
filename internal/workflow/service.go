// Package workflow implements the fraud-alert case resolution engine: case
// lookup, security verification and decision commit over the case store.
// Business-expected outcomes (no match, wrong answer, ambiguous decision)
// are returned as typed results; only storage faults, stale case references
// and ordering violations travel as errors.
package workflow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/securebank/fraudflow/internal/datastore"
	"github.com/securebank/fraudflow/internal/errors"
	"github.com/securebank/fraudflow/internal/logging"
	"github.com/securebank/fraudflow/internal/observability"
)

// Service exposes the three workflow operations over an injected case store.
type Service struct {
	ds      datastore.Interface
	metrics *observability.WorkflowMetrics
	logger  *slog.Logger
}

// NewService creates a workflow service. metrics may be nil.
func NewService(ds datastore.Interface, metrics *observability.WorkflowMetrics) *Service {
	return &Service{
		ds:      ds,
		metrics: metrics,
		logger:  logging.ForService("workflow"),
	}
}

// notPendingError marks an operation against a case that already reached a
// terminal status.
func notPendingError(caseID uint, status string) error {
	return errors.Newf("case %d is no longer pending review", caseID).
		Component("workflow").
		Category(errors.CategoryState).
		Context("case_id", caseID).
		Context("status", status).
		Build()
}

// FetchCase resolves a caller-supplied name to at most one actionable case.
// Whitespace-only input is treated as not found without touching the store.
// Read-only: no side effects.
func (s *Service) FetchCase(username string) (FetchResult, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		s.metrics.RecordOperation("fetch_case", observability.OutcomeNotFound)
		return FetchResult{
			Found:   false,
			Message: "No pending suspicious transactions found.",
		}, nil
	}

	fraudCase, err := s.ds.FindOldestPendingByName(name)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Info("No pending case for caller", "username", name)
			s.metrics.RecordOperation("fetch_case", observability.OutcomeNotFound)
			return FetchResult{
				Found:   false,
				Message: fmt.Sprintf("No pending suspicious transactions found for %s.", name),
			}, nil
		}
		s.metrics.RecordOperation("fetch_case", observability.OutcomeError)
		return FetchResult{}, err
	}

	s.logger.Info("Found pending case",
		"case_id", fraudCase.ID,
		"username", name)
	s.metrics.RecordOperation("fetch_case", observability.OutcomeFound)
	return FetchResult{Found: true, Case: summarize(fraudCase)}, nil
}

// VerifySecurity performs the single-shot challenge-response check. A match
// leaves the case in pending_review; the terminal transition happens only at
// decision time so verification and resolution stay independently auditable.
// A mismatch transitions the case to verification_failed.
func (s *Service) VerifySecurity(caseID uint, answer string) (VerifyResult, error) {
	fraudCase, err := s.ds.GetByID(caseID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.metrics.RecordOperation("verify_security", observability.OutcomeNotFound)
		} else {
			s.metrics.RecordOperation("verify_security", observability.OutcomeError)
		}
		return VerifyResult{}, err
	}

	if fraudCase.Status != datastore.StatusPendingReview {
		s.metrics.RecordOperation("verify_security", observability.OutcomeError)
		return VerifyResult{}, notPendingError(caseID, fraudCase.Status)
	}

	if normalizeAnswer(fraudCase.SecurityAnswer) == normalizeAnswer(answer) {
		s.logger.Info("Security verification passed", "case_id", caseID)
		s.metrics.RecordOperation("verify_security", observability.OutcomeVerified)
		return VerifyResult{OK: true, Message: MsgVerificationSuccess}, nil
	}

	s.logger.Warn("Security verification failed", "case_id", caseID)
	if err := s.ds.UpdateStatus(caseID, datastore.StatusVerificationFailed, noteVerificationFailed); err != nil {
		s.metrics.RecordOperation("verify_security", observability.OutcomeError)
		return VerifyResult{}, err
	}

	s.metrics.RecordOperation("verify_security", observability.OutcomeMismatch)
	s.metrics.RecordResolution(datastore.StatusVerificationFailed)
	return VerifyResult{OK: false, Message: MsgVerificationFailed}, nil
}

// ConfirmDecision commits the caller's final authorize/deny response as the
// case's terminal resolution. Ambiguous input is not an error: it moves the
// case to verification_failed so every conversation ends in a terminal or
// actionably-failed state.
func (s *Service) ConfirmDecision(caseID uint, decision string) (DecideResult, error) {
	fraudCase, err := s.ds.GetByID(caseID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.metrics.RecordOperation("confirm_decision", observability.OutcomeNotFound)
		} else {
			s.metrics.RecordOperation("confirm_decision", observability.OutcomeError)
		}
		return DecideResult{}, err
	}

	if fraudCase.Status != datastore.StatusPendingReview {
		s.metrics.RecordOperation("confirm_decision", observability.OutcomeError)
		return DecideResult{}, notPendingError(caseID, fraudCase.Status)
	}

	var status, note, message, outcome string
	switch ClassifyDecision(decision) {
	case DecisionAffirmative:
		status = datastore.StatusConfirmedSafe
		note = noteConfirmedSafe
		message = MsgConfirmedSafe
		outcome = observability.OutcomeConfirmedSafe
	case DecisionNegative:
		status = datastore.StatusConfirmedFraud
		note = noteConfirmedFraud
		message = MsgConfirmedFraud
		outcome = observability.OutcomeConfirmedFraud
	default:
		status = datastore.StatusVerificationFailed
		note = noteUnclearResponse
		message = MsgUnclearResponse
		outcome = observability.OutcomeAmbiguous
	}

	if err := s.ds.UpdateStatus(caseID, status, note); err != nil {
		s.metrics.RecordOperation("confirm_decision", observability.OutcomeError)
		return DecideResult{}, err
	}

	s.logger.Info("Case resolved",
		"case_id", caseID,
		"status", status,
		"decision", ClassifyDecision(decision).String())
	s.metrics.RecordOperation("confirm_decision", outcome)
	s.metrics.RecordResolution(status)
	return DecideResult{Status: status, Message: message}, nil
}
