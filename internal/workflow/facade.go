// facade.go: session-gated entry point enforcing lookup -> verify -> decide
package workflow

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/securebank/fraudflow/internal/errors"
	"github.com/securebank/fraudflow/internal/logging"
	"github.com/securebank/fraudflow/internal/observability"
)

// Stage tracks how far a conversation has progressed through the workflow.
type Stage int

const (
	StageNew Stage = iota
	StageCaseFetched
	StageVerified
	StageResolved
)

// String returns the stage name for logging.
func (s Stage) String() string {
	switch s {
	case StageCaseFetched:
		return "case_fetched"
	case StageVerified:
		return "verified"
	case StageResolved:
		return "resolved"
	default:
		return "new"
	}
}

// sessionState is the per-conversation record the facade keys on.
type sessionState struct {
	CaseID uint
	Stage  Stage
}

// Facade wraps the workflow service with per-session ordering rules. It is
// the sole interface the dialogue policy is supposed to invoke; calling
// decide before a passing verify is rejected rather than forwarded.
type Facade struct {
	svc      *Service
	sessions *cache.Cache
	metrics  *observability.WorkflowMetrics
	logger   *slog.Logger
}

// NewFacade creates a facade over svc. Sessions idle longer than ttl are
// evicted; an expired session simply has to start over with a fresh lookup.
func NewFacade(svc *Service, ttl time.Duration, metrics *observability.WorkflowMetrics) *Facade {
	sessions := cache.New(ttl, 2*ttl)
	f := &Facade{
		svc:      svc,
		sessions: sessions,
		metrics:  metrics,
		logger:   logging.ForService("workflow"),
	}
	sessions.OnEvicted(func(string, any) {
		metrics.SetActiveSessions(sessions.ItemCount())
	})
	return f
}

// sequenceViolation builds the error returned for out-of-order calls.
func sequenceViolation(sessionID string, caseID uint, stage Stage, operation string) error {
	return errors.Newf("operation %s not allowed at stage %s", operation, stage).
		Component("workflow").
		Category(errors.CategoryConflict).
		Context("session_id", sessionID).
		Context("case_id", caseID).
		Context("stage", stage.String()).
		Build()
}

// IsSequenceViolation reports whether err is an ordering violation raised by
// the facade.
func IsSequenceViolation(err error) bool {
	return errors.IsCategory(err, errors.CategoryConflict)
}

// NewSession mints an opaque conversation handle for the caller.
func (f *Facade) NewSession() string {
	sessionID := uuid.NewString()
	f.sessions.SetDefault(sessionID, &sessionState{Stage: StageNew})
	f.metrics.SetActiveSessions(f.sessions.ItemCount())
	f.logger.Info("Conversation session started", "session_id", sessionID)
	return sessionID
}

// getSession returns the state for a session handle, or nil when the handle
// is unknown or expired.
func (f *Facade) getSession(sessionID string) *sessionState {
	if v, ok := f.sessions.Get(sessionID); ok {
		return v.(*sessionState)
	}
	return nil
}

// FetchCase looks up the caller's pending case and arms the session for
// verification. A fresh lookup is always legal: it restarts the sequence for
// whatever case it finds.
func (f *Facade) FetchCase(sessionID, username string) (FetchResult, error) {
	state := f.getSession(sessionID)
	if state == nil {
		return FetchResult{}, sequenceViolation(sessionID, 0, StageNew, "fetch_case")
	}

	result, err := f.svc.FetchCase(username)
	if err != nil {
		return FetchResult{}, err
	}

	if result.Found {
		state.CaseID = result.Case.ID
		state.Stage = StageCaseFetched
	} else {
		state.CaseID = 0
		state.Stage = StageNew
	}
	f.sessions.SetDefault(sessionID, state)
	return result, nil
}

// VerifySecurity checks the challenge answer for the case the session
// fetched. Requires a prior successful lookup of the same case.
func (f *Facade) VerifySecurity(sessionID string, caseID uint, answer string) (VerifyResult, error) {
	state := f.getSession(sessionID)
	if state == nil || state.Stage != StageCaseFetched || state.CaseID != caseID {
		f.metrics.RecordOperation("verify_security", observability.OutcomeSequenceViolation)
		return VerifyResult{}, sequenceViolation(sessionID, caseID, stageOf(state), "verify_security")
	}

	result, err := f.svc.VerifySecurity(caseID, answer)
	if err != nil {
		return VerifyResult{}, err
	}

	if result.OK {
		state.Stage = StageVerified
	} else {
		// The case is now verification_failed; nothing further is legal.
		state.Stage = StageResolved
	}
	f.sessions.SetDefault(sessionID, state)
	return result, nil
}

// ConfirmDecision commits the caller's decision for the verified case.
// Requires a passing verification of the same case in this session.
func (f *Facade) ConfirmDecision(sessionID string, caseID uint, decision string) (DecideResult, error) {
	state := f.getSession(sessionID)
	if state == nil || state.Stage != StageVerified || state.CaseID != caseID {
		f.metrics.RecordOperation("confirm_decision", observability.OutcomeSequenceViolation)
		return DecideResult{}, sequenceViolation(sessionID, caseID, stageOf(state), "confirm_decision")
	}

	result, err := f.svc.ConfirmDecision(caseID, decision)
	if err != nil {
		return DecideResult{}, err
	}

	state.Stage = StageResolved
	f.sessions.SetDefault(sessionID, state)
	return result, nil
}

// EndSession drops a session handle. Idempotent.
func (f *Facade) EndSession(sessionID string) {
	f.sessions.Delete(sessionID)
	f.metrics.SetActiveSessions(f.sessions.ItemCount())
}

func stageOf(state *sessionState) Stage {
	if state == nil {
		return StageNew
	}
	return state.Stage
}
