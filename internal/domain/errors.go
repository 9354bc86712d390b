package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline's failure taxonomy. The run coordinator
// classifies per-ASP outcomes with errors.Is against these.
var (
	// ErrCredentialMissing means no credential row exists for an (asp, media)
	// pair. Expected steady-state: new ASPs are onboarded before credentials
	// exist. The coordinator skips, it does not fail.
	ErrCredentialMissing = errors.New("asp credential not found")

	// ErrLoginTimeout means neither automated login nor the manual fallback
	// confirmed an authenticated session within the bounded wait.
	ErrLoginTimeout = errors.New("login not confirmed before timeout")

	// ErrLayoutDrift means the extraction heuristics found zero candidate
	// revenue tables. The adapter profile needs maintenance.
	ErrLayoutDrift = errors.New("no revenue table recognized on report page")

	// ErrUnparsableDate / ErrUnparsableAmount are per-row normalization
	// failures. Callers count and surface them; they are never silently
	// coerced to zero.
	ErrUnparsableDate   = errors.New("unparsable date text")
	ErrUnparsableAmount = errors.New("unparsable amount text")

	// ErrAccountItemMissing means no affiliate-flagged account item exists
	// for the (media, asp) pair, so there is nowhere to book the revenue.
	ErrAccountItemMissing = errors.New("affiliate account item not found")
)

// Stage identifies where in the per-ASP state machine a failure happened.
type Stage string

const (
	StageLogin    Stage = "login"
	StageNavigate Stage = "navigate"
	StageExtract  Stage = "extract"
	StageIngest   Stage = "ingest"
)

// AdapterError wraps a per-ASP failure with the stage it occurred in. The
// session engine captures an on-error screenshot before this is raised.
type AdapterError struct {
	Asp   string
	Stage Stage
	Err   error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("asp %s: stage %s: %v", e.Asp, e.Stage, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// NewAdapterError wraps err for the given ASP and stage.
func NewAdapterError(asp string, stage Stage, err error) *AdapterError {
	return &AdapterError{Asp: asp, Stage: stage, Err: err}
}
