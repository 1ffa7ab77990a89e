package race

// #region verdict

// RetryVerdict is the retry engine's answer after a failed race attempt.
type RetryVerdict string

const (
	// VerdictRetry means the same candidate should run again.
	VerdictRetry RetryVerdict = "retry"
	// VerdictGiveUp means retrying is disabled; move on to the next turn.
	VerdictGiveUp RetryVerdict = "give_up"
	// VerdictFatal means the retry budget is exhausted; the run stops and
	// the operator is surfaced.
	VerdictFatal RetryVerdict = "fatal"
)

// #endregion

// #region engine

// RetryEngine tracks consecutive failures of a single race candidate.
// The counter is explicit per-run state threaded through turns; it resets
// whenever a different candidate runs or any attempt succeeds.
type RetryEngine struct {
	enabled    bool
	maxRetries int
	candidate  string
	failures   int
}

// NewRetryEngine creates a retry engine. maxRetries bounds re-attempts of
// one candidate; the first run is not a retry.
func NewRetryEngine(enabled bool, maxRetries int) *RetryEngine {
	return &RetryEngine{enabled: enabled, maxRetries: maxRetries}
}

// #endregion

// #region record

// RecordFailure registers a failed attempt and decides what happens next.
func (e *RetryEngine) RecordFailure(candidate string) RetryVerdict {
	if !e.enabled {
		return VerdictGiveUp
	}
	if candidate != e.candidate {
		e.candidate = candidate
		e.failures = 0
	}
	e.failures++
	if e.failures > e.maxRetries {
		return VerdictFatal
	}
	return VerdictRetry
}

// RecordSuccess clears the counter after any successful attempt.
func (e *RetryEngine) RecordSuccess() {
	e.candidate = ""
	e.failures = 0
}

// Failures returns the consecutive failure count for the current candidate.
func (e *RetryEngine) Failures() int { return e.failures }

// #endregion
