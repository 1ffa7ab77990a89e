package race

import "testing"

func TestRetryWithinBudget(t *testing.T) {
	e := NewRetryEngine(true, 3)

	for i := 1; i <= 3; i++ {
		if v := e.RecordFailure("Satsuki Sho"); v != VerdictRetry {
			t.Fatalf("failure %d: verdict = %s, want retry", i, v)
		}
	}
	if e.Failures() != 3 {
		t.Fatalf("failures = %d, want 3", e.Failures())
	}
}

func TestRetryBudgetExhaustedIsFatal(t *testing.T) {
	e := NewRetryEngine(true, 3)

	e.RecordFailure("Satsuki Sho")
	e.RecordFailure("Satsuki Sho")
	e.RecordFailure("Satsuki Sho")
	if v := e.RecordFailure("Satsuki Sho"); v != VerdictFatal {
		t.Fatalf("fourth failure: verdict = %s, want fatal", v)
	}
}

func TestRetryDisabledGivesUp(t *testing.T) {
	e := NewRetryEngine(false, 3)

	if v := e.RecordFailure("Satsuki Sho"); v != VerdictGiveUp {
		t.Fatalf("verdict = %s, want give_up", v)
	}
}

func TestRetryCounterResetsOnNewCandidate(t *testing.T) {
	e := NewRetryEngine(true, 2)

	e.RecordFailure("Satsuki Sho")
	e.RecordFailure("Satsuki Sho")
	if v := e.RecordFailure("Japanese Derby"); v != VerdictRetry {
		t.Fatalf("verdict = %s, want retry after candidate change", v)
	}
	if e.Failures() != 1 {
		t.Fatalf("failures = %d, want 1", e.Failures())
	}
}

func TestRetryCounterResetsOnSuccess(t *testing.T) {
	e := NewRetryEngine(true, 2)

	e.RecordFailure("Satsuki Sho")
	e.RecordFailure("Satsuki Sho")
	e.RecordSuccess()
	if v := e.RecordFailure("Satsuki Sho"); v != VerdictRetry {
		t.Fatalf("verdict = %s, want retry after success reset", v)
	}
	if e.Failures() != 1 {
		t.Fatalf("failures = %d, want 1", e.Failures())
	}
}
