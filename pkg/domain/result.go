package domain

// Verdict is the outcome of a run that halted normally.
type Verdict string

const (
	VerdictNone     Verdict = ""
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeFault    Outcome = "fault"
)

// Result is the record of one execution run.
type Result struct {
	RunID     string          `json:"run_id"`
	Trace     []Configuration `json:"trace"`
	Verdict   Verdict         `json:"verdict,omitempty"`
	FinalTape string          `json:"final_tape,omitempty"`
	Steps     int             `json:"steps"`
	// Fault is set when the run ended with an execution fault.
	Fault error `json:"-"`
}

// Outcome reports how the run ended.
func (r *Result) Outcome() Outcome {
	switch {
	case r.Fault != nil:
		return OutcomeFault
	case r.Verdict == VerdictAccepted:
		return OutcomeAccepted
	default:
		return OutcomeRejected
	}
}
