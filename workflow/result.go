package workflow

import "encoding/json"

// Outcome tells how a trigger attempt ended
type Outcome int

const (
	// OutcomeSimulated means no call was made because no access token is configured
	OutcomeSimulated Outcome = iota
	// OutcomeLive means the endpoint accepted the call with a 2xx status
	OutcomeLive
	// OutcomeDegraded means a call was attempted but cannot be trusted:
	// non-2xx status, transport error, timeout or open circuit breaker
	OutcomeDegraded
)

// String returns the lower-case name used in logs and metric labels
func (o Outcome) String() string {
	switch o {
	case OutcomeSimulated:
		return "simulated"
	case OutcomeLive:
		return "live"
	case OutcomeDegraded:
		return "degraded"
	}
	return "unknown"
}

// Result is the normalized outcome of a trigger attempt. Every attempt
// produces one; the client never reports failure through an error.
type Result struct {
	Outcome    Outcome
	InstanceID string

	// Payload is what was sent, or would have been sent in simulation
	Payload Payload

	// ResponseStatus is nil when no HTTP response was received
	ResponseStatus *int
	ResponseBody   json.RawMessage

	// Error describes why a degraded call failed
	Error string
}

// Success reports whether the trigger counts as done from the caller's view.
// Simulated results succeed; degraded ones do not.
func (r Result) Success() bool {
	return r.Outcome != OutcomeDegraded
}

// Triggered reports whether the permit counts as handed to the workflow,
// for real or simulated
func (r Result) Triggered() bool {
	return r.Success()
}

// SimulationMode reports whether the workflow was not really started
func (r Result) SimulationMode() bool {
	return r.Outcome != OutcomeLive
}

// PayloadJSON returns the request payload encoded for the audit log
func (r Result) PayloadJSON() json.RawMessage {
	data, err := json.Marshal(r.Payload)
	if err != nil {
		return nil
	}
	return data
}
