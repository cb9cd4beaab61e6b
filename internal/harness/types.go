package harness

// StepTrace records the reachable set after one inventory change. Step 0
// is the starting inventory.
type StepTrace struct {
	Step      int      `json:"step"`
	Collected []string `json:"collected"`
	Reachable []string `json:"reachable"`
	Regions   []string `json:"regions"`
	Events    []string `json:"events"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every assertion held.
	Pass bool `json:"pass"`

	// Trace holds one entry per step, starting with the initial inventory.
	Trace []StepTrace `json:"trace"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []StepTrace{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Final returns the trace entry for the last step.
func (r *Result) Final() StepTrace {
	if len(r.Trace) == 0 {
		return StepTrace{}
	}
	return r.Trace[len(r.Trace)-1]
}
