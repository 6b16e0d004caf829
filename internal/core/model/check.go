package model

// CheckStatus is the result of one verification rule.
type CheckStatus string

const (
	StatusPassed CheckStatus = "PASSED"
	StatusFailed CheckStatus = "FAILED"
)

// CheckResult is one named pass/fail verification check. Details is a
// human-readable explanation and carries no machine semantics.
type CheckResult struct {
	Rule    string      `json:"rule"`
	Status  CheckStatus `json:"status"`
	Details string      `json:"details"`
}

// Outcome is the full result of running one category's rule set. Results
// keeps evaluation order, which is significant for audit display. Verified
// is true only when every check passed.
type Outcome struct {
	Verified bool          `json:"verified"`
	Results  []CheckResult `json:"results"`
}
