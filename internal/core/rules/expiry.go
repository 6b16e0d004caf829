package rules

import (
	"fmt"
	"time"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

// expiryParams tailors the shared expiry check to one rule set: the instant
// the date must be strictly after, the name of the comparison rule, the
// failure detail (fmt verb receives the parsed date) and the pass detail.
type expiryParams struct {
	threshold time.Time
	rule      string
	failf     string
	pass      string
}

// checkExpiry runs the expiry sub-protocol shared by every rule set:
// presence, then parseability, then the threshold comparison.
func checkExpiry(expiry *string, p expiryParams) model.CheckResult {
	if expiry == nil || *expiry == "" {
		return model.CheckResult{
			Rule:    "Expiry Date Presence",
			Status:  model.StatusFailed,
			Details: "Expiry date field missing",
		}
	}

	date, err := time.Parse(dateLayout, *expiry)
	if err != nil {
		return model.CheckResult{
			Rule:    "Expiry Date Validity",
			Status:  model.StatusFailed,
			Details: "Invalid date format",
		}
	}

	if !date.After(p.threshold) {
		return model.CheckResult{
			Rule:    p.rule,
			Status:  model.StatusFailed,
			Details: fmt.Sprintf(p.failf, date.Format(dateLayout)),
		}
	}
	return model.CheckResult{
		Rule:    p.rule,
		Status:  model.StatusPassed,
		Details: p.pass,
	}
}
