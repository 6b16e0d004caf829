package rules

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

var nationalIDPattern = regexp.MustCompile(`^\d{8}$`)

type nationalIDRules struct {
	now func() time.Time
}

func (n nationalIDRules) Verify(rec model.ExtractedRecord) model.Outcome {
	var results []model.CheckResult

	if !nationalIDPattern.MatchString(strval(rec.DocumentNumber)) {
		results = append(results, model.CheckResult{
			Rule:    "National ID Number Format",
			Status:  model.StatusFailed,
			Details: fmt.Sprintf("Value '%s' is not exactly 8 digits", strval(rec.DocumentNumber)),
		})
	} else {
		results = append(results, model.CheckResult{
			Rule:    "National ID Number Format",
			Status:  model.StatusPassed,
			Details: "Valid 8-digit format",
		})
	}

	results = append(results, checkExpiry(rec.ExpiryDate, expiryParams{
		threshold: n.now(),
		rule:      "Document Active Status",
		failf:     "Document expired on %s",
		pass:      "Document is active (not expired)",
	}))

	return outcome(results)
}
