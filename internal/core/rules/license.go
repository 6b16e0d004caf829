package rules

import (
	"fmt"
	"time"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

type licenseRules struct {
	now func() time.Time
}

func (l licenseRules) Verify(rec model.ExtractedRecord) model.Outcome {
	var results []model.CheckResult

	// Licence numbering differs too much across jurisdictions for a strict
	// pattern; presence and a minimum length is the contract.
	number := strval(rec.DocumentNumber)
	if len(number) >= 5 {
		results = append(results, model.CheckResult{
			Rule:    "License Number Format",
			Status:  model.StatusPassed,
			Details: fmt.Sprintf("Present and valid length (%d chars)", len(number)),
		})
	} else {
		results = append(results, model.CheckResult{
			Rule:    "License Number Format",
			Status:  model.StatusFailed,
			Details: "Missing or too short (< 5 chars)",
		})
	}

	results = append(results, checkExpiry(rec.ExpiryDate, expiryParams{
		threshold: l.now(),
		rule:      "License Active Status",
		failf:     "License expired on %s",
		pass:      "License is active (not expired)",
	}))

	return outcome(results)
}
