package rules

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

// Generic 9-character alphanumeric standard. Real formats vary by country.
var passportNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]{9}$`)

type passportRules struct {
	now func() time.Time
}

func (p passportRules) Verify(rec model.ExtractedRecord) model.Outcome {
	results := []model.CheckResult{numberFormatCheck(rec.DocumentNumber)}

	// Travel rule: passports must stay valid at least six months out.
	results = append(results, checkExpiry(rec.ExpiryDate, expiryParams{
		threshold: p.now().AddDate(0, 6, 0),
		rule:      "Travel Validity (6 Months Rule)",
		failf:     "Expiry date %s is less than 6 months from today",
		pass:      "Expiry is valid for travel (> 6 months)",
	}))

	return outcome(results)
}

func numberFormatCheck(number *string) model.CheckResult {
	if !passportNumberPattern.MatchString(strval(number)) {
		return model.CheckResult{
			Rule:    "Passport Number Format",
			Status:  model.StatusFailed,
			Details: fmt.Sprintf("Value '%s' does not match 9-character alphanumeric format", strval(number)),
		}
	}
	return model.CheckResult{
		Rule:    "Passport Number Format",
		Status:  model.StatusPassed,
		Details: "Valid format",
	}
}
