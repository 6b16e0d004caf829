// Package rules implements the per-category verification rule sets. Every
// rule set evaluates its full, fixed list of checks without short-circuiting
// so the complete diagnostic list reaches the caller; a validation failure
// is always a FAILED check, never an error.
package rules

import (
	"time"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

const dateLayout = "2006-01-02"

// Verifier runs the fixed check set for one document category.
type Verifier interface {
	Verify(rec model.ExtractedRecord) model.Outcome
}

// ForCategory returns the rule set for the category. Categories without a
// defined rule set get the unsupported fallback. now supplies the instant
// the expiry thresholds are computed against.
func ForCategory(category model.DocumentCategory, now func() time.Time) Verifier {
	switch category {
	case model.CategoryPassport:
		return passportRules{now: now}
	case model.CategoryNationalID:
		return nationalIDRules{now: now}
	case model.CategoryDrivingLicense:
		return licenseRules{now: now}
	default:
		return unsupportedRules{category: category}
	}
}

func outcome(results []model.CheckResult) model.Outcome {
	verified := true
	for _, r := range results {
		if r.Status != model.StatusPassed {
			verified = false
			break
		}
	}
	return model.Outcome{Verified: verified, Results: results}
}

func strval(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
