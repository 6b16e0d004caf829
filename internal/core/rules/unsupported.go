package rules

import (
	"fmt"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

type unsupportedRules struct {
	category model.DocumentCategory
}

func (u unsupportedRules) Verify(model.ExtractedRecord) model.Outcome {
	return model.Outcome{
		Verified: false,
		Results: []model.CheckResult{{
			Rule:    "Type Support",
			Status:  model.StatusFailed,
			Details: fmt.Sprintf("Detected type '%s' not supported", u.category),
		}},
	}
}
