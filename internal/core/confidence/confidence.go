// Package confidence blends the imperfect signals of one verification run
// into a single normalized trust score.
package confidence

import (
	"math"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

// Fixed weights, summing to 1.0.
const (
	extractionWeight = 0.30
	semanticWeight   = 0.20
	ruleWeight       = 0.50
)

var certaintyScale = map[string]float64{
	model.CertaintyHigh:   1.0,
	model.CertaintyMedium: 0.7,
	model.CertaintyLow:    0.4,
}

// Score combines the extraction quality, the model's self-reported
// certainty and the rule outcome. A fully verified outcome earns the whole
// rule weight; otherwise the weight is prorated by the share of passed
// checks. The result is rounded half away from zero to two decimals and
// always lands in [0,1].
func Score(extractionQuality float64, semanticCertainty *string, out model.Outcome) float64 {
	score := extractionQuality * extractionWeight

	semantic := 0.5
	if semanticCertainty != nil {
		if s, ok := certaintyScale[*semanticCertainty]; ok {
			semantic = s
		}
	}
	score += semantic * semanticWeight

	switch {
	case out.Verified:
		score += ruleWeight
	case len(out.Results) > 0:
		passed := 0
		for _, r := range out.Results {
			if r.Status == model.StatusPassed {
				passed++
			}
		}
		score += float64(passed) / float64(len(out.Results)) * ruleWeight
	}

	return math.Round(score*100) / 100
}
