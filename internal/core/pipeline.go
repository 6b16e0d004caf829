// Package core sequences the verification stages for one uploaded document:
// category resolution, the category's rule set, and confidence aggregation.
// Everything in here is pure and synchronous; collaborator failures never
// enter, and validation failures come back as data in the report.
package core

import (
	"time"

	"github.com/veriflowhq/veriflow/internal/core/confidence"
	"github.com/veriflowhq/veriflow/internal/core/doctype"
	"github.com/veriflowhq/veriflow/internal/core/model"
	"github.com/veriflowhq/veriflow/internal/core/rules"
)

type Pipeline struct {
	now func() time.Time
}

func NewPipeline() *Pipeline {
	return &Pipeline{now: time.Now}
}

// Run produces the finished report for one extracted record. The record's
// own document_type field serves as the model hint for category resolution.
func (p *Pipeline) Run(rec model.ExtractedRecord, extractionQuality float64, metadataHint, fileName string) model.Report {
	var llmHint string
	if rec.DocumentType != nil {
		llmHint = *rec.DocumentType
	}

	category := doctype.Resolve(metadataHint, llmHint, fileName)
	out := rules.ForCategory(category, p.now).Verify(rec)
	score := confidence.Score(extractionQuality, rec.SemanticCertainty, out)

	return model.Report{
		Category:       category,
		Outcome:        out,
		Score:          score,
		DocumentNumber: rec.DocumentNumber,
		ExpiryDate:     rec.ExpiryDate,
	}
}
