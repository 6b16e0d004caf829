// Package extract turns raw OCR text into the structured record the
// verification pipeline consumes, using the configured LLM.
package extract

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/veriflowhq/veriflow/internal/core/common"
	"github.com/veriflowhq/veriflow/internal/core/model"
	"github.com/veriflowhq/veriflow/internal/llm"
)

type Extractor struct {
	LLM    llm.Client
	Prompt string
}

func NewExtractor(client llm.Client, prompt string) *Extractor {
	return &Extractor{
		LLM:    client,
		Prompt: prompt,
	}
}

// Parse asks the LLM for the structured fields of the document. Model or
// parse failures degrade to an "other" record carrying the failure as an
// inconsistency, so the caller always gets a usable record.
func (e *Extractor) Parse(ctx context.Context, rawText string) model.ExtractedRecord {
	prompt := fmt.Sprintf(e.Prompt, time.Now().Format("2006-01-02"), rawText)

	response, err := e.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Extraction LLM call failed: %v", err)
		return fallbackRecord(err)
	}

	rec, err := common.ParseJSON[model.ExtractedRecord](response)
	if err != nil {
		log.Printf("Extraction response unusable: %v", err)
		return fallbackRecord(err)
	}
	return rec
}

func fallbackRecord(cause error) model.ExtractedRecord {
	docType := string(model.CategoryOther)
	certainty := model.CertaintyLow
	return model.ExtractedRecord{
		DocumentType:      &docType,
		Inconsistencies:   []string{"LLM processing failed: " + cause.Error()},
		SemanticCertainty: &certainty,
	}
}
