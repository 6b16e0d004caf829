// Package ocr acquires raw text from an uploaded document file. Images go
// through the vision LLM; PDFs are read from their text layer directly.
// The confidence returned alongside the text is the extractor's own quality
// estimate, consumed later by confidence scoring.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/veriflowhq/veriflow/internal/llm"
)

type Reader struct {
	Vision llm.VisionClient
	Prompt string
}

func NewReader(vision llm.VisionClient, prompt string) *Reader {
	return &Reader{
		Vision: vision,
		Prompt: prompt,
	}
}

// Extract returns the document text and a quality estimate in [0,1].
func (r *Reader) Extract(ctx context.Context, filePath string) (string, float64, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return extractPDF(filePath)
	}
	return r.extractImage(ctx, filePath)
}

func extractPDF(filePath string) (string, float64, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", 0, fmt.Errorf("failed to read pdf text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	confidence := 0.40
	if len([]rune(text)) > 50 {
		confidence = 0.90
	}
	return text, confidence, nil
}

func (r *Reader) extractImage(ctx context.Context, filePath string) (string, float64, error) {
	image, err := os.ReadFile(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filePath)))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	text, err := r.Vision.GenerateVision(ctx, r.Prompt, image, mimeType)
	if err != nil {
		return "", 0, fmt.Errorf("vision ocr failed: %w", err)
	}

	text = strings.TrimSpace(text)
	confidence := 0.40
	if len([]rune(text)) > 20 {
		confidence = 0.95
	}
	return text, confidence, nil
}
