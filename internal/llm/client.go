package llm

import (
	"context"
)

// Client generates text from a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// VisionClient reads a document image under the given prompt. image is the
// raw file contents; mimeType tells the provider how to decode it.
type VisionClient interface {
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
