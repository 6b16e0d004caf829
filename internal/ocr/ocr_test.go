package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVision struct {
	Response string
	Err      error
	Prompt   string
	MimeType string
	Image    []byte
}

func (m *mockVision) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m.Prompt = prompt
	m.Image = image
	m.MimeType = mimeType
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractImage(t *testing.T) {
	vision := &mockVision{Response: "  REPUBLIC OF UTOPIA PASSPORT A1234567B  "}
	reader := NewReader(vision, "read all the text")

	path := writeTempFile(t, "scan.png", []byte("fake png bytes"))
	text, confidence, err := reader.Extract(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "REPUBLIC OF UTOPIA PASSPORT A1234567B", text)
	assert.Equal(t, 0.95, confidence)
	assert.Equal(t, "read all the text", vision.Prompt)
	assert.Equal(t, "image/png", vision.MimeType)
	assert.Equal(t, []byte("fake png bytes"), vision.Image)
}

func TestExtractImageShortTextLowConfidence(t *testing.T) {
	vision := &mockVision{Response: "ID 123"}
	reader := NewReader(vision, "read all the text")

	path := writeTempFile(t, "scan.jpg", []byte("fake jpeg bytes"))
	text, confidence, err := reader.Extract(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "ID 123", text)
	assert.Equal(t, 0.40, confidence)
}

func TestExtractImageVisionFailure(t *testing.T) {
	vision := &mockVision{Err: errors.New("rate limited")}
	reader := NewReader(vision, "read all the text")

	path := writeTempFile(t, "scan.jpg", []byte("fake jpeg bytes"))
	_, _, err := reader.Extract(context.Background(), path)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "vision ocr failed"))
}

func TestExtractPDFOpenFailure(t *testing.T) {
	// Not a PDF: the text-layer path errors instead of calling the vision LLM.
	vision := &mockVision{Response: "should not be used"}
	reader := NewReader(vision, "read all the text")

	path := writeTempFile(t, "doc.pdf", []byte("not a real pdf"))
	_, _, err := reader.Extract(context.Background(), path)

	require.Error(t, err)
	assert.Empty(t, vision.Prompt)
}
