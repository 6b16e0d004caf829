package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriflowhq/veriflow/internal/core"
	"github.com/veriflowhq/veriflow/internal/core/model"
)

type mockReader struct {
	Text       string
	Confidence float64
	Err        error
}

func (m *mockReader) Extract(ctx context.Context, filePath string) (string, float64, error) {
	if m.Err != nil {
		return "", 0, m.Err
	}
	return m.Text, m.Confidence, nil
}

type mockParser struct {
	Record model.ExtractedRecord
}

func (m *mockParser) Parse(ctx context.Context, rawText string) model.ExtractedRecord {
	return m.Record
}

type mockMailer struct {
	Sent chan model.Report
}

func (m *mockMailer) SendResult(to string, report model.Report) error {
	m.Sent <- report
	return nil
}

func strptr(s string) *string {
	return &s
}

func testServer(reader *mockReader, parser *mockParser, mailer *mockMailer) *Server {
	return &Server{
		Pipeline:  core.NewPipeline(),
		OCR:       reader,
		Extractor: parser,
		Mailer:    mailer,
		UploadDir: os.TempDir(),
		MaxUpload: 10 << 20,
	}
}

func uploadRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("document", "id_scan.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Status          string           `json:"status"`
		ConfidenceScore float64          `json:"confidence_score"`
		DocumentType    string           `json:"document_type"`
		ExtractedData   map[string]any   `json:"extracted_data"`
		Details         []map[string]any `json:"verification_details"`
	} `json:"data"`
}

func TestUploadVerified(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reader := &mockReader{Text: "NATIONAL ID 12345678 EXP 2030-06-01", Confidence: 0.95}
	parser := &mockParser{Record: model.ExtractedRecord{
		DocumentType:      strptr("national_id"),
		DocumentNumber:    strptr("12345678"),
		ExpiryDate:        strptr("2030-06-01"),
		SemanticCertainty: strptr(model.CertaintyHigh),
	}}
	mailer := &mockMailer{Sent: make(chan model.Report, 1)}

	srv := testServer(reader, parser, mailer)
	w := httptest.NewRecorder()
	srv.SetupRouter().ServeHTTP(w, uploadRequest(t, map[string]string{"email": "user@example.com"}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Verified", resp.Data.Status)
	assert.Equal(t, "national_id", resp.Data.DocumentType)
	assert.Equal(t, "12345678", resp.Data.ExtractedData["document_number"])
	assert.GreaterOrEqual(t, resp.Data.ConfidenceScore, 0.5)
	require.Len(t, resp.Data.Details, 2)

	select {
	case report := <-mailer.Sent:
		assert.Equal(t, "Verified", report.Status())
	case <-time.After(time.Second):
		t.Fatal("expected a result email to be sent")
	}
}

func TestUploadNoEmailSkipsNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reader := &mockReader{Text: "some text", Confidence: 0.9}
	parser := &mockParser{Record: model.ExtractedRecord{DocumentType: strptr("other")}}
	mailer := &mockMailer{Sent: make(chan model.Report, 1)}

	srv := testServer(reader, parser, mailer)
	w := httptest.NewRecorder()
	srv.SetupRouter().ServeHTTP(w, uploadRequest(t, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed", resp.Data.Status)
	assert.Equal(t, "other", resp.Data.DocumentType)

	select {
	case <-mailer.Sent:
		t.Fatal("no email should be sent without a recipient")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUploadMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := testServer(&mockReader{}, &mockParser{}, &mockMailer{Sent: make(chan model.Report, 1)})
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	srv.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestUploadOCRFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reader := &mockReader{Err: errors.New("vision ocr failed: timeout")}
	srv := testServer(reader, &mockParser{}, &mockMailer{Sent: make(chan model.Report, 1)})
	w := httptest.NewRecorder()
	srv.SetupRouter().ServeHTTP(w, uploadRequest(t, nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ocr:")
}

func TestStatusRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := testServer(&mockReader{}, &mockParser{}, &mockMailer{Sent: make(chan model.Report, 1)})
	w := httptest.NewRecorder()
	srv.SetupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "active")
}
