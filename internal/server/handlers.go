package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "active",
		"system":  "Document Verification API",
		"version": "1.0.1",
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Upload stages the document, runs OCR, extraction and the verification
// pipeline, then answers with the finished report. Notification is fired
// in the background so delivery never delays the response.
func (s *Server) Upload(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
		return
	}
	if s.MaxUpload > 0 && file.Size > s.MaxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File too large"})
		return
	}

	start := time.Now()
	email := c.PostForm("email")
	metadataType := c.PostForm("metadataType")

	staged := filepath.Join(s.UploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, staged); err != nil {
		log.Printf("Failed to stage upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store upload"})
		return
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			log.Printf("Warning: failed to delete staged file %s: %v", staged, err)
		}
	}()

	log.Printf("Processing file: %s", file.Filename)

	text, quality, err := s.OCR.Extract(c.Request.Context(), staged)
	if err != nil {
		log.Printf("OCR failed for %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "ocr: " + err.Error()})
		return
	}

	rec := s.Extractor.Parse(c.Request.Context(), text)
	report := s.Pipeline.Run(rec, quality, metadataType, file.Filename)

	if email != "" {
		go func() {
			if err := s.Mailer.SendResult(email, report); err != nil {
				log.Printf("Email error: %v", err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"status":           report.Status(),
			"confidence_score": report.Score,
			"document_type":    report.Category,
			"extracted_data": gin.H{
				"document_number": report.DocumentNumber,
				"expiry_date":     report.ExpiryDate,
			},
			"verification_details":    report.Outcome.Results,
			"processing_time_seconds": fmt.Sprintf("%.2f", time.Since(start).Seconds()),
		},
	})
}
