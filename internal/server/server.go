package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/veriflowhq/veriflow/internal/config"
	"github.com/veriflowhq/veriflow/internal/core"
	"github.com/veriflowhq/veriflow/internal/core/model"
	"github.com/veriflowhq/veriflow/internal/extract"
	"github.com/veriflowhq/veriflow/internal/llm"
	"github.com/veriflowhq/veriflow/internal/notify"
	"github.com/veriflowhq/veriflow/internal/ocr"
)

// TextReader acquires raw text and a quality estimate from a staged file.
type TextReader interface {
	Extract(ctx context.Context, filePath string) (string, float64, error)
}

// FieldParser turns raw text into the structured record the pipeline consumes.
type FieldParser interface {
	Parse(ctx context.Context, rawText string) model.ExtractedRecord
}

// ResultMailer delivers the finished report to a recipient address.
type ResultMailer interface {
	SendResult(to string, report model.Report) error
}

type Server struct {
	Pipeline  *core.Pipeline
	OCR       TextReader
	Extractor FieldParser
	Mailer    ResultMailer
	UploadDir string
	MaxUpload int64
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Env vars win over the config file (simple override logic).
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	textClient, visionClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	return &Server{
		Pipeline:  core.NewPipeline(),
		OCR:       ocr.NewReader(visionClient, cfg.Prompts.OCR),
		Extractor: extract.NewExtractor(textClient, cfg.Prompts.Extraction),
		Mailer:    notify.NewMailer(cfg.SMTP),
		UploadDir: cfg.Upload.Dir,
		MaxUpload: cfg.Upload.MaxSizeMB << 20,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Status)
	r.GET("/health", s.Health)
	r.POST("/api/upload", s.Upload)

	return r
}
