package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type PromptsConfig struct {
	OCR        string `toml:"ocr"`
	Extraction string `toml:"extraction"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type UploadConfig struct {
	Dir       string `toml:"dir"`
	MaxSizeMB int64  `toml:"max_size_mb"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Prompts PromptsConfig `toml:"prompts"`
	SMTP    SMTPConfig    `toml:"smtp"`
	Upload  UploadConfig  `toml:"upload"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
