// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Divyashree2811/job-search-automation/internal/lang"
)

type Config struct {
	//Paths
	DatabasePath      string `yaml:"database_path"`
	ImportantJobsPath string `yaml:"important_jobs_path"`
	ReviewListPath    string `yaml:"review_list_path"`
	ResumeProfilePath string `yaml:"resume_profile_path"`
	//Matching heuristics
	KeySkills       []string `yaml:"key_skills"`
	GermanThreshold int      `yaml:"german_threshold"`
	RetentionDays   int      `yaml:"retention_days"`
	//AI backend
	OllamaHost  string `yaml:"ollama_host" env:"OLLAMA_HOST"`
	OllamaModel string `yaml:"ollama_model" env:"OLLAMA_MODEL"`
	//Telegram notifications (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		cfg.OllamaHost = host
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		cfg.OllamaModel = model
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/analyzed-jobs.json"
	}
	if cfg.ImportantJobsPath == "" {
		cfg.ImportantJobsPath = "data/important-jobs.json"
	}
	if cfg.ReviewListPath == "" {
		cfg.ReviewListPath = "data/apply-to-these.json"
	}
	if cfg.ResumeProfilePath == "" {
		cfg.ResumeProfilePath = "configs/resume.yaml"
	}
	if len(cfg.KeySkills) == 0 {
		cfg.KeySkills = []string{"playwright", "python", "typescript"}
	}
	if cfg.GermanThreshold == 0 {
		cfg.GermanThreshold = lang.DefaultGermanThreshold
	}
	if cfg.RetentionDays == 0 {
		cfg.RetentionDays = 30
	}
	if cfg.OllamaHost == "" {
		cfg.OllamaHost = "http://localhost:11434"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "llama3.2"
	}

	return cfg
}

// TelegramEnabled reports whether notification credentials are configured.
// Telegram is optional; missing credentials just disable the notifier.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
