package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultLanguages is the stock target list, in generation order.
var DefaultLanguages = []string{"ja", "nl", "it", "pt", "ru", "zh-CN", "ko", "pl", "tr", "sv", "no"}

const defaultTemplatePath = "locales/en.json"

type Config struct {
	TemplatePath string
	OutputDir    string
	Languages    []string
	UILocale     string
}

// Load reads the configuration from environment variables, applies defaults
// and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (shell, CI, etc.).
	}

	cfg := &Config{
		TemplatePath: os.Getenv("TEMPLATE_PATH"),
		OutputDir:    os.Getenv("OUTPUT_DIR"),
		UILocale:     os.Getenv("UI_LOCALE"),
	}

	if raw, set := os.LookupEnv("LANGUAGES"); set {
		cfg.Languages = SplitLanguages(raw)
		if len(cfg.Languages) == 0 {
			return nil, fmt.Errorf("config: LANGUAGES is set but contains no language codes")
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SplitLanguages parses a comma-separated list of language codes, dropping
// empty entries and surrounding whitespace.
func SplitLanguages(raw string) []string {
	var langs []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			langs = append(langs, part)
		}
	}
	return langs
}

// validate applies defaults and business rules to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.TemplatePath) == "" {
		c.TemplatePath = defaultTemplatePath
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		// The original scripts disagreed on the destination (current directory
		// vs. project-relative path); writing next to the template satisfies
		// both readings.
		c.OutputDir = filepath.Dir(c.TemplatePath)
	}

	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), DefaultLanguages...)
	}

	if strings.TrimSpace(c.UILocale) == "" {
		c.UILocale = "en"
	}

	return nil
}
