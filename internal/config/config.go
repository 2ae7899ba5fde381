package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/regextract/internal/parser"
	"github.com/dgallion1/regextract/internal/rules"
)

const usageHint = `Type "regextract --help" for usage help.`

type Config struct {
	Port string

	// Auth for the HTTP API; empty disables it.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Extraction
	RulesPath string
	Segmenter string

	// Rolling window for processing stats.
	StatsWindow time.Duration

	LogLevel slog.Level

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("REGEXTRACT_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		RulesPath: os.Getenv("REGEXTRACT_RULES"),
		Segmenter: envOr("SEGMENTER", "punkt"),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

// Rules loads the rule tables named by RulesPath, or the defaults.
func (c Config) Rules() (rules.Rules, error) {
	if c.RulesPath == "" {
		return rules.Default(), nil
	}
	return rules.Load(c.RulesPath)
}

// ParserOptions returns the parser settings.
func (c Config) ParserOptions() parser.Options {
	return parser.Options{PDFFallbackPdftotext: c.PDFFallbackPdftotext}
}

// ValidateOutput accepts an existing directory, or a .csv path whose parent
// directory exists.
func ValidateOutput(out string) error {
	if out == "" {
		return fmt.Errorf("no valid CSV output file specified. %s", usageHint)
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return nil
	}
	if info, err := os.Stat(filepath.Dir(out)); err != nil || !info.IsDir() {
		return fmt.Errorf("the specified directory for your output CSV file is not valid or does not exist. First create it. %s", usageHint)
	}
	if !strings.HasSuffix(strings.ToLower(filepath.Base(out)), ".csv") {
		return fmt.Errorf("not a valid output file extension. CSV expected. %s", usageHint)
	}
	return nil
}

// ValidateInput requires an existing directory holding at least one .pdf or
// .html file.
func ValidateInput(in string) error {
	if in == "" {
		return fmt.Errorf("no valid input directory specified. %s", usageHint)
	}
	info, err := os.Stat(in)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("the specified input directory is not valid or does not exist. First create it. %s", usageHint)
	}
	entries, err := os.ReadDir(in)
	if err != nil {
		return fmt.Errorf("read input directory: %w", err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() && parser.IsSupportedExtension(e.Name()) {
			return nil
		}
	}
	return fmt.Errorf("no valid .pdf or .html files found in input directory")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return fallback
}
