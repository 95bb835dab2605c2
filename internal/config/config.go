package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port   string
	APIKey string

	// Section bounds
	MinSectionLength int
	MaxSectionLength int

	// Output partitioning
	BatchByteBudget int
	AlarmBytes      int

	// Output
	OutputDir string

	// Batch runs
	WorkerCount int

	// Classifier fallback
	HeaderPrefixes []string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port:   envOr("PORT", "8091"),
		APIKey: os.Getenv("DOCSECT_API_KEY"),

		MinSectionLength: envInt("DOCSECT_MIN_SECTION_LENGTH", 50),
		MaxSectionLength: envInt("DOCSECT_MAX_SECTION_LENGTH", 3000),

		BatchByteBudget: envInt("DOCSECT_BATCH_BYTE_BUDGET", 3584*1024), // 3.5MB
		AlarmBytes:      envInt("DOCSECT_ALARM_BYTES", 4*1024*1024),    // 4MB

		OutputDir: envOr("DOCSECT_OUTPUT_DIR", "knowledge_base"),

		WorkerCount: envInt("DOCSECT_WORKER_COUNT", 4),

		HeaderPrefixes: envList("DOCSECT_HEADER_PREFIXES", []string{"KDIGO"}),

		PDFFallbackPdftotext: envBool("DOCSECT_PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MinSectionLength <= 0 {
		cfg.MinSectionLength = 50
	}
	if cfg.MaxSectionLength <= 0 {
		cfg.MaxSectionLength = 3000
	}
	if cfg.BatchByteBudget <= 0 {
		cfg.BatchByteBudget = 3584 * 1024
	}
	if cfg.AlarmBytes <= 0 {
		cfg.AlarmBytes = 4 * 1024 * 1024
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.MinSectionLength >= c.MaxSectionLength {
		return fmt.Errorf("min section length (%d) must be below max (%d)", c.MinSectionLength, c.MaxSectionLength)
	}
	if c.BatchByteBudget > c.AlarmBytes {
		return fmt.Errorf("batch budget (%d) must not exceed alarm threshold (%d)", c.BatchByteBudget, c.AlarmBytes)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
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

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
