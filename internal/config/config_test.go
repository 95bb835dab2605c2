package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DOCSECT_API_KEY", "")

	cfg := Load()

	if cfg.Port != "8091" {
		t.Errorf("expected default port 8091, got %s", cfg.Port)
	}
	if cfg.MinSectionLength != 50 || cfg.MaxSectionLength != 3000 {
		t.Errorf("unexpected section bounds: %d / %d", cfg.MinSectionLength, cfg.MaxSectionLength)
	}
	if cfg.BatchByteBudget != 3584*1024 {
		t.Errorf("unexpected batch budget: %d", cfg.BatchByteBudget)
	}
	if cfg.AlarmBytes != 4*1024*1024 {
		t.Errorf("unexpected alarm threshold: %d", cfg.AlarmBytes)
	}
	if cfg.OutputDir != "knowledge_base" {
		t.Errorf("unexpected output dir: %s", cfg.OutputDir)
	}
	if len(cfg.HeaderPrefixes) != 1 || cfg.HeaderPrefixes[0] != "KDIGO" {
		t.Errorf("unexpected header prefixes: %v", cfg.HeaderPrefixes)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DOCSECT_MIN_SECTION_LENGTH", "20")
	t.Setenv("DOCSECT_MAX_SECTION_LENGTH", "1000")
	t.Setenv("DOCSECT_HEADER_PREFIXES", "KDIGO, NICE ,WHO")
	t.Setenv("DOCSECT_PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.MinSectionLength != 20 || cfg.MaxSectionLength != 1000 {
		t.Errorf("unexpected section bounds: %d / %d", cfg.MinSectionLength, cfg.MaxSectionLength)
	}
	want := []string{"KDIGO", "NICE", "WHO"}
	if len(cfg.HeaderPrefixes) != len(want) {
		t.Fatalf("unexpected prefixes: %v", cfg.HeaderPrefixes)
	}
	for i := range want {
		if cfg.HeaderPrefixes[i] != want[i] {
			t.Errorf("prefix %d: expected %q, got %q", i, want[i], cfg.HeaderPrefixes[i])
		}
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DOCSECT_MIN_SECTION_LENGTH", "not-a-number")
	t.Setenv("DOCSECT_WORKER_COUNT", "-2")

	cfg := Load()
	if cfg.MinSectionLength != 50 {
		t.Errorf("expected fallback min 50, got %d", cfg.MinSectionLength)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected clamped worker count 4, got %d", cfg.WorkerCount)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"min at max", func(c *Config) { c.MinSectionLength = c.MaxSectionLength }, true},
		{"budget above alarm", func(c *Config) { c.BatchByteBudget = c.AlarmBytes + 1 }, true},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
