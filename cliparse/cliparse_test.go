// cliparse/cliparse_test.go
package cliparse

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"INPUT_FILE", "DEFINITIONS_FILE", "OUTPUT_DIR", "DATABASE_URL",
		"DATABASE_TYPE", "SORT_LOCALE", "SELECTION_DELIMITER", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-i", "answers.xlsx", "-c", "categories.yaml", "-o", "out"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.InputPath != "answers.xlsx" || cfg.DefinitionsPath != "categories.yaml" {
		t.Errorf("Unexpected paths: %+v", cfg)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("Expected output dir out, got %s", cfg.OutputDir)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-i", "in.csv", "-c", "defs.json"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("Expected default output dir, got %s", cfg.OutputDir)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.SortLocale != "pinyin" {
		t.Errorf("Expected default locale pinyin, got %s", cfg.SortLocale)
	}
	if cfg.Delimiter != ";" {
		t.Errorf("Expected default delimiter ;, got %q", cfg.Delimiter)
	}
	if cfg.LogFile != "logs/vote-report.log" {
		t.Errorf("Expected default log file, got %s", cfg.LogFile)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Archive should be off by default, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_FILE", "env.csv")
	t.Setenv("DEFINITIONS_FILE", "env.yaml")
	t.Setenv("SORT_LOCALE", "fold")
	t.Setenv("DATABASE_URL", "archive.db")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.InputPath != "env.csv" || cfg.DefinitionsPath != "env.yaml" {
		t.Errorf("Env fallback not applied: %+v", cfg)
	}
	if cfg.SortLocale != "fold" {
		t.Errorf("Expected locale fold from env, got %s", cfg.SortLocale)
	}
	if cfg.DatabaseURL != "archive.db" {
		t.Errorf("Expected database URL from env, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_FILE", "env.csv")
	t.Setenv("DEFINITIONS_FILE", "env.yaml")

	cfg, err := ParseFlags([]string{"-i", "flag.csv"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.InputPath != "flag.csv" {
		t.Errorf("CLI flag should beat env, got %s", cfg.InputPath)
	}
	if cfg.DefinitionsPath != "env.yaml" {
		t.Errorf("Env should fill unset flags, got %s", cfg.DefinitionsPath)
	}
}

func TestParseFlagsMissingRequired(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags(nil); err == nil || !strings.Contains(err.Error(), "input file") {
		t.Errorf("Expected input file error, got %v", err)
	}
	if _, err := ParseFlags([]string{"-i", "in.csv"}); err == nil || !strings.Contains(err.Error(), "definitions file") {
		t.Errorf("Expected definitions file error, got %v", err)
	}
}

func TestParseFlagsBadDatabaseType(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-i", "in.csv", "-c", "defs.json", "-t", "oracle"})
	if err == nil || !strings.Contains(err.Error(), "sqlite or postgres") {
		t.Errorf("Expected database type error, got %v", err)
	}
}
