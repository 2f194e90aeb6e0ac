package cliparse

import (
	"errors"
	"flag"
	"os"

	"github.com/danielhkuo/vote-report/models"
)

type Config struct {
	InputPath       string
	DefinitionsPath string
	OutputDir       string
	DatabaseURL     string
	DatabaseType    string
	SortLocale      string
	Delimiter       string
	LogFile         string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vote-report", flag.ContinueOnError)

	fs.StringVar(&cfg.InputPath, "i", "", "Survey export file (.xlsx or .csv)")
	fs.StringVar(&cfg.DefinitionsPath, "c", "", "Category definitions file (.json or .yaml)")
	fs.StringVar(&cfg.OutputDir, "o", "", "Report output directory")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Archive database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SortLocale, "locale", "", "Tie-break sort locale (pinyin, fold, or a BCP-47 tag)")
	fs.StringVar(&cfg.Delimiter, "delimiter", "", "Multi-select cell delimiter")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Debug log file path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("INPUT_FILE")
	}
	if cfg.InputPath == "" {
		return Config{}, errors.New("input file required (use -i or INPUT_FILE env)")
	}

	if cfg.DefinitionsPath == "" {
		cfg.DefinitionsPath = os.Getenv("DEFINITIONS_FILE")
	}
	if cfg.DefinitionsPath == "" {
		return Config{}, errors.New("definitions file required (use -c or DEFINITIONS_FILE env)")
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv("OUTPUT_DIR")
		if cfg.OutputDir == "" {
			cfg.OutputDir = "reports"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DatabaseSQLite
		}
	}
	if cfg.DatabaseType != models.DatabaseSQLite && cfg.DatabaseType != models.DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.SortLocale == "" {
		cfg.SortLocale = os.Getenv("SORT_LOCALE")
		if cfg.SortLocale == "" {
			cfg.SortLocale = models.LocalePinyin
		}
	}

	if cfg.Delimiter == "" {
		cfg.Delimiter = os.Getenv("SELECTION_DELIMITER")
		if cfg.Delimiter == "" {
			cfg.Delimiter = ";"
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("LOG_FILE")
		if cfg.LogFile == "" {
			cfg.LogFile = "logs/vote-report.log"
		}
	}

	return cfg, nil
}
