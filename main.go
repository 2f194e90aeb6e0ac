package main

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/vote-report/cliparse"
	"github.com/danielhkuo/vote-report/db"
	"github.com/danielhkuo/vote-report/importer"
	"github.com/danielhkuo/vote-report/logging"
	"github.com/danielhkuo/vote-report/models"
	"github.com/danielhkuo/vote-report/report"
	"github.com/danielhkuo/vote-report/tally"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	if err := logging.Setup(cfg.LogFile); err != nil {
		slog.Error("logging setup failed", "error", err)
		return 1
	}
	slog.Info("log file ready", "path", cfg.LogFile)

	defs, err := importer.LoadDefinitions(cfg.DefinitionsPath)
	if err != nil {
		slog.Error("definitions load failed", "error", err)
		return 1
	}

	rows, err := importer.ReadRows(cfg.InputPath)
	if err != nil {
		slog.Error("input read failed", "error", err)
		return 1
	}

	rep, err := tally.Run(defs, rows, tally.Options{
		Delimiter: cfg.Delimiter,
		SortKey:   tally.KeyForLocale(cfg.SortLocale),
	})
	if err != nil {
		slog.Error("tally failed", "error", err)
		return 1
	}

	base := filepath.Join(cfg.OutputDir, "vote_analysis_report")
	if err := report.WriteMarkdown(rep, base+".md"); err != nil {
		slog.Error("markdown write failed", "error", err)
		return 1
	}
	if err := report.WriteJSON(rep, base+".json"); err != nil {
		slog.Error("JSON write failed", "error", err)
		return 1
	}
	if err := report.WriteMsgpack(rep, base+".msgpack"); err != nil {
		slog.Error("msgpack write failed", "error", err)
		return 1
	}

	if cfg.DatabaseURL != "" {
		if err := archive(cfg, rep); err != nil {
			slog.Error("archive failed", "error", err)
			return 1
		}
	}

	slog.Info("run complete", "run_id", rep.RunID, "output", cfg.OutputDir)
	return 0
}

func archive(cfg cliparse.Config, rep models.Report) error {
	driver := "sqlite"
	if cfg.DatabaseType == models.DatabasePostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return err
	}
	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	return db.SaveReport(conn, rep)
}
