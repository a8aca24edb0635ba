package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hollomarton/naplo/internal/cli"
	"github.com/hollomarton/naplo/internal/cli/formatter"
	"github.com/hollomarton/naplo/internal/config"
	"github.com/hollomarton/naplo/internal/db"
	"github.com/hollomarton/naplo/internal/repository"
	"github.com/hollomarton/naplo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	paramRepo := repository.NewSQLiteParamRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Entries: service.NewEntryService(entryRepo, uow),
		Reports: service.NewReportService(entryRepo),
		Search:  service.NewSearchService(entryRepo),
		Params:  service.NewParamService(entryRepo, paramRepo),
		Import:  service.NewImportService(entryRepo),
		Config:  cfg,
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	return cli.NewRootCmd(app).Execute()
}
