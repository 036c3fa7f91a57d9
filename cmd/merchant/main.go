package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/monash-merchant/merchant/internal/app"
	"github.com/monash-merchant/merchant/internal/auth"
	"github.com/monash-merchant/merchant/internal/cart"
	"github.com/monash-merchant/merchant/internal/catalog"
	"github.com/monash-merchant/merchant/internal/shell"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	repo, err := catalog.NewRepository(cfg.DataDir)
	if err != nil {
		logger.Error("open catalog tables", slog.Any("error", err))
		os.Exit(1)
	}
	catalogSvc := catalog.NewService(repo)
	authSvc := auth.NewService(logger, cfg.DataDir)

	ledger := cart.NewLedger(catalog.NewLedgerAdapter(repo))
	if err := ledger.Reload(); err != nil {
		logger.Error("load product ledger", slog.Any("error", err))
		os.Exit(1)
	}

	sh := shell.New(logger, os.Stdin, os.Stdout, catalogSvc, authSvc, ledger)
	if err := sh.Run(); err != nil {
		logger.Error("shell terminated", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println("Goodbye.")
}
