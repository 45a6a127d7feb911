package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/azaliaz/folioverse/internal/cli"
	"github.com/azaliaz/folioverse/internal/config"
	"github.com/azaliaz/folioverse/internal/logger"
	"github.com/azaliaz/folioverse/internal/storage"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		<-c

		log.Debug().Msg("ctx cancel; catch os signal")
		cancel()
	}()

	log.Debug().Any("cfg", cfg).Send()

	catalog := storage.NewCatalog()
	accounts := storage.NewAccounts()
	ledger := storage.NewLedger()
	carts := storage.NewCarts(catalog, ledger)

	app := cli.New(*cfg, catalog, accounts, carts, ledger, os.Stdin, os.Stdout)

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()
		return app.Run(gCtx)
	})
	group.Go(func() error {
		// unblock the scanner's pending read so the loop can exit
		<-gCtx.Done()
		return os.Stdin.Close()
	})

	if err = group.Wait(); err != nil && ctx.Err() == nil {
		log.Info().Str("stopping reason", err.Error()).Msg("store stopped")
		return
	}
	log.Info().Msg("store stopped")
}
