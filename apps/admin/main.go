package main

import (
	"context"
	"log"
	"os"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/gradebook"
	logsvc "github.com/Jeevana090908/stdgrd/services/logger"
	"github.com/Jeevana090908/stdgrd/storage"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds), conf)
	ctx := context.Background()

	store, err := storage.Open(ctx, conf, logger)
	if err != nil {
		logger.Fatal("opening store", err)
	}

	svc, err := gradebook.NewService(ctx, store)
	if err != nil {
		_ = store.Close()
		logger.Fatal("loading records", err)
	}

	cli := commandLine{svc: svc, out: os.Stdout}
	if m, ok := store.(migrator); ok {
		cli.migrator = m
	}
	err = cli.run(os.Args)
	if err != nil && err != errHelp {
		logger.Error("command failed", err)
	}
	if cErr := store.Close(); cErr != nil {
		logger.Error("closing store", cErr)
	}
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
