package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/clients/console"
	"max.ks1230/yachtfleet/internal/config"
	"max.ks1230/yachtfleet/internal/entity/rental"
	"max.ks1230/yachtfleet/internal/logger"
	"max.ks1230/yachtfleet/internal/model/reports"
	"max.ks1230/yachtfleet/internal/model/storage"
)

const (
	readFailedMessage = "Hiba a fájl beolvasásakor: "
	conflictMessage   = "Figyelem: a(z) %d. yacht bérlései átfedik egymást (%d. és %d. bérlés)"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf, err := config.New(config.DefaultFile)
	if err != nil {
		logger.Error("failed to init config", zap.Error(err))
		return 1
	}
	if err = logger.Init(conf.Log()); err != nil {
		logger.Error("failed to init logger", zap.Error(err))
		return 1
	}
	defer logger.Sync()

	logger.Info("Rentals report - start")
	defer logger.Info("Rentals report - end")

	records, err := storage.NewRentalStorage(conf.App().RentalsFile()).Load()
	if err != nil {
		logger.Error("failed to load rentals", zap.Error(err))
		fmt.Fprintln(os.Stderr, readFailedMessage+errors.Cause(err).Error())
		return 1
	}

	cli := console.New(os.Stdin, os.Stdout)
	for _, c := range rental.FindConflicts(records) {
		logger.Warn("overlapping rentals of the same yacht",
			zap.Int64("yachtID", c.First.YachtID),
			zap.Int64("first", c.First.UID),
			zap.Int64("second", c.Second.UID))
		err = cli.SendMessage(fmt.Sprintf(conflictMessage, c.First.YachtID, c.First.UID, c.Second.UID))
		if err != nil {
			logger.Error("failed to print warning", zap.Error(err))
			return 1
		}
	}
	month, err := cli.AskMonth()
	if err != nil {
		logger.Error("failed to read month", zap.Error(err))
		return 1
	}

	report, err := reports.NewGenerator(conf.App()).Generate(records, month)
	if err != nil {
		logger.Error("failed to generate report", zap.Error(err))
		return 1
	}
	if err = report.Render(cli.Writer()); err != nil {
		logger.Error("failed to print report", zap.Error(err))
		return 1
	}
	return 0
}
