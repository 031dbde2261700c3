package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/clients/tui"
	"max.ks1230/yachtfleet/internal/config"
	"max.ks1230/yachtfleet/internal/logger"
	"max.ks1230/yachtfleet/internal/model/expenses"
	"max.ks1230/yachtfleet/internal/model/storage"
)

// The form owns the terminal, so logs go to a file by default.
const defaultLogFile = "yacht_koltsegek.log"

func main() {
	os.Exit(run())
}

func run() int {
	conf, err := config.New(config.DefaultFile, config.WithLogOutputs(defaultLogFile))
	if err != nil {
		logger.Error("failed to init config", zap.Error(err))
		return 1
	}
	if err = logger.Init(conf.Log()); err != nil {
		logger.Error("failed to init logger", zap.Error(err))
		return 1
	}
	defer logger.Sync()

	logger.Info("Expenses form - start", zap.String("file", conf.App().ExpensesFile()))
	defer logger.Info("Expenses form - end")

	service := expenses.NewService(storage.NewExpenseStorage(conf.App().ExpensesFile()))
	if _, err = tea.NewProgram(tui.New(service), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		return 1
	}
	return 0
}
