package logger

import (
	"log"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	devEnv  = "dev"
	prodEnv = "prod"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = build(prodEnv, "warn", []string{"stderr"})
	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

type config interface {
	Env() string
	Level() string
	Outputs() []string
}

// Init replaces the package logger with one built from config.
func Init(cfg config) error {
	l, err := build(cfg.Env(), cfg.Level(), cfg.Outputs())
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	logger = l
	return nil
}

func build(env, level string, outputs []string) (*zap.Logger, error) {
	var zc zap.Config
	switch env {
	case devEnv:
		zc = zap.NewDevelopmentConfig()
	case prodEnv:
		zc = zap.NewProductionConfig()
	default:
		return nil, errors.Errorf("unknown log env %q", env)
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(err, "parse log level")
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	if len(outputs) > 0 {
		zc.OutputPaths = outputs
	}
	return zc.Build()
}

func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
