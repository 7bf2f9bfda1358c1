package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. DEBUG=true switches to the development
// config; when LOG_FILE is set the production logger also writes to a
// size-rotated file.
func New() (*zap.Logger, error) {
	if os.Getenv("DEBUG") == "true" {
		return zap.NewDevelopment()
	}

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		return zap.NewProduction()
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.InfoLevel),
		zapcore.NewCore(encoder, fileSink, zap.InfoLevel),
	)
	return zap.New(core), nil
}
