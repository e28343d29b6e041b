// Package logging builds the run logger: console output on stderr plus a
// COVERAGE log file inside the report output directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to stderr and, when outputDir is non-empty,
// to <outputDir>/<fileTag>.txt with rotation. level falls back to info on
// anything unparseable.
func New(level string, outputDir, fileTag string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl),
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err == nil {
			fileOut := &lumberjack.Logger{
				Filename:   filepath.Join(outputDir, fileTag+".txt"),
				MaxSize:    10, // MB
				MaxBackups: 3,
			}
			fileCfg := zap.NewProductionEncoderConfig()
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(fileCfg),
				zapcore.AddSync(fileOut),
				zapcore.DebugLevel,
			))
		}
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}
