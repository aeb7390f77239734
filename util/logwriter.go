package util

import (
	"io"
	"os"

	"github.com/ariebrainware/clinic-api/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogWriter returns stdout, teed into a rotating file when LOG_FILE is set.
func NewLogWriter(cfg *config.Config) io.Writer {
	if cfg == nil || cfg.LogFile == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	})
}
