package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide logger. mode follows GIN_MODE: debug mode gets
// a development logger, everything else the production JSON encoder.
func New(mode string) (*zap.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(mode), "debug") {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
