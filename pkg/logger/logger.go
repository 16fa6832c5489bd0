package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config mirrors config.LoggingConfig but avoids importing the config package here.
type Config struct {
	Level    string
	Encoding string
}

// New builds a zap.Logger using the provided configuration.
func New(cfg Config) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		// fall back to info level if parsing fails
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	return zap.New(core, zap.AddCaller()), nil
}
