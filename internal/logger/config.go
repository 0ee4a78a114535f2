package logger

import (
	"github.com/code19m/errx"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "file"
	timeKey    = "time"

	// EncodingConsole produces colored human-readable output for development.
	EncodingConsole = "console"
	// EncodingJSON produces compact JSON logs for production.
	EncodingJSON = "json"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"debug"`

	// Encoding specifies the log format, "json" or "console".
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"json"`
}

// getZapConfig converts the logger Config to a zap.Config.
func (c Config) getZapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	if err := zapLevel.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errx.Wrap(err)
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if c.Encoding == EncodingConsole {
		encodeLevel = coloredLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	zapConfig := zap.Config{
		Level:            zapLevel,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         c.Encoding,
		EncoderConfig:    encoderConfig,
	}

	return &zapConfig, nil
}

// coloredLevelEncoder colors level labels in console mode.
func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var paint func(a ...any) string

	switch l {
	case zapcore.DebugLevel:
		paint = color.New(color.FgCyan).SprintFunc()
	case zapcore.InfoLevel:
		paint = color.New(color.FgGreen).SprintFunc()
	case zapcore.WarnLevel:
		paint = color.New(color.FgYellow).SprintFunc()
	case zapcore.ErrorLevel:
		paint = color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		paint = color.New(color.FgMagenta).SprintFunc()
	}

	enc.AppendString(paint(l.CapitalString()))
}
