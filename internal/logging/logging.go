// Package logging builds the zap logger shared by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Options struct {
	Level  string // debug | info | warn | error; empty means info
	Format string // console | json; empty means console
	Quiet  bool   // raise the level to error
}

// New returns a logger writing to w. Diagnostics go to stderr in the tools,
// so stdout stays clean for reports.
func New(w io.Writer, o Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s := strings.ToLower(strings.TrimSpace(o.Level)); s != "" {
		if err := level.Set(s); err != nil {
			return nil, fmt.Errorf("invalid log level %q", o.Level)
		}
	}
	if o.Quiet && level < zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}

	var enc zapcore.Encoder
	switch strings.ToLower(o.Format) {
	case "", FormatConsole:
		cfg := encoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encoderConfig())
	default:
		return nil, fmt.Errorf("invalid log format %q (console | json)", o.Format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
