package logger

import (
	"io"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"

	"github.com/gravityprotocol/gravity-adapter/config"
)

const (
	// ComponentKey tags every line with the process that wrote it.
	ComponentKey = "component"

	samplerN = 5
)

// New creates a zerolog logger writing to w. Any format other than "json"
// renders human readable console lines.
func New(w io.Writer, logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	if logFormat != config.LogFormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(w).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		logger = logger.Sample(&zerolog.BasicSampler{N: samplerN})
	}
	return logger
}

// Init builds the logger of component from cfg.
func Init(w io.Writer, component string, cfg config.Config) zerolog.Logger {
	return New(w, cfg.LogLevel, cfg.LogFormat, cfg.LogSampler).
		With().
		Str(ComponentKey, component).
		Logger()
}

// NewAppLogger wraps a zerolog logger for the programs and runtime.
func NewAppLogger(zl zerolog.Logger) log.Logger {
	return log.NewCustomLogger(zl)
}
