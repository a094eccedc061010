package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging points the global zerolog logger at out. Console mode is
// what a build log reader wants; JSON lines are for log collectors.
func ConfigureLogging(cfg Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.LogConsole {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}
	log.Logger = log.Logger.Level(level)

	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}
	zerolog.DefaultContextLogger = &log.Logger
}
