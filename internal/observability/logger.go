package observability

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the narrow interface the service layer depends on.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type ZerologLogger struct {
	logger zerolog.Logger
}

func NewLogger(level string) *ZerologLogger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger()
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *ZerologLogger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *ZerologLogger) Zerolog() zerolog.Logger {
	return l.logger
}
