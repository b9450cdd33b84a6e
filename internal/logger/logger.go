// Package logger monta o logger estruturado do serviço.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New cria um zerolog com nível e formato configuráveis. format "console"
// troca o JSON por saída legível no terminal.
func New(service, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout)
	if strings.EqualFold(format, "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	return logger.With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(ParseLevel(level))
}

// ParseLevel converte o nível textual; desconhecido cai em info.
func ParseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
