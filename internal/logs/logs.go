package logs

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New loguje do pliku (JSON) i opcjonalnie na konsolę (czytelny format).
// Zwrócona funkcja zamyka plik logów.
func New(logFilePath string, withConsole bool, level zerolog.Level) (zerolog.Logger, func() error, error) {
	// Utwórz plik logów (append + tworzenie jeśli brak)
	logFile, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var writer io.Writer = logFile
	if withConsole {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.TimeOnly,
		}
		writer = zerolog.MultiLevelWriter(logFile, consoleWriter)
	}

	logger := NewWithWriter(writer, level)

	// Ustaw globalny logger
	log.Logger = logger

	return logger, logFile.Close, nil
}

// NewWithWriter buduje logger z timestampem i miejscem wywołania.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Caller().
		Logger()
}
