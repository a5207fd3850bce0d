// Package logging настраивает журналирование приложения.
// Поскольку терминал занят интерфейсом, записи пишутся в файл.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New создает логгер, пишущий JSON-строки в указанный файл.
// Путь может начинаться с тильды. Уровень: debug, info, warn, error.
func New(logFilePath string, level string) (zerolog.Logger, error) {
	if strings.HasPrefix(logFilePath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("ошибка получения домашней директории: %w", err)
		}
		logFilePath = filepath.Join(homeDir, logFilePath[2:])
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("ошибка открытия файла журнала: %w", err)
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	logger := zerolog.New(file).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

// Nop возвращает логгер, отбрасывающий все записи. Используется в тестах
// и когда файл журнала недоступен.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
