package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Append добавляет трек в каталог, присваивая ему следующий свободный ID.
// Используется только командой импорта - во время сессии каталог неизменяем.
func (c *Catalog) Append(track Track) Track {
	// Находим максимальный ID и присваиваем новый треку
	maxID := 0
	for _, t := range c.tracks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	track.ID = maxID + 1
	c.tracks = append(c.tracks, track)
	return track
}

// Save сохраняет каталог в JSON-файл
func (c *Catalog) Save(filePath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := strings.Replace(filePath, "~", home, 1)

	data, err := json.MarshalIndent(c.tracks, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации каталога: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла каталога: %w", err)
	}
	return nil
}
