// Package catalog содержит каталог треков приложения
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Track описывает один трек каталога
type Track struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Genre   string `json:"genre"`
	Cover   string `json:"cover"`   // URL обложки
	Preview string `json:"preview"` // URL аудио-превью
}

// KnownGenres - перечень жанров, используемый для фильтра и цветовой разметки.
// Жанры вне списка отображаются нейтрально.
var KnownGenres = []string{
	"Pop",
	"Rock",
	"R&B",
	"Dangdut",
	"K-Pop",
	"Pop Daerah",
	"Reggae",
	"Bollywood",
	"Indie",
	"Pop Indonesia",
}

// Catalog хранит список треков, загруженный один раз при старте приложения.
// После загрузки каталог не изменяется.
type Catalog struct {
	tracks []Track
}

// New создает пустой каталог
func New() *Catalog {
	return &Catalog{
		tracks: make([]Track, 0),
	}
}

// Load загружает каталог из локального JSON-файла
func (c *Catalog) Load(filePath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := strings.Replace(filePath, "~", home, 1)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла каталога: %w", err)
	}

	return c.Decode(data)
}

// Decode разбирает JSON-массив треков и замещает содержимое каталога
func (c *Catalog) Decode(data []byte) error {
	var tracks []Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	c.tracks = tracks
	return nil
}

// Tracks возвращает копию списка треков
func (c *Catalog) Tracks() []Track {
	tracks := make([]Track, len(c.tracks))
	copy(tracks, c.tracks)
	return tracks
}

// Len возвращает количество треков в каталоге
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// TrackByID возвращает трек по ID
func (c *Catalog) TrackByID(id int) (*Track, error) {
	for i := range c.tracks {
		if c.tracks[i].ID == id {
			track := c.tracks[i]
			return &track, nil
		}
	}
	return nil, fmt.Errorf("трека с ID %d не найдено", id)
}

// Genres возвращает отсортированный список жанров, встречающихся в каталоге
func (c *Catalog) Genres() []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, t := range c.tracks {
		if t.Genre == "" || seen[t.Genre] {
			continue
		}
		seen[t.Genre] = true
		genres = append(genres, t.Genre)
	}
	sort.Strings(genres)
	return genres
}
