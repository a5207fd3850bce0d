// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-tuner/internal/catalog"
)

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTrack строит запись каталога по локальному MP3 файлу.
// Идентификатор не назначается: его присваивает каталог при добавлении.
// Поле Preview указывает на абсолютный путь к файлу.
func (e *Extractor) ExtractTrack(filePath string) (catalog.Track, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return catalog.Track{}, fmt.Errorf("ошибка определения пути: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return catalog.Track{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	track := e.extractFromReader(file, absPath)
	track.Preview = absPath
	return track, nil
}

// extractFromReader читает теги из io.ReadSeeker; при неудаче
// метаданные восстанавливаются из имени файла
func (e *Extractor) extractFromReader(reader io.ReadSeeker, source string) catalog.Track {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.trackFromFileName(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.trackFromFileName(source)
	}

	track := catalog.Track{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
		Genre:  metadata.Genre(),
	}
	if track.Title == "" || track.Artist == "" {
		fallback := e.trackFromFileName(source)
		if track.Title == "" {
			track.Title = fallback.Title
		}
		if track.Artist == "" {
			track.Artist = fallback.Artist
		}
	}
	return track
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// trackFromFileName восстанавливает метаданные из имени файла
func (e *Extractor) trackFromFileName(source string) catalog.Track {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return catalog.Track{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return catalog.Track{
		Artist: "Unknown Artist",
		Title:  nameWithoutExt,
	}
}
