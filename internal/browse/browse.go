// Package browse содержит чистые функции фильтрации и сортировки каталога
package browse

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hazadus/go-tuner/internal/catalog"
)

// SortKey определяет порядок сортировки треков
type SortKey string

// Поддерживаемые ключи сортировки
const (
	SortNone       SortKey = ""
	SortTitleAsc   SortKey = "title-asc"
	SortTitleDesc  SortKey = "title-desc"
	SortArtistAsc  SortKey = "artist-asc"
	SortArtistDesc SortKey = "artist-desc"
)

// SortKeys - все ключи сортировки в порядке переключения в интерфейсе
var SortKeys = []SortKey{
	SortNone,
	SortTitleAsc,
	SortTitleDesc,
	SortArtistAsc,
	SortArtistDesc,
}

// Label возвращает подпись ключа сортировки для интерфейса
func (k SortKey) Label() string {
	switch k {
	case SortTitleAsc:
		return "Название А → Я"
	case SortTitleDesc:
		return "Название Я → А"
	case SortArtistAsc:
		return "Исполнитель А → Я"
	case SortArtistDesc:
		return "Исполнитель Я → А"
	default:
		return "Без сортировки"
	}
}

// collator сравнивает строки с учетом локали, как localeCompare в браузере
var collator = collate.New(language.Und)

// FilterByGenre возвращает новый список треков с точным совпадением жанра.
// Пустой фильтр пропускает все треки.
func FilterByGenre(tracks []catalog.Track, genre string) []catalog.Track {
	result := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		if genre == "" || t.Genre == genre {
			result = append(result, t)
		}
	}
	return result
}

// SortTracks возвращает новый отсортированный список треков. Сортировка
// стабильная: при равных значениях сохраняется порядок каталога.
// Неизвестный ключ оставляет порядок без изменений.
func SortTracks(tracks []catalog.Track, key SortKey) []catalog.Track {
	result := make([]catalog.Track, len(tracks))
	copy(result, tracks)

	var less func(a, b catalog.Track) bool
	switch key {
	case SortTitleAsc:
		less = func(a, b catalog.Track) bool { return collator.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b catalog.Track) bool { return collator.CompareString(b.Title, a.Title) < 0 }
	case SortArtistAsc:
		less = func(a, b catalog.Track) bool { return collator.CompareString(a.Artist, b.Artist) < 0 }
	case SortArtistDesc:
		less = func(a, b catalog.Track) bool { return collator.CompareString(b.Artist, a.Artist) < 0 }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}

// SearchTracks возвращает треки, у которых название или исполнитель содержат
// строку поиска без учета регистра
func SearchTracks(tracks []catalog.Track, query string) []catalog.Track {
	if query == "" {
		result := make([]catalog.Track, len(tracks))
		copy(result, tracks)
		return result
	}

	q := strings.ToLower(query)
	result := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) {
			result = append(result, t)
		}
	}
	return result
}
