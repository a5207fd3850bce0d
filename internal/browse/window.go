package browse

import "github.com/hazadus/go-tuner/internal/catalog"

// DefaultPageSize - размер окна показа по умолчанию
const DefaultPageSize = 10

// Window ограничивает число треков, видимых на экране. Кнопка "загрузить еще"
// увеличивает окно на шаг; смена фильтра или сортировки сбрасывает его.
type Window struct {
	pageSize int
	size     int
}

// NewWindow создает окно с указанным шагом; шаг меньше 1 заменяется на
// значение по умолчанию
func NewWindow(pageSize int) *Window {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Window{
		pageSize: pageSize,
		size:     pageSize,
	}
}

// Apply обрезает список треков по текущему размеру окна
func (w *Window) Apply(tracks []catalog.Track) []catalog.Track {
	if len(tracks) <= w.size {
		result := make([]catalog.Track, len(tracks))
		copy(result, tracks)
		return result
	}
	result := make([]catalog.Track, w.size)
	copy(result, tracks[:w.size])
	return result
}

// Grow расширяет окно на один шаг
func (w *Window) Grow() {
	w.size += w.pageSize
}

// Reset возвращает окно к исходному размеру
func (w *Window) Reset() {
	w.size = w.pageSize
}

// Size возвращает текущий размер окна
func (w *Window) Size() int {
	return w.size
}

// HasMore сообщает, остались ли треки за пределами окна
func (w *Window) HasMore(total int) bool {
	return total > w.size
}
