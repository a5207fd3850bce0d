package browse

import (
	"testing"

	"github.com/hazadus/go-tuner/internal/catalog"
)

func sampleTracks() []catalog.Track {
	return []catalog.Track{
		{ID: 1, Title: "A", Artist: "X", Genre: "Pop"},
		{ID: 2, Title: "B", Artist: "Y", Genre: "Rock"},
	}
}

func TestFilterByGenre(t *testing.T) {
	tracks := sampleTracks()

	// Фильтр по жанру оставляет только точные совпадения
	result := FilterByGenre(tracks, "Pop")
	if len(result) != 1 {
		t.Fatalf("Ожидался 1 трек, получено %d", len(result))
	}
	if result[0].ID != 1 {
		t.Errorf("Ожидался трек с ID 1, получено: %d", result[0].ID)
	}

	// Пустой фильтр пропускает все треки в исходном порядке
	result = FilterByGenre(tracks, "")
	if len(result) != 2 {
		t.Fatalf("Ожидалось 2 трека, получено %d", len(result))
	}
	if result[0].ID != 1 || result[1].ID != 2 {
		t.Errorf("Пустой фильтр должен сохранять порядок, получено: %v", result)
	}

	// Совпадение жанра чувствительно к регистру
	result = FilterByGenre(tracks, "pop")
	if len(result) != 0 {
		t.Errorf("Ожидалось 0 треков для фильтра 'pop', получено %d", len(result))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tracks := sampleTracks()
	_ = FilterByGenre(tracks, "Rock")

	// Исходный список не должен измениться
	if tracks[0].ID != 1 || tracks[1].ID != 2 {
		t.Errorf("Фильтр изменил исходный список: %v", tracks)
	}
}

func TestSortTitleDesc(t *testing.T) {
	tracks := sampleTracks()

	// Сортировка по названию по убыванию
	result := SortTracks(tracks, SortTitleDesc)
	if result[0].ID != 2 || result[1].ID != 1 {
		t.Errorf("Ожидался порядок [2 1], получено: %v", result)
	}

	// Исходный список не изменяется
	if tracks[0].ID != 1 {
		t.Error("Сортировка изменила исходный список")
	}
}

func TestSortAscDescAreReversed(t *testing.T) {
	tracks := []catalog.Track{
		{ID: 1, Title: "Charlie"},
		{ID: 2, Title: "Alpha"},
		{ID: 3, Title: "Bravo"},
	}

	asc := SortTracks(tracks, SortTitleAsc)
	desc := SortTracks(tracks, SortTitleDesc)

	// При различных названиях порядок по убыванию - это обратный порядок по возрастанию
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Errorf("Позиция %d: ожидался зеркальный порядок, asc=%v desc=%v", i, asc, desc)
			break
		}
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	tracks := sampleTracks()

	result := SortTracks(tracks, SortKey("bogus"))
	if result[0].ID != 1 || result[1].ID != 2 {
		t.Errorf("Неизвестный ключ должен сохранять порядок, получено: %v", result)
	}
}

func TestSortIsStable(t *testing.T) {
	// Треки с одинаковым исполнителем сохраняют порядок каталога
	tracks := []catalog.Track{
		{ID: 1, Title: "First", Artist: "Same"},
		{ID: 2, Title: "Second", Artist: "Same"},
		{ID: 3, Title: "Third", Artist: "Aaa"},
	}

	result := SortTracks(tracks, SortArtistAsc)
	if result[0].ID != 3 || result[1].ID != 1 || result[2].ID != 2 {
		t.Errorf("Ожидался порядок [3 1 2], получено: %v", result)
	}
}

func TestSearchTracks(t *testing.T) {
	tracks := []catalog.Track{
		{ID: 1, Title: "Senja di Kota", Artist: "Laras"},
		{ID: 2, Title: "Midnight Drive", Artist: "The Voltas"},
	}

	// Поиск по названию без учета регистра
	result := SearchTracks(tracks, "senja")
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("Ожидался трек 1 по запросу 'senja', получено: %v", result)
	}

	// Поиск по исполнителю
	result = SearchTracks(tracks, "volta")
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("Ожидался трек 2 по запросу 'volta', получено: %v", result)
	}

	// Пустой запрос возвращает все треки
	result = SearchTracks(tracks, "")
	if len(result) != 2 {
		t.Errorf("Ожидалось 2 трека для пустого запроса, получено %d", len(result))
	}
}

func TestWindow(t *testing.T) {
	// Готовим 25 треков
	tracks := make([]catalog.Track, 25)
	for i := range tracks {
		tracks[i] = catalog.Track{ID: i + 1}
	}

	w := NewWindow(DefaultPageSize)

	// Исходное окно показывает 10 треков
	visible := w.Apply(tracks)
	if len(visible) != 10 {
		t.Errorf("Ожидалось 10 видимых треков, получено %d", len(visible))
	}
	if !w.HasMore(len(tracks)) {
		t.Error("Ожидались треки за пределами окна")
	}

	// "Загрузить еще" добавляет 10
	w.Grow()
	visible = w.Apply(tracks)
	if len(visible) != 20 {
		t.Errorf("Ожидалось 20 видимых треков, получено %d", len(visible))
	}

	// Следующее расширение упирается в конец списка
	w.Grow()
	visible = w.Apply(tracks)
	if len(visible) != 25 {
		t.Errorf("Ожидалось 25 видимых треков, получено %d", len(visible))
	}
	if w.HasMore(len(tracks)) {
		t.Error("За пределами окна не должно остаться треков")
	}

	// Сброс возвращает окно к исходному размеру
	w.Reset()
	if w.Size() != DefaultPageSize {
		t.Errorf("Ожидался размер окна %d, получено %d", DefaultPageSize, w.Size())
	}
}

func TestScenarioFilterAndSort(t *testing.T) {
	// Сценарий из двух треков: фильтр по Pop и сортировка по названию
	tracks := sampleTracks()

	filtered := FilterByGenre(tracks, "Pop")
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("Фильтр 'Pop' должен оставить только трек 1, получено: %v", filtered)
	}

	sorted := SortTracks(tracks, SortTitleDesc)
	if len(sorted) != 2 || sorted[0].ID != 2 || sorted[1].ID != 1 {
		t.Errorf("Сортировка title-desc должна дать [2 1], получено: %v", sorted)
	}
}
