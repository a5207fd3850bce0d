package favorites

import (
	"testing"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/store"
)

// testCatalog создает каталог с тремя треками
func testCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Append(catalog.Track{Title: "Track 1", Artist: "Artist 1", Genre: "Pop"})
	c.Append(catalog.Track{Title: "Track 2", Artist: "Artist 2", Genre: "Rock"})
	c.Append(catalog.Track{Title: "Track 3", Artist: "Artist 3", Genre: "Indie"})
	return c
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := store.NewMemoryStore()
	c := testCatalog()
	m := NewManager(s, c)

	track := c.Tracks()[0]

	// Первый вызов добавляет трек
	added, err := m.Toggle(track)
	if err != nil {
		t.Fatalf("Ошибка переключения избранного: %v", err)
	}
	if !added {
		t.Error("Ожидалось добавление трека в избранное")
	}
	if !m.IsFavorite(track.ID) {
		t.Error("Трек должен быть в избранном после добавления")
	}

	// Второй вызов убирает трек
	added, err = m.Toggle(track)
	if err != nil {
		t.Fatalf("Ошибка переключения избранного: %v", err)
	}
	if added {
		t.Error("Ожидалось удаление трека из избранного")
	}
	if m.IsFavorite(track.ID) {
		t.Error("Трек не должен быть в избранном после удаления")
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s := store.NewMemoryStore()
	c := testCatalog()
	m := NewManager(s, c)

	// Двойное переключение возвращает набор в исходное состояние
	for _, track := range c.Tracks() {
		before := m.IsFavorite(track.ID)
		if _, err := m.Toggle(track); err != nil {
			t.Fatalf("Ошибка переключения избранного: %v", err)
		}
		if _, err := m.Toggle(track); err != nil {
			t.Fatalf("Ошибка переключения избранного: %v", err)
		}
		if m.IsFavorite(track.ID) != before {
			t.Errorf("Трек %d: двойное переключение изменило состояние", track.ID)
		}
	}
}

func TestTogglePersistsImmediately(t *testing.T) {
	s := store.NewMemoryStore()
	c := testCatalog()
	m := NewManager(s, c)

	track := c.Tracks()[1]
	if _, err := m.Toggle(track); err != nil {
		t.Fatalf("Ошибка переключения избранного: %v", err)
	}

	// Новый менеджер поверх того же хранилища видит изменение
	reloaded := NewManager(s, c)
	if !reloaded.IsFavorite(track.ID) {
		t.Error("Избранное должно сохраняться сразу после изменения")
	}
}

func TestLoadMalformedValue(t *testing.T) {
	s := store.NewMemoryStore()
	c := testCatalog()

	// Кладем в хранилище нечитаемое значение
	if err := s.Set(store.KeyFavorites, []byte("not json")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}

	// Менеджер должен начать с пустого набора
	m := NewManager(s, c)
	if len(m.IDs()) != 0 {
		t.Errorf("Ожидался пустой набор избранного, получено %d элементов", len(m.IDs()))
	}
}

func TestTracksRejoinsCatalog(t *testing.T) {
	s := store.NewMemoryStore()
	c := testCatalog()

	// В сохраненном наборе есть ID, которого нет в каталоге
	if err := s.Set(store.KeyFavorites, []byte("[2,99]")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}

	m := NewManager(s, c)
	tracks := m.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("Ожидался 1 трек, получено %d", len(tracks))
	}
	if tracks[0].ID != 2 {
		t.Errorf("Ожидался трек с ID 2, получено: %d", tracks[0].ID)
	}
}
