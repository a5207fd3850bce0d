package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/tui/tracklist"
)

// newTestCatalog создает каталог с заданным числом рок-треков и одним поп-треком
func newTestCatalog(t *testing.T, rockCount int) *catalog.Catalog {
	t.Helper()

	tracksJSON := `[{"id":1000,"title":"Gelombang","artist":"Samudra","genre":"Pop"}`
	for i := 1; i <= rockCount; i++ {
		tracksJSON += fmt.Sprintf(`,{"id":%d,"title":"Track %02d","artist":"The Voltas","genre":"Rock"}`, i, i)
	}
	tracksJSON += `]`

	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(catalogPath, []byte(tracksJSON), 0644); err != nil {
		t.Fatalf("ошибка создания тестового каталога: %v", err)
	}

	cat := catalog.New()
	if err := cat.Load(catalogPath); err != nil {
		t.Fatalf("ошибка загрузки каталога: %v", err)
	}
	return cat
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWindowLimitsAndGrows(t *testing.T) {
	cat := newTestCatalog(t, 25)
	model := NewModel(cat, 10, tracklist.Markers{})

	// Изначально показаны первые 10 треков
	if len(model.Tracks()) != 10 {
		t.Errorf("ожидали 10 треков в окне, получили %d", len(model.Tracks()))
	}

	// Клавиша m подгружает следующую страницу
	model, _ = model.Update(keyRune('m'))
	if len(model.Tracks()) != 20 {
		t.Errorf("ожидали 20 треков после подгрузки, получили %d", len(model.Tracks()))
	}

	// Еще одна подгрузка показывает все 26 треков
	model, _ = model.Update(keyRune('m'))
	if len(model.Tracks()) != 26 {
		t.Errorf("ожидали 26 треков, получили %d", len(model.Tracks()))
	}

	// Дальше расти некуда
	model, _ = model.Update(keyRune('m'))
	if len(model.Tracks()) != 26 {
		t.Errorf("ожидали 26 треков после лишней подгрузки, получили %d", len(model.Tracks()))
	}
}

func TestGenreFilterResetsWindow(t *testing.T) {
	cat := newTestCatalog(t, 25)
	model := NewModel(cat, 10, tracklist.Markers{})

	// Расширяем окно
	model, _ = model.Update(keyRune('m'))
	if len(model.Tracks()) != 20 {
		t.Fatalf("ожидали 20 треков, получили %d", len(model.Tracks()))
	}

	// Переключаем жанр: окно сбрасывается к первой странице
	model, _ = model.Update(keyRune('g'))
	if len(model.Tracks()) > 10 {
		t.Errorf("ожидали не более 10 треков после смены жанра, получили %d", len(model.Tracks()))
	}

	// Фильтр точный: в жанре Pop ровно один трек
	for model.genres[model.genreIndex] != "Pop" {
		model, _ = model.Update(keyRune('g'))
	}
	tracks := model.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("ожидали 1 трек в жанре Pop, получили %d", len(tracks))
	}
	if tracks[0].Title != "Gelombang" {
		t.Errorf("ожидали Gelombang, получили %s", tracks[0].Title)
	}
}

func TestSortCycleResetsWindow(t *testing.T) {
	cat := newTestCatalog(t, 25)
	model := NewModel(cat, 10, tracklist.Markers{})

	model, _ = model.Update(keyRune('m'))
	if len(model.Tracks()) != 20 {
		t.Fatalf("ожидали 20 треков, получили %d", len(model.Tracks()))
	}

	// Смена сортировки возвращает окно к первой странице
	model, _ = model.Update(keyRune('s'))
	if len(model.Tracks()) != 10 {
		t.Errorf("ожидали 10 треков после смены сортировки, получили %d", len(model.Tracks()))
	}
}

func TestSearchFiltersTracks(t *testing.T) {
	cat := newTestCatalog(t, 5)
	model := NewModel(cat, 10, tracklist.Markers{})

	// Открываем поиск и вводим запрос
	model, _ = model.Update(keyRune('/'))
	if !model.searching {
		t.Fatal("ожидали активный режим поиска после /")
	}

	for _, r := range "samudra" {
		model, _ = model.Update(keyRune(r))
	}

	tracks := model.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("ожидали 1 трек по запросу samudra, получили %d", len(tracks))
	}
	if tracks[0].Artist != "Samudra" {
		t.Errorf("ожидали исполнителя Samudra, получили %s", tracks[0].Artist)
	}

	// Enter закрывает режим поиска, запрос остается примененным
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.searching {
		t.Error("ожидали выход из режима поиска после Enter")
	}
	if len(model.Tracks()) != 1 {
		t.Errorf("ожидали сохранение результатов поиска, получили %d треков", len(model.Tracks()))
	}
}
