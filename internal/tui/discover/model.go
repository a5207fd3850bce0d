// Package discover содержит модель экрана каталога для TUI:
// просмотр треков с фильтром по жанру, сортировкой, поиском и постраничной подгрузкой
package discover

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tuner/internal/browse"
	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/tui/tracklist"
)

var (
	filterStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#888888"))

	searchStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#666666"))
)

// Model представляет модель экрана каталога
type Model struct {
	catalog     *catalog.Catalog
	inner       *tracklist.Model
	window      *browse.Window
	genres      []string // Первый элемент - пустая строка, то есть без фильтра
	genreIndex  int
	sortIndex   int
	query       string
	searching   bool
	searchInput textinput.Model
}

// NewModel создает новую модель экрана каталога
func NewModel(cat *catalog.Catalog, pageSize int, markers tracklist.Markers) *Model {
	input := textinput.New()
	input.Placeholder = "Название или исполнитель..."
	input.CharLimit = 64
	input.Width = 40

	m := &Model{
		catalog:     cat,
		window:      browse.NewWindow(pageSize),
		genres:      append([]string{""}, cat.Genres()...),
		searchInput: input,
	}
	m.inner = tracklist.NewModel("Каталог", m.displayed, markers, false, "Ничего не найдено")
	return m
}

// displayed вычисляет отображаемую последовательность:
// фильтр по жанру, затем поиск, затем сортировка, затем окно
func (m *Model) displayed() []catalog.Track {
	tracks := browse.FilterByGenre(m.catalog.Tracks(), m.genres[m.genreIndex])
	tracks = browse.SearchTracks(tracks, m.query)
	tracks = browse.SortTracks(tracks, browse.SortKeys[m.sortIndex])
	return m.window.Apply(tracks)
}

// matchedCount возвращает размер полного результата до применения окна
func (m *Model) matchedCount() int {
	tracks := browse.FilterByGenre(m.catalog.Tracks(), m.genres[m.genreIndex])
	tracks = browse.SearchTracks(tracks, m.query)
	return len(tracks)
}

// Tracks возвращает отображаемую последовательность треков
func (m *Model) Tracks() []catalog.Track {
	return m.inner.Tracks()
}

// RefreshData обновляет содержимое списка
func (m *Model) RefreshData() {
	m.inner.RefreshData()
}

// Searching сообщает, активен ли режим ввода поискового запроса
func (m *Model) Searching() bool {
	return m.searching
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	// В режиме поиска ввод идет в текстовое поле
	if m.searching {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter", "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)

		// Каждое изменение запроса сбрасывает окно
		if m.searchInput.Value() != m.query {
			m.query = m.searchInput.Value()
			m.window.Reset()
			m.inner.RefreshData()
		}
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "g":
			// Цикл по жанрам; смена фильтра сбрасывает окно
			m.genreIndex = (m.genreIndex + 1) % len(m.genres)
			m.window.Reset()
			m.inner.RefreshData()
			return m, nil

		case "s":
			// Цикл по порядкам сортировки; смена порядка тоже сбрасывает окно
			m.sortIndex = (m.sortIndex + 1) % len(browse.SortKeys)
			m.window.Reset()
			m.inner.RefreshData()
			return m, nil

		case "/":
			m.searching = true
			return m, m.searchInput.Focus()

		case "m":
			// Подгружаем следующую страницу
			if m.window.HasMore(m.matchedCount()) {
				m.window.Grow()
				m.inner.RefreshData()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	genreLabel := m.genres[m.genreIndex]
	if genreLabel == "" {
		genreLabel = "все жанры"
	}

	filterLine := filterStyle.Render(fmt.Sprintf(
		"Жанр: %s • Сортировка: %s • Показано %d из %d",
		genreLabel,
		browse.SortKeys[m.sortIndex].Label(),
		len(m.inner.Tracks()),
		m.matchedCount(),
	))

	searchLine := ""
	if m.searching || m.query != "" {
		searchLine = searchStyle.Render("Поиск: " + m.searchInput.View())
	}

	help := helpStyle.Render("g: жанр • s: сортировка • /: поиск • m: показать еще")

	view := filterLine + "\n"
	if searchLine != "" {
		view += searchLine + "\n"
	}
	return view + m.inner.View() + "\n" + help
}
