// Package tracklist содержит модель экрана списка треков для TUI.
// Используется экранами избранного и плейлиста.
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	emptyStyle        = lipgloss.NewStyle().Margin(1, 0, 2, 4).Foreground(lipgloss.Color("#888888"))

	// Цветовая разметка известных жанров; неизвестный жанр остается нейтральным
	genreStyles   = buildGenreStyles()
	genreFallback = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func buildGenreStyles() map[string]lipgloss.Style {
	colors := []string{"205", "203", "178", "172", "141", "117", "84", "214", "111", "149"}
	styles := make(map[string]lipgloss.Style, len(catalog.KnownGenres))
	for i, genre := range catalog.KnownGenres {
		styles[genre] = lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)]))
	}
	return styles
}

// renderGenre возвращает жанр, раскрашенный по KnownGenres
func renderGenre(genre string) string {
	if style, ok := genreStyles[genre]; ok {
		return style.Render(genre)
	}
	return genreFallback.Render(genre)
}

// TrackChosenMsg отправляется при выборе трека для воспроизведения
type TrackChosenMsg struct {
	Track catalog.Track
}

// FavoriteToggleMsg отправляется для переключения избранного у трека
type FavoriteToggleMsg struct {
	Track catalog.Track
}

// PlaylistAddMsg отправляется для добавления трека в плейлист
type PlaylistAddMsg struct {
	Track catalog.Track
}

// RemoveMsg отправляется для удаления трека с текущего экрана
type RemoveMsg struct {
	Track catalog.Track
}

// Markers сообщает делегату, как помечать треки в списке
type Markers struct {
	IsFavorite func(trackID int) bool
	IsCurrent  func(trackID int) bool
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track catalog.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Artist, i.track.Title)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct {
	markers Markers
}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Пометки: играющий трек и избранное
	playingMark := " "
	if d.markers.IsCurrent != nil && d.markers.IsCurrent(i.track.ID) {
		playingMark = "▶"
	}
	favoriteMark := " "
	if d.markers.IsFavorite != nil && d.markers.IsFavorite(i.track.ID) {
		favoriteMark = "♥"
	}

	str := fmt.Sprintf("%s %s %-25s %-35s %s",
		playingMark,
		favoriteMark,
		utils.TruncateString(i.track.Artist, 25),
		utils.TruncateString(i.track.Title, 35),
		renderGenre(i.track.Genre))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list      list.Model
	provider  func() []catalog.Track
	removable bool
	emptyText string
}

// NewModel создает новую модель списка треков.
// provider возвращает актуальное содержимое списка,
// removable разрешает удаление трека клавишей d.
func NewModel(title string, provider func() []catalog.Track, markers Markers, removable bool, emptyText string) *Model {
	l := list.New(nil, trackItemDelegate{markers: markers}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:      l,
		provider:  provider,
		removable: removable,
		emptyText: emptyText,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет содержимое списка без пересоздания модели
func (m *Model) RefreshData() {
	tracks := m.provider()

	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	m.list.SetItems(items)
}

// Tracks возвращает отображаемую последовательность треков
func (m *Model) Tracks() []catalog.Track {
	tracks := make([]catalog.Track, 0, len(m.list.Items()))
	for _, item := range m.list.Items() {
		if i, ok := item.(trackItem); ok {
			tracks = append(tracks, i.track)
		}
	}
	return tracks
}

// selectedTrack возвращает выбранный трек, если он есть
func (m *Model) selectedTrack() (catalog.Track, bool) {
	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return catalog.Track{}, false
	}
	item, ok := selectedItem.(trackItem)
	if !ok {
		return catalog.Track{}, false
	}
	return item.track, true
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 8) // Оставляем место для панели плеера и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if track, ok := m.selectedTrack(); ok {
				return m, func() tea.Msg {
					return TrackChosenMsg{Track: track}
				}
			}

		case "f":
			if track, ok := m.selectedTrack(); ok {
				return m, func() tea.Msg {
					return FavoriteToggleMsg{Track: track}
				}
			}

		case "a":
			if track, ok := m.selectedTrack(); ok {
				return m, func() tea.Msg {
					return PlaylistAddMsg{Track: track}
				}
			}

		case "d":
			if !m.removable {
				return m, nil
			}
			if track, ok := m.selectedTrack(); ok {
				return m, func() tea.Msg {
					return RemoveMsg{Track: track}
				}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if len(m.list.Items()) == 0 {
		return titleStyle.Render(m.list.Title) + "\n\n" + emptyStyle.Render(m.emptyText)
	}

	view := m.list.View()
	help := "Enter: играть • f: избранное • a: в плейлист"
	if m.removable {
		help += " • d: удалить"
	}
	return view + "\n" + helpStyle.Render(help)
}
