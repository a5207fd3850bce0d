// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hazadus/go-tuner/internal/audio"
	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/favorites"
	"github.com/hazadus/go-tuner/internal/playback"
	"github.com/hazadus/go-tuner/internal/playlist"
	"github.com/hazadus/go-tuner/internal/tui/discover"
	"github.com/hazadus/go-tuner/internal/tui/notice"
	"github.com/hazadus/go-tuner/internal/tui/playerbar"
	"github.com/hazadus/go-tuner/internal/tui/tracklist"
)

var helpStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Foreground(lipgloss.Color("#666666"))

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// DiscoverScreen - экран каталога
	DiscoverScreen ScreenType = iota
	// FavoritesScreen - экран избранного
	FavoritesScreen
	// PlaylistScreen - экран плейлиста
	PlaylistScreen
)

// Deps содержит зависимости TUI приложения
type Deps struct {
	Catalog     *catalog.Catalog
	Favorites   *favorites.Manager
	Playlist    *playlist.Manager
	Coordinator *playback.Coordinator
	Player      *audio.Player // Может быть nil, тогда прогресс не отслеживается
	PageSize    int
	Logger      zerolog.Logger
}

// ProgressMsg содержит обновление позиции воспроизведения
type ProgressMsg struct {
	Progress audio.Progress
}

// TrackEndedMsg отправляется при естественном окончании трека
type TrackEndedMsg struct{}

// playbackResultMsg содержит результат операции воспроизведения
type playbackResultMsg struct {
	err error
}

// MainModel представляет главную модель TUI
type MainModel struct {
	deps           Deps
	currentScreen  ScreenType
	discoverModel  *discover.Model
	favoritesModel *tracklist.Model
	playlistModel  *tracklist.Model
	playerBar      *playerbar.Model
	noticeModel    *notice.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(deps Deps) *MainModel {
	markers := tracklist.Markers{
		IsFavorite: deps.Favorites.IsFavorite,
		IsCurrent: func(trackID int) bool {
			current := deps.Coordinator.Current()
			return current != nil && current.ID == trackID
		},
	}

	m := &MainModel{
		deps:          deps,
		currentScreen: DiscoverScreen,
		discoverModel: discover.NewModel(deps.Catalog, deps.PageSize, markers),
		favoritesModel: tracklist.NewModel(
			"Избранное", deps.Favorites.Tracks, markers, true, "В избранном пока пусто"),
		playlistModel: tracklist.NewModel(
			"Мой плейлист", deps.Playlist.Tracks, markers, true, "Плейлист пока пуст"),
		playerBar:   playerbar.NewModel(deps.Coordinator),
		noticeModel: notice.NewModel(),
	}
	m.syncSequence()
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.listenForProgress()
}

// activeTracks возвращает отображаемую последовательность активного экрана
func (m *MainModel) activeTracks() []catalog.Track {
	switch m.currentScreen {
	case FavoritesScreen:
		return m.favoritesModel.Tracks()
	case PlaylistScreen:
		return m.playlistModel.Tracks()
	default:
		return m.discoverModel.Tracks()
	}
}

// syncSequence передает координатору последовательность активного экрана
func (m *MainModel) syncSequence() {
	m.deps.Coordinator.SetSequence(m.activeTracks())
}

// refreshLists обновляет содержимое всех списков
func (m *MainModel) refreshLists() {
	m.discoverModel.RefreshData()
	m.favoritesModel.RefreshData()
	m.playlistModel.RefreshData()
	m.syncSequence()
	m.syncPlaylistPointer()
}

// syncPlaylistPointer выравнивает указатель "сейчас играет" плейлиста по
// текущему треку координатора: если играющий трек входит в плейлист,
// указатель ставится на его позицию, иначе сбрасывается
func (m *MainModel) syncPlaylistPointer() {
	current := m.deps.Coordinator.Current()
	if current == nil {
		m.deps.Playlist.ClearCurrent()
		return
	}
	if playing := m.deps.Playlist.CurrentTrack(); playing != nil && playing.ID == current.ID {
		return
	}
	for i, id := range m.deps.Playlist.IDs() {
		if id == current.ID {
			m.deps.Playlist.SetCurrent(i)
			return
		}
	}
	m.deps.Playlist.ClearCurrent()
}

// listenForProgress слушает обновления позиции и окончание трека от плеера
func (m *MainModel) listenForProgress() tea.Cmd {
	if m.deps.Player == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case progress, ok := <-m.deps.Player.Progress():
			if !ok {
				return nil
			}
			return ProgressMsg{Progress: progress}

		case _, ok := <-m.deps.Player.Done():
			if !ok {
				return nil
			}
			return TrackEndedMsg{}
		}
	}
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// В режиме поиска клавиши принадлежат экрану каталога
		if m.currentScreen == DiscoverScreen && m.discoverModel.Searching() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.deps.Coordinator.Close()
			return m, tea.Quit

		case "1":
			m.currentScreen = DiscoverScreen
			m.refreshLists()
			return m, nil

		case "2":
			m.currentScreen = FavoritesScreen
			m.refreshLists()
			return m, nil

		case "3":
			m.currentScreen = PlaylistScreen
			m.refreshLists()
			return m, nil

		case " ":
			m.deps.Coordinator.TogglePlay()
			return m, nil

		case "n":
			return m, func() tea.Msg {
				return playbackResultMsg{err: m.deps.Coordinator.Next()}
			}

		case "b":
			return m, func() tea.Msg {
				return playbackResultMsg{err: m.deps.Coordinator.Previous()}
			}

		case "r":
			repeat := !m.deps.Coordinator.Repeat()
			m.deps.Coordinator.SetRepeat(repeat)
			if repeat {
				return m, m.noticeModel.Show("Повтор включен")
			}
			return m, m.noticeModel.Show("Повтор выключен")

		case "x":
			m.deps.Coordinator.Close()
			return m, m.playerBar.Reset()
		}

	case tracklist.TrackChosenMsg:
		// Перед запуском фиксируем последовательность активного экрана
		m.syncSequence()
		track := msg.Track
		return m, func() tea.Msg {
			return playbackResultMsg{err: m.deps.Coordinator.SelectTrack(track)}
		}

	case tracklist.FavoriteToggleMsg:
		added, err := m.deps.Favorites.Toggle(msg.Track)
		if err != nil {
			m.deps.Logger.Error().Err(err).Msg("ошибка сохранения избранного")
			return m, m.noticeModel.Show("Не удалось сохранить избранное")
		}
		m.refreshLists()
		if added {
			return m, m.noticeModel.Show("Добавлено в избранное")
		}
		return m, m.noticeModel.Show("Удалено из избранного")

	case tracklist.PlaylistAddMsg:
		added, err := m.deps.Playlist.Add(msg.Track)
		if err != nil {
			m.deps.Logger.Error().Err(err).Msg("ошибка сохранения плейлиста")
			return m, m.noticeModel.Show("Не удалось сохранить плейлист")
		}
		m.refreshLists()
		if added {
			return m, m.noticeModel.Show("Добавлено в плейлист")
		}
		return m, m.noticeModel.Show("Трек уже в плейлисте")

	case tracklist.RemoveMsg:
		return m.handleRemove(msg.Track)

	case playbackResultMsg:
		if msg.err != nil {
			m.deps.Logger.Error().Err(msg.err).Msg("ошибка воспроизведения")
			return m, m.noticeModel.Show("Ошибка воспроизведения: " + msg.err.Error())
		}
		m.refreshLists()
		return m, nil

	case ProgressMsg:
		m.deps.Coordinator.SetProgress(msg.Progress.Position, msg.Progress.Total)
		return m, tea.Batch(
			m.playerBar.SetProgress(msg.Progress.Position, msg.Progress.Total),
			m.listenForProgress(),
		)

	case TrackEndedMsg:
		// Естественное окончание: повтор или переход к следующему треку
		return m, tea.Batch(
			func() tea.Msg {
				return playbackResultMsg{err: m.deps.Coordinator.HandleTrackEnd()}
			},
			m.listenForProgress(),
		)

	case tea.WindowSizeMsg:
		m.playerBar.SetWidth(msg.Width)
		// Размеры передаются всем экранам
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.discoverModel, cmd = m.discoverModel.Update(msg)
		cmds = append(cmds, cmd)
		m.favoritesModel, cmd = m.favoritesModel.Update(msg)
		cmds = append(cmds, cmd)
		m.playlistModel, cmd = m.playlistModel.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Сообщения компонентов
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.noticeModel, cmd = m.noticeModel.Update(msg)
	cmds = append(cmds, cmd)

	m.playerBar, cmd = m.playerBar.Update(msg)
	cmds = append(cmds, cmd)

	// Остальное получает активный экран
	switch m.currentScreen {
	case FavoritesScreen:
		m.favoritesModel, cmd = m.favoritesModel.Update(msg)
	case PlaylistScreen:
		m.playlistModel, cmd = m.playlistModel.Update(msg)
	default:
		m.discoverModel, cmd = m.discoverModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleRemove удаляет трек с активного экрана
func (m *MainModel) handleRemove(track catalog.Track) (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case FavoritesScreen:
		if _, err := m.deps.Favorites.Toggle(track); err != nil {
			m.deps.Logger.Error().Err(err).Msg("ошибка сохранения избранного")
			return m, m.noticeModel.Show("Не удалось сохранить избранное")
		}
		m.refreshLists()
		return m, m.noticeModel.Show("Удалено из избранного")

	case PlaylistScreen:
		hadCurrent := m.deps.Playlist.CurrentIndex() != playlist.NoCurrent
		if err := m.deps.Playlist.Remove(track.ID); err != nil {
			m.deps.Logger.Error().Err(err).Msg("ошибка сохранения плейлиста")
			return m, m.noticeModel.Show("Не удалось сохранить плейлист")
		}
		// Remove сбрасывает указатель при удалении играющего трека -
		// в этом случае останавливаем и воспроизведение
		if hadCurrent && m.deps.Playlist.CurrentIndex() == playlist.NoCurrent {
			m.deps.Coordinator.Close()
			m.refreshLists()
			return m, tea.Batch(
				m.playerBar.Reset(),
				m.noticeModel.Show("Удалено из плейлиста"),
			)
		}
		m.refreshLists()
		return m, m.noticeModel.Show("Удалено из плейлиста")
	}
	return m, nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var screen string
	switch m.currentScreen {
	case FavoritesScreen:
		screen = m.favoritesModel.View()
	case PlaylistScreen:
		screen = m.playlistModel.View()
	default:
		screen = m.discoverModel.View()
	}

	view := screen
	if m.noticeModel.Visible() {
		view += "\n" + m.noticeModel.View()
	}
	view += "\n" + m.playerBar.View()
	view += "\n" + helpStyle.Render(
		"1: каталог • 2: избранное • 3: плейлист • Пробел: пауза • n/b: след/пред • r: повтор • x: закрыть • q: выход")
	return view
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	m.deps.Coordinator.Close()
	if m.deps.Player != nil {
		_ = m.deps.Player.Close()
	}
}
