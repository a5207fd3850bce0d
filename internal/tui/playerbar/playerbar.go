// Package playerbar содержит постоянную панель плеера, видимую на всех экранах
package playerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tuner/internal/playback"
	"github.com/hazadus/go-tuner/internal/utils"
)

var (
	barStyle = lipgloss.NewStyle().
			MarginTop(1).
			PaddingLeft(2)

	trackStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Model представляет модель панели плеера
type Model struct {
	coordinator *playback.Coordinator
	progressBar progress.Model
	position    time.Duration
	total       time.Duration
}

// NewModel создает новую модель панели плеера
func NewModel(coordinator *playback.Coordinator) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40
	prog.ShowPercentage = false

	return &Model{
		coordinator: coordinator,
		progressBar: prog,
	}
}

// SetProgress обновляет позицию воспроизведения
func (m *Model) SetProgress(position, total time.Duration) tea.Cmd {
	m.position = position
	m.total = total

	var percent float64
	if total > 0 {
		percent = float64(position) / float64(total)
	}
	return m.progressBar.SetPercent(percent)
}

// Reset сбрасывает панель после закрытия плеера
func (m *Model) Reset() tea.Cmd {
	m.position = 0
	m.total = 0
	return m.progressBar.SetPercent(0)
}

// SetWidth подгоняет ширину прогресс-бара под окно
func (m *Model) SetWidth(width int) {
	barWidth := width - 10
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.progressBar.Width = barWidth
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if frame, ok := msg.(progress.FrameMsg); ok {
		progressModel, cmd := m.progressBar.Update(frame)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// View отображает панель плеера
func (m *Model) View() string {
	track := m.coordinator.Current()
	if track == nil {
		return barStyle.Render(dimStyle.Render("Ничего не играет"))
	}

	var statusIcon string
	if m.coordinator.IsPlaying() {
		statusIcon = "▶"
	} else {
		statusIcon = "⏸"
	}

	repeatMark := ""
	if m.coordinator.Repeat() {
		repeatMark = " 🔁"
	}

	info := fmt.Sprintf("%s %s - %s%s",
		statusIcon,
		trackStyle.Render(track.Artist),
		trackStyle.Render(track.Title),
		repeatMark)

	timeText := dimStyle.Render(utils.FormatPlaybackTime(m.position, m.total))

	return barStyle.Render(fmt.Sprintf("%s\n%s %s", info, m.progressBar.View(), timeText))
}
