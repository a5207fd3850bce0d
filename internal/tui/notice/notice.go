// Package notice содержит компонент всплывающих уведомлений для TUI
package notice

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// displayDuration определяет, как долго уведомление остается на экране
const displayDuration = 2 * time.Second

var noticeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#000000")).
	Background(lipgloss.Color("#ffdf5d")).
	Padding(0, 1)

// dismissMsg отправляется по истечении времени показа уведомления
type dismissMsg struct {
	generation int
}

// Model представляет модель уведомления
type Model struct {
	message    string
	generation int
}

// NewModel создает новую модель уведомления
func NewModel() *Model {
	return &Model{}
}

// Show показывает сообщение и возвращает команду его скрытия.
// Номер поколения не дает устаревшему таймеру скрыть более новое сообщение.
func (m *Model) Show(message string) tea.Cmd {
	m.message = message
	m.generation++

	generation := m.generation
	return tea.Tick(displayDuration, func(time.Time) tea.Msg {
		return dismissMsg{generation: generation}
	})
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if dismiss, ok := msg.(dismissMsg); ok {
		// Скрываем только если не было показано более нового сообщения
		if dismiss.generation == m.generation {
			m.message = ""
		}
	}
	return m, nil
}

// Visible сообщает, показано ли уведомление
func (m *Model) Visible() bool {
	return m.message != ""
}

// View отображает уведомление
func (m *Model) View() string {
	if m.message == "" {
		return ""
	}
	return noticeStyle.Render(m.message)
}
