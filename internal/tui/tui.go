// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tuner/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	deps app.Deps
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(deps app.Deps) *App {
	return &App{deps: deps}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := app.NewMainModel(tuiApp.deps)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Закрываем плеер после завершения программы
	model.Close()

	return err
}
