package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/audio"
	"github.com/hazadus/go-tuner/internal/playback"
	"github.com/hazadus/go-tuner/internal/tui"
	"github.com/hazadus/go-tuner/internal/tui/app"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (application *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing the catalog and playing tracks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return application.launchTUI()
		},
	}
}

func (application *Application) launchTUI() error {
	// Плеер служит аудиовыводом координатора
	player := audio.NewPlayer()
	coordinator := playback.NewCoordinator(player)

	tuiApp := tui.NewApp(app.Deps{
		Catalog:     application.Catalog,
		Favorites:   application.Favorites,
		Playlist:    application.Playlist,
		Coordinator: coordinator,
		Player:      player,
		PageSize:    application.Config.PageSize,
		Logger:      application.Logger,
	})

	return tuiApp.Run()
}
