package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tuner",
		Short: "A command line tool to discover and play music",
		Long:  `A command line tool to browse a music catalog, manage favorites and a playlist, and play track previews.`,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createFavCommand())
	rootCmd.AddCommand(app.createPlaylistCommand())
	rootCmd.AddCommand(app.createRegisterCommand())
	rootCmd.AddCommand(app.createLoginCommand())
	rootCmd.AddCommand(app.createLogoutCommand())
	rootCmd.AddCommand(app.createWhoamiCommand())
	rootCmd.AddCommand(app.createSyncCommand(ctx))
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
