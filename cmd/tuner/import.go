package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/metadata"
	"github.com/hazadus/go-tuner/internal/utils"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file path]",
		Short: "Add a local mp3 file to the catalog",
		Long:  `Read tags from a local mp3 file and add it to the catalog as a playable track.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.importTrack(args[0])
		},
	}
}

func (app *Application) importTrack(filePath string) error {
	extractor := metadata.NewExtractor()

	track, err := extractor.ExtractTrack(filePath)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла: %w", err)
	}

	// Добавляем трек и сохраняем каталог
	added := app.Catalog.Append(track)
	if err := app.Catalog.Save(app.Config.CatalogPath); err != nil {
		return fmt.Errorf("ошибка сохранения каталога: %w", err)
	}

	app.Logger.Info().Int("track_id", added.ID).Str("file", filePath).Msg("трек добавлен в каталог")

	fmt.Printf("✅ Трек добавлен в каталог:\n")
	fmt.Printf("   ID: %d\n", added.ID)
	fmt.Printf("   Исполнитель: %s\n", added.Artist)
	fmt.Printf("   Название: %s\n", added.Title)
	if added.Genre != "" {
		fmt.Printf("   Жанр: %s\n", added.Genre)
	}

	// Длительность не обязательна: файл может не декодироваться целиком
	if duration, err := extractor.GetDuration(filePath); err == nil {
		fmt.Printf("   Длительность: %s\n", utils.FormatDuration(duration))
	}

	return nil
}
