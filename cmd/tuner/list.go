package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/browse"
	"github.com/hazadus/go-tuner/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var genre string
	var sortKey string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracks from the catalog",
		Long:  `Display catalog tracks with optional genre filter, sort order and search query.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listTracks(genre, browse.SortKey(sortKey), query)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "фильтр по жанру (точное совпадение)")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", "", "порядок: title-asc, title-desc, artist-asc, artist-desc")
	cmd.Flags().StringVarP(&query, "search", "q", "", "поиск по названию или исполнителю")

	return cmd
}

func (app *Application) listTracks(genre string, sortKey browse.SortKey, query string) {
	tracks := browse.FilterByGenre(app.Catalog.Tracks(), genre)
	tracks = browse.SearchTracks(tracks, query)
	tracks = browse.SortTracks(tracks, sortKey)

	if len(tracks) == 0 {
		fmt.Println("🎵 Треки не найдены. Обновите каталог командой 'sync' или измените фильтр.")
		return
	}

	fmt.Printf("🎵 Найдено треков: %d\n\n", len(tracks))

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-2s %-25s %-35s %-15s\n",
		"ID", "", "Исполнитель", "Название", "Жанр")
	fmt.Println(strings.Repeat("-", 85))

	// Выводим каждый трек
	for _, track := range tracks {
		favoriteMark := " "
		if app.Favorites.IsFavorite(track.ID) {
			favoriteMark = "♥"
		}

		artist := utils.TruncateString(track.Artist, 23)
		title := utils.TruncateString(track.Title, 33)

		fmt.Printf("%-4d %-2s %-25s %-35s %-15s\n",
			track.ID, favoriteMark, artist, title, track.Genre)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'tuner play [ID]' для воспроизведения трека")
}
