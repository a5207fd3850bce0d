package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/utils"
)

// createFavCommand создает команду fav с привязкой к экземпляру приложения
func (app *Application) createFavCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fav [trackid]",
		Short: "Toggle a favorite or list favorites",
		Long:  `Without arguments, list favorite tracks. With a track ID, toggle that track's favorite status.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				app.listFavorites()
				return nil
			}

			trackID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID трека: %s", args[0])
			}
			return app.toggleFavorite(trackID)
		},
	}
}

func (app *Application) listFavorites() {
	tracks := app.Favorites.Tracks()
	if len(tracks) == 0 {
		fmt.Println("♥ В избранном пока пусто. Добавьте трек командой 'fav [ID]'.")
		return
	}

	fmt.Printf("♥ Избранных треков: %d\n\n", len(tracks))
	for _, track := range tracks {
		fmt.Printf("%-4d %-25s %s\n",
			track.ID,
			utils.TruncateString(track.Artist, 25),
			track.Title)
	}
}

func (app *Application) toggleFavorite(trackID int) error {
	track, err := app.Catalog.TrackByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	added, err := app.Favorites.Toggle(*track)
	if err != nil {
		app.Logger.Error().Err(err).Int("track_id", trackID).Msg("ошибка сохранения избранного")
		return fmt.Errorf("ошибка сохранения избранного: %w", err)
	}

	if added {
		fmt.Printf("♥ Добавлено в избранное: %s - %s\n", track.Artist, track.Title)
	} else {
		fmt.Printf("♡ Удалено из избранного: %s - %s\n", track.Artist, track.Title)
	}
	return nil
}
