package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/utils"
)

// createPlaylistCommand создает команду playlist с подкомандами add и remove
func (app *Application) createPlaylistCommand() *cobra.Command {
	playlistCmd := &cobra.Command{
		Use:   "playlist",
		Short: "Show and manage the playlist",
		Long:  `Without subcommands, show the playlist. Use 'add' and 'remove' to manage tracks.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.showPlaylist()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [trackid]",
		Short: "Add a track to the playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			trackID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID трека: %s", args[0])
			}
			return app.addToPlaylist(trackID)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [trackid]",
		Short: "Remove a track from the playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			trackID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID трека: %s", args[0])
			}
			return app.removeFromPlaylist(trackID)
		},
	}

	playlistCmd.AddCommand(addCmd)
	playlistCmd.AddCommand(removeCmd)

	return playlistCmd
}

func (app *Application) showPlaylist() {
	tracks := app.Playlist.Tracks()
	if len(tracks) == 0 {
		fmt.Println("📋 Плейлист пока пуст. Добавьте трек командой 'playlist add [ID]'.")
		return
	}

	fmt.Printf("📋 Треков в плейлисте: %d\n\n", len(tracks))
	for i, track := range tracks {
		fmt.Printf("%-3d %-4d %-25s %s\n",
			i+1,
			track.ID,
			utils.TruncateString(track.Artist, 25),
			track.Title)
	}
}

func (app *Application) addToPlaylist(trackID int) error {
	track, err := app.Catalog.TrackByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	added, err := app.Playlist.Add(*track)
	if err != nil {
		app.Logger.Error().Err(err).Int("track_id", trackID).Msg("ошибка сохранения плейлиста")
		return fmt.Errorf("ошибка сохранения плейлиста: %w", err)
	}

	if added {
		fmt.Printf("📋 Добавлено в плейлист: %s - %s\n", track.Artist, track.Title)
	} else {
		fmt.Printf("📋 Трек уже в плейлисте: %s - %s\n", track.Artist, track.Title)
	}
	return nil
}

func (app *Application) removeFromPlaylist(trackID int) error {
	if !app.Playlist.Contains(trackID) {
		return fmt.Errorf("трека с ID %d нет в плейлисте", trackID)
	}

	if err := app.Playlist.Remove(trackID); err != nil {
		app.Logger.Error().Err(err).Int("track_id", trackID).Msg("ошибка сохранения плейлиста")
		return fmt.Errorf("ошибка сохранения плейлиста: %w", err)
	}

	fmt.Printf("📋 Трек с ID %d удален из плейлиста\n", trackID)
	return nil
}
