package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/audio"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	var repeat bool

	cmd := &cobra.Command{
		Use:   "play [trackid]",
		Short: "Play a track by its ID",
		Long:  `Play a track preview by its catalog ID.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			trackID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID трека: %s", args[0])
			}
			return app.playByID(ctx, trackID, repeat)
		},
	}

	cmd.Flags().BoolVarP(&repeat, "repeat", "r", false, "повторять трек после окончания")

	return cmd
}

// enableRawMode включает режим raw для терминала (без буферизации и echo)
func enableRawMode() {
	cmd := exec.Command("stty", "-echo", "-icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Игнорируем ошибку, так как это не критично для работы плеера
}

// disableRawMode восстанавливает нормальный режим терминала
func disableRawMode() {
	cmd := exec.Command("stty", "echo", "icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}

// readSingleChar читает одиночный символ без ожидания Enter
func readSingleChar() (byte, error) {
	buffer := make([]byte, 1)
	_, err := os.Stdin.Read(buffer)
	return buffer[0], err
}

func (app *Application) playByID(ctx context.Context, trackID int, repeat bool) error {
	// Находим трек по ID
	track, err := app.Catalog.TrackByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	fmt.Printf("🎵 Сейчас играет:\n")
	fmt.Printf("   ID: %d\n", track.ID)
	fmt.Printf("   Исполнитель: %s\n", track.Artist)
	fmt.Printf("   Название: %s\n", track.Title)
	fmt.Printf("   Жанр: %s\n", track.Genre)
	fmt.Println()

	// Создаем плеер
	player := audio.NewPlayer()
	defer player.Close()

	// Запускаем воспроизведение
	if err := player.Play(*track); err != nil {
		app.Logger.Error().Err(err).Int("track_id", track.ID).Msg("ошибка воспроизведения")
		return fmt.Errorf("ошибка запуска воспроизведения: %w", err)
	}

	app.Logger.Info().Int("track_id", track.ID).Msg("воспроизведение начато")

	fmt.Printf("🎮 Управление:\n")
	fmt.Printf("   [Пробел] - пауза/воспроизведение\n")
	fmt.Printf("   [Ctrl+C] - остановить и выйти\n")
	fmt.Println()

	// Включаем raw режим для чтения одиночных клавиш
	enableRawMode()
	defer disableRawMode()

	// Запускаем горутину для обработки клавиш
	go func() {
		for {
			char, err := readSingleChar()
			if err != nil {
				continue
			}

			// Пробел (ASCII 32) или Enter (ASCII 10/13) переключают паузу
			if char == 32 || char == 10 || char == 13 {
				if player.IsPlaying() {
					player.Pause()
					fmt.Printf("\r\033[K⏸  Пауза\n")
				} else {
					player.Resume()
					fmt.Printf("\r\033[K▶  Воспроизведение\n")
				}
			}
		}
	}()

	// Главный цикл обработки событий
	for {
		select {
		case progress := <-player.Progress():
			displayProgress(progress)

		case <-player.Done():
			if repeat {
				// Повтор: начинаем трек заново
				if err := player.Rewind(); err != nil {
					return fmt.Errorf("ошибка перезапуска трека: %w", err)
				}
				continue
			}
			fmt.Println("\n✅ Воспроизведение завершено")
			return nil

		case <-ctx.Done():
			fmt.Println("\n⏹  Воспроизведение остановлено")
			player.Stop()
			return nil
		}
	}
}
