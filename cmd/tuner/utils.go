package main

import (
	"fmt"

	"github.com/hazadus/go-tuner/internal/audio"
	"github.com/hazadus/go-tuner/internal/utils"
)

// displayProgress отображает прогресс воспроизведения в одной строке
func displayProgress(progress audio.Progress) {
	var percent string
	if progress.Total > 0 {
		percent = fmt.Sprintf("%.1f%%", float64(progress.Position)/float64(progress.Total)*100)
	} else {
		percent = "??%"
	}

	statusIcon := "▶"
	if !progress.Playing {
		statusIcon = "⏸"
	}

	fmt.Printf("\r%s  %s | %s",
		statusIcon,
		percent,
		utils.FormatPlaybackTime(progress.Position, progress.Total))
}
