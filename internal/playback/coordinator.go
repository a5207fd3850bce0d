// Package playback содержит координатор воспроизведения - машину состояний
// поверх единственного аудиовыхода
package playback

import (
	"sync"
	"time"

	"github.com/hazadus/go-tuner/internal/catalog"
)

// State - состояние координатора
type State int

// Состояния воспроизведения
const (
	// StateIdle - трек не выбран
	StateIdle State = iota
	// StateLoaded - трек выбран, воспроизведение на паузе
	StateLoaded
	// StatePlaying - трек выбран, аудио играет
	StatePlaying
)

// Output - управляющий интерфейс аудиовыхода. Реальная реализация находится
// в пакете audio; тесты подставляют заглушку.
type Output interface {
	// Play начинает воспроизведение трека с начала
	Play(track catalog.Track) error
	// Pause приостанавливает воспроизведение
	Pause()
	// Resume возобновляет воспроизведение
	Resume()
	// Rewind перематывает текущий трек на начало
	Rewind() error
	// Stop останавливает воспроизведение и освобождает источник
	Stop()
}

// Coordinator владеет указателем текущего трека, флагами play/pause и repeat
// и прогрессом. Все команды аудиовыходу проходят только через него.
type Coordinator struct {
	mu sync.RWMutex

	output   Output
	sequence []catalog.Track // отображаемая последовательность для next/prev
	current  *catalog.Track
	state    State
	repeat   bool
	ratio    float64
}

// NewCoordinator создает координатор поверх аудиовыхода
func NewCoordinator(output Output) *Coordinator {
	return &Coordinator{
		output: output,
		state:  StateIdle,
	}
}

// SetSequence задает отображаемую последовательность треков, в рамках которой
// работают Next и Previous
func (c *Coordinator) SetSequence(tracks []catalog.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sequence = make([]catalog.Track, len(tracks))
	copy(c.sequence, tracks)
}

// SelectTrack выбирает трек и запускает воспроизведение. Повторный выбор
// текущего трека переключает паузу вместо перезапуска.
func (c *Coordinator) SelectTrack(track catalog.Track) error {
	c.mu.Lock()

	if c.current != nil && c.current.ID == track.ID && c.state != StateIdle {
		c.togglePlayLocked()
		c.mu.Unlock()
		return nil
	}

	err := c.startLocked(track)
	c.mu.Unlock()
	return err
}

// startLocked запускает воспроизведение трека. При ошибке запуска координатор
// возвращается в прежнее состояние, а ошибка отдается вызывающему.
func (c *Coordinator) startLocked(track catalog.Track) error {
	if err := c.output.Play(track); err != nil {
		return err
	}

	t := track
	c.current = &t
	c.state = StatePlaying
	c.ratio = 0
	return nil
}

// TogglePlay переключает паузу; из состояния Idle ничего не делает
func (c *Coordinator) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.togglePlayLocked()
}

func (c *Coordinator) togglePlayLocked() {
	switch c.state {
	case StatePlaying:
		c.output.Pause()
		c.state = StateLoaded
	case StateLoaded:
		c.output.Resume()
		c.state = StatePlaying
	}
}

// Next переходит к следующему треку отображаемой последовательности,
// зацикливаясь на ее конце. Из состояния Idle ничего не делает.
func (c *Coordinator) Next() error {
	return c.step(1)
}

// Previous переходит к предыдущему треку отображаемой последовательности,
// зацикливаясь на ее начале. Из состояния Idle ничего не делает.
func (c *Coordinator) Previous() error {
	return c.step(-1)
}

// step сдвигает указатель на delta позиций по модулю длины последовательности.
// Если текущий трек в последовательность не входит (она сменилась вместе с
// экраном), вперед идем с ее начала, назад - с конца.
func (c *Coordinator) step(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle || c.current == nil {
		return nil
	}
	n := len(c.sequence)
	if n == 0 {
		return nil
	}

	index := c.indexOfLocked(c.current.ID)
	var next int
	switch {
	case index >= 0:
		next = ((index+delta)%n + n) % n
	case delta > 0:
		next = 0
	default:
		next = n - 1
	}
	return c.startLocked(c.sequence[next])
}

// indexOfLocked возвращает позицию трека в последовательности или -1
func (c *Coordinator) indexOfLocked(trackID int) int {
	for i := range c.sequence {
		if c.sequence[i].ID == trackID {
			return i
		}
	}
	return -1
}

// HandleTrackEnd обрабатывает естественное окончание трека: при включенном
// повторе трек начинается заново, иначе выполняется переход к следующему
func (c *Coordinator) HandleTrackEnd() error {
	c.mu.Lock()

	if c.state == StateIdle || c.current == nil {
		c.mu.Unlock()
		return nil
	}

	if c.repeat {
		err := c.output.Rewind()
		if err == nil {
			c.state = StatePlaying
			c.ratio = 0
		}
		c.mu.Unlock()
		return err
	}

	c.mu.Unlock()
	return c.Next()
}

// SetRepeat включает или выключает режим повтора
func (c *Coordinator) SetRepeat(repeat bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repeat = repeat
}

// Repeat возвращает текущее значение флага повтора
func (c *Coordinator) Repeat() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.repeat
}

// Close останавливает воспроизведение и сбрасывает координатор в Idle
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.output.Stop()
	c.current = nil
	c.state = StateIdle
	c.ratio = 0
}

// Current возвращает текущий трек или nil
func (c *Coordinator) Current() *catalog.Track {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return nil
	}
	track := *c.current
	return &track
}

// State возвращает текущее состояние координатора
func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsPlaying возвращает true, если аудио сейчас играет
func (c *Coordinator) IsPlaying() bool {
	return c.State() == StatePlaying
}

// SetProgress обновляет прогресс по данным аудиовыхода. Значение носит
// справочный характер и не влияет на переходы состояний.
func (c *Coordinator) SetProgress(position, total time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if total <= 0 {
		c.ratio = 0
		return
	}
	ratio := float64(position) / float64(total)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	c.ratio = ratio
}

// ProgressRatio возвращает прогресс воспроизведения в диапазоне [0, 1]
func (c *Coordinator) ProgressRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ratio
}
