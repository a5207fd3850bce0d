// Package audio содержит аудиовыход на основе beep: единственный источник
// звука, которым командует координатор воспроизведения
package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/streaming"
)

// Интервал опроса позиции воспроизведения
const progressInterval = 500 * time.Millisecond

// Progress - снимок позиции воспроизведения для индикатора прогресса
type Progress struct {
	Position time.Duration // Текущая позиция
	Total    time.Duration // Общая продолжительность
	Playing  bool          // Играет ли аудио
}

// Player воспроизводит превью треков по их URL. Одновременно со speaker
// связан не более чем один трек; запуск нового трека освобождает предыдущий.
type Player struct {
	// Каналы для обратной связи
	progressChan chan Progress
	doneChan     chan struct{}

	// Внутреннее состояние
	ctx           context.Context
	cancel        context.CancelFunc
	mutex         sync.RWMutex
	isInitialized bool
	isPaused      bool

	// Компоненты воспроизведения
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	source   io.ReadCloser
}

// NewPlayer создает новый аудиовыход
func NewPlayer() *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		progressChan: make(chan Progress, 1),
		doneChan:     make(chan struct{}, 1),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Progress возвращает канал с обновлениями позиции воспроизведения
func (p *Player) Progress() <-chan Progress {
	return p.progressChan
}

// Done возвращает канал, в который отправляется сигнал при естественном
// окончании трека
func (p *Player) Done() <-chan struct{} {
	return p.doneChan
}

// Play начинает воспроизведение превью трека с начала
func (p *Player) Play(track catalog.Track) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if track.Preview == "" {
		return fmt.Errorf("у трека %q отсутствует URL превью", track.Title)
	}

	// Освобождаем предыдущий источник, если он был
	p.stopInternal()

	// Удаленные превью играем через потоковый ридер, локальные файлы
	// (добавленные командой импорта) открываем напрямую
	var source io.ReadCloser
	var err error
	if strings.HasPrefix(track.Preview, "http://") || strings.HasPrefix(track.Preview, "https://") {
		source, err = streaming.NewReader(p.ctx, track.Preview)
		if err != nil {
			return fmt.Errorf("ошибка создания потокового ридера: %w", err)
		}
	} else {
		source, err = os.Open(track.Preview)
		if err != nil {
			return fmt.Errorf("ошибка открытия файла: %w", err)
		}
	}
	p.source = source

	// Декодируем MP3
	streamer, format, err := mp3.Decode(source)
	if err != nil {
		source.Close()
		p.source = nil
		return fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	p.streamer = streamer

	// Инициализируем speaker (только один раз)
	if !p.isInitialized {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/5))
		if err != nil {
			streamer.Close()
			source.Close()
			p.streamer = nil
			p.source = nil
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.isInitialized = true
	}

	// Создаем контроллер паузы
	p.ctrl = &beep.Ctrl{
		Streamer: streamer,
		Paused:   false,
	}
	p.isPaused = false

	// Запускаем воспроизведение с уведомлением об окончании трека
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(p.notifyDone)))

	// Запускаем мониторинг позиции в отдельной горутине
	go p.monitorProgress(format)

	return nil
}

// notifyDone отправляет сигнал окончания трека, не блокируясь.
// После Close сигналы не отправляются.
func (p *Player) notifyDone() {
	if p.ctx.Err() != nil {
		return
	}
	select {
	case p.doneChan <- struct{}{}:
	default:
	}
}

// publishProgress отправляет снимок позиции, не блокируясь: если канал занят
// или плеер закрыт, обновление пропускается
func (p *Player) publishProgress(progress Progress) {
	if p.ctx.Err() != nil {
		return
	}
	select {
	case p.progressChan <- progress:
	default:
	}
}

// Pause приостанавливает воспроизведение
func (p *Player) Pause() {
	p.setPaused(true)
}

// Resume возобновляет воспроизведение
func (p *Player) Resume() {
	p.setPaused(false)
}

func (p *Player) setPaused(paused bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = paused
		p.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// Rewind перематывает текущий трек на начало и продолжает воспроизведение.
// Используется режимом повтора после естественного окончания трека.
func (p *Player) Rewind() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.streamer == nil || p.ctrl == nil {
		return fmt.Errorf("нет активного трека")
	}

	// После окончания трека speaker уже отпустил источник, поэтому после
	// перемотки ставим его в очередь заново
	speaker.Clear()
	if err := p.streamer.Seek(0); err != nil {
		return fmt.Errorf("ошибка перемотки трека: %w", err)
	}
	p.isPaused = false
	p.ctrl.Paused = false
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(p.notifyDone)))
	return nil
}

// Stop останавливает воспроизведение и освобождает источник
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Player) stopInternal() {
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	if p.source != nil {
		p.source.Close()
		p.source = nil
	}

	p.isPaused = false
}

// Close закрывает аудиовыход и освобождает ресурсы. Каналы прогресса и
// завершения не закрываются: ими владеют отправляющие горутины, которые
// узнают о завершении через контекст. Получатели после Close просто
// перестают получать сообщения.
func (p *Player) Close() error {
	p.cancel()
	p.Stop()
	return nil
}

// IsPlaying возвращает true, если аудио сейчас играет
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.ctrl != nil && !p.isPaused
}

// monitorProgress периодически опрашивает позицию воспроизведения и
// отправляет снимки в канал прогресса
func (p *Player) monitorProgress(format beep.Format) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mutex.RLock()

			if p.streamer == nil || p.ctrl == nil {
				p.mutex.RUnlock()
				return
			}

			speaker.Lock()
			position := format.SampleRate.D(p.streamer.Position())
			total := format.SampleRate.D(p.streamer.Len())
			paused := p.isPaused
			speaker.Unlock()

			p.mutex.RUnlock()

			p.publishProgress(Progress{
				Position: position,
				Total:    total,
				Playing:  !paused,
			})
		}
	}
}
