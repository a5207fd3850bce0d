// Package playlist содержит логику управления персональным плейлистом
package playlist

import (
	"encoding/json"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/store"
)

// NoCurrent означает, что ни один трек плейлиста сейчас не воспроизводится
const NoCurrent = -1

// Manager управляет упорядоченным плейлистом пользователя. В хранилище лежат
// только ID треков в порядке добавления; указатель "сейчас играет" - индекс
// в этом списке, между сессиями он не сохраняется.
type Manager struct {
	store   store.Store
	catalog *catalog.Catalog
	ids     []int
	current int
}

// NewManager создает менеджер плейлиста и загружает сохраненный список
func NewManager(s store.Store, c *catalog.Catalog) *Manager {
	m := &Manager{
		store:   s,
		catalog: c,
		ids:     make([]int, 0),
		current: NoCurrent,
	}
	m.load()
	return m
}

// load читает сохраненный список; нечитаемое значение дает пустой плейлист
func (m *Manager) load() {
	value, ok := m.store.Get(store.KeyPlaylist)
	if !ok {
		return
	}

	var ids []int
	if err := json.Unmarshal(value, &ids); err != nil {
		return
	}
	m.ids = ids
}

// persist сохраняет список сразу после каждого изменения
func (m *Manager) persist() error {
	value, err := json.Marshal(m.ids)
	if err != nil {
		return err
	}
	return m.store.Set(store.KeyPlaylist, value)
}

// Add добавляет трек в конец плейлиста. Повторное добавление того же трека
// ничего не меняет и возвращает false.
func (m *Manager) Add(track catalog.Track) (bool, error) {
	for _, id := range m.ids {
		if id == track.ID {
			return false, nil
		}
	}

	m.ids = append(m.ids, track.ID)
	return true, m.persist()
}

// Remove удаляет трек из плейлиста и выравнивает указатель "сейчас играет":
// удаление играющего трека сбрасывает указатель, удаление трека перед ним
// сдвигает указатель на одну позицию влево.
func (m *Manager) Remove(trackID int) error {
	pos := -1
	for i, id := range m.ids {
		if id == trackID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}

	m.ids = append(m.ids[:pos], m.ids[pos+1:]...)

	if m.current != NoCurrent {
		switch {
		case pos == m.current:
			m.current = NoCurrent
		case pos < m.current:
			m.current--
		}
	}

	return m.persist()
}

// Contains проверяет, есть ли трек в плейлисте
func (m *Manager) Contains(trackID int) bool {
	for _, id := range m.ids {
		if id == trackID {
			return true
		}
	}
	return false
}

// Len возвращает количество треков в плейлисте
func (m *Manager) Len() int {
	return len(m.ids)
}

// IDs возвращает копию списка ID треков плейлиста
func (m *Manager) IDs() []int {
	ids := make([]int, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Tracks возвращает треки плейлиста, сверяясь с каталогом.
// ID, которых больше нет в каталоге, пропускаются.
func (m *Manager) Tracks() []catalog.Track {
	tracks := make([]catalog.Track, 0, len(m.ids))
	for _, id := range m.ids {
		track, err := m.catalog.TrackByID(id)
		if err != nil {
			continue
		}
		tracks = append(tracks, *track)
	}
	return tracks
}

// SetCurrent устанавливает указатель "сейчас играет" на позицию в плейлисте
func (m *Manager) SetCurrent(index int) {
	if index < 0 || index >= len(m.ids) {
		m.current = NoCurrent
		return
	}
	m.current = index
}

// ClearCurrent сбрасывает указатель "сейчас играет"
func (m *Manager) ClearCurrent() {
	m.current = NoCurrent
}

// CurrentIndex возвращает указатель "сейчас играет" (NoCurrent, если пусто)
func (m *Manager) CurrentIndex() int {
	return m.current
}

// CurrentTrack возвращает играющий трек плейлиста или nil
func (m *Manager) CurrentTrack() *catalog.Track {
	if m.current == NoCurrent || m.current >= len(m.ids) {
		return nil
	}
	track, err := m.catalog.TrackByID(m.ids[m.current])
	if err != nil {
		return nil
	}
	return track
}
