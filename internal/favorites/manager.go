// Package favorites содержит логику управления избранными треками
package favorites

import (
	"encoding/json"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/store"
)

// Manager управляет набором избранных треков. В хранилище лежат только ID -
// сами треки всегда берутся из каталога.
type Manager struct {
	store   store.Store
	catalog *catalog.Catalog
	ids     []int
}

// NewManager создает менеджер избранного и загружает сохраненный набор
func NewManager(s store.Store, c *catalog.Catalog) *Manager {
	m := &Manager{
		store:   s,
		catalog: c,
		ids:     make([]int, 0),
	}
	m.load()
	return m
}

// load читает сохраненный набор; нечитаемое значение дает пустой набор
func (m *Manager) load() {
	value, ok := m.store.Get(store.KeyFavorites)
	if !ok {
		return
	}

	var ids []int
	if err := json.Unmarshal(value, &ids); err != nil {
		return
	}
	m.ids = ids
}

// persist сохраняет набор сразу после каждого изменения
func (m *Manager) persist() error {
	value, err := json.Marshal(m.ids)
	if err != nil {
		return err
	}
	return m.store.Set(store.KeyFavorites, value)
}

// Toggle добавляет трек в избранное или убирает его оттуда.
// Возвращает true, если трек был добавлен.
func (m *Manager) Toggle(track catalog.Track) (bool, error) {
	for i, id := range m.ids {
		if id == track.ID {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			return false, m.persist()
		}
	}

	m.ids = append(m.ids, track.ID)
	return true, m.persist()
}

// IsFavorite проверяет, находится ли трек в избранном
func (m *Manager) IsFavorite(trackID int) bool {
	for _, id := range m.ids {
		if id == trackID {
			return true
		}
	}
	return false
}

// IDs возвращает копию списка ID избранных треков
func (m *Manager) IDs() []int {
	ids := make([]int, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Tracks возвращает избранные треки, сверяясь с каталогом.
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
