// Package store содержит адаптер локального хранилища "ключ-значение"
package store

// Store - интерфейс хранилища профиля пользователя. Менеджеры избранного,
// плейлиста и сессии работают только через него, поэтому в тестах вместо
// файла подставляется хранилище в памяти.
type Store interface {
	// Get возвращает значение по ключу; второй результат false, если ключа нет
	Get(key string) ([]byte, bool)
	// Set записывает значение по ключу. Запись синхронная: после возврата
	// хранилище уже отражает новое состояние.
	Set(key string, value []byte) error
	// Delete удаляет ключ
	Delete(key string) error
}

// Ключи хранилища
const (
	KeyFavorites    = "favorites"
	KeyPlaylist     = "myPlaylist"
	KeyLoggedInUser = "loggedInUser"
	KeyUsers        = "users"
)

// MemoryStore - хранилище в памяти для тестов
type MemoryStore struct {
	values map[string][]byte
}

// NewMemoryStore создает новое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

// Get возвращает значение по ключу
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Set записывает значение по ключу
func (s *MemoryStore) Set(key string, value []byte) error {
	s.values[key] = value
	return nil
}

// Delete удаляет ключ
func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
