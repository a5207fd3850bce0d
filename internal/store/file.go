package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileStore - файловое хранилище профиля. Все ключи лежат в одном YAML-файле
// в домашней директории пользователя; каждая запись сразу сохраняется на диск.
type FileStore struct {
	path   string
	values map[string]string
}

// NewFileStore создает файловое хранилище и загружает существующие данные.
// Отсутствующий или нечитаемый файл трактуется как пустое хранилище.
func NewFileStore(filePath string) (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	s.load()
	return s, nil
}

// load читает файл хранилища; любые ошибки превращаются в пустое состояние
func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		// Поврежденный файл не должен ломать приложение
		return
	}
	s.values = values
}

// Get возвращает значение по ключу
func (s *FileStore) Get(key string) ([]byte, bool) {
	value, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

// Set записывает значение по ключу и сохраняет файл
func (s *FileStore) Set(key string, value []byte) error {
	s.values[key] = string(value)
	return s.save()
}

// Delete удаляет ключ и сохраняет файл
func (s *FileStore) Delete(key string) error {
	delete(s.values, key)
	return s.save()
}

// save записывает все значения в YAML-файл
func (s *FileStore) save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("ошибка сериализации хранилища: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла хранилища: %w", err)
	}
	return nil
}
