package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	// Отсутствующий ключ
	if _, ok := s.Get("missing"); ok {
		t.Error("Ожидалось отсутствие значения для несуществующего ключа")
	}

	// Запись и чтение
	if err := s.Set("key", []byte("value")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}
	value, ok := s.Get("key")
	if !ok {
		t.Fatal("Ожидалось наличие значения после записи")
	}
	if string(value) != "value" {
		t.Errorf("Ожидалось значение: value, получено: %s", value)
	}

	// Удаление
	if err := s.Delete("key"); err != nil {
		t.Fatalf("Ошибка удаления ключа: %v", err)
	}
	if _, ok := s.Get("key"); ok {
		t.Error("Ожидалось отсутствие значения после удаления")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	// Создаем хранилище во временной директории
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "profile.yaml")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}

	// Записываем пару значений
	if err := s.Set(KeyFavorites, []byte("[1,2,3]")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}
	if err := s.Set(KeyPlaylist, []byte("[5]")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}

	// Открываем хранилище заново и проверяем, что данные сохранились
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Ошибка повторного открытия хранилища: %v", err)
	}
	value, ok := reopened.Get(KeyFavorites)
	if !ok {
		t.Fatal("Ожидалось наличие значения favorites после повторного открытия")
	}
	if string(value) != "[1,2,3]" {
		t.Errorf("Ожидалось значение: [1,2,3], получено: %s", value)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	// Несуществующий файл должен давать пустое хранилище без ошибки
	tempDir := t.TempDir()
	s, err := NewFileStore(filepath.Join(tempDir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}
	if _, ok := s.Get(KeyFavorites); ok {
		t.Error("Ожидалось пустое хранилище для несуществующего файла")
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	// Поврежденный файл должен трактоваться как пустое хранилище
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "profile.yaml")
	if err := os.WriteFile(path, []byte("{broken: [yaml"), 0644); err != nil {
		t.Fatalf("Ошибка записи тестового файла: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}
	if _, ok := s.Get(KeyFavorites); ok {
		t.Error("Ожидалось пустое хранилище для поврежденного файла")
	}

	// После записи хранилище снова становится рабочим
	if err := s.Set(KeyFavorites, []byte("[7]")); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}
	value, ok := s.Get(KeyFavorites)
	if !ok || string(value) != "[7]" {
		t.Errorf("Ожидалось значение: [7], получено: %s", value)
	}
}

func TestFileStoreDelete(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "profile.yaml")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}

	if err := s.Set(KeyLoggedInUser, []byte(`"laras"`)); err != nil {
		t.Fatalf("Ошибка записи значения: %v", err)
	}
	if err := s.Delete(KeyLoggedInUser); err != nil {
		t.Fatalf("Ошибка удаления ключа: %v", err)
	}

	// Удаление должно пережить повторное открытие
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Ошибка повторного открытия хранилища: %v", err)
	}
	if _, ok := reopened.Get(KeyLoggedInUser); ok {
		t.Error("Ожидалось отсутствие значения после удаления и повторного открытия")
	}
}
