// Package session содержит логику регистрации и входа локального профиля
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hazadus/go-tuner/internal/store"
)

// Ошибки, по которым вызывающий код различает исходы
var (
	ErrUserExists         = errors.New("пользователь с таким именем уже существует")
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrNotLoggedIn        = errors.New("вход не выполнен")
)

// User - запись зарегистрированного пользователя. Пароль хранится только
// в виде bcrypt-хеша.
type User struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Manager управляет списком пользователей и текущей сессией поверх хранилища
type Manager struct {
	store store.Store
}

// NewManager создает менеджер сессий
func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// loadUsers читает список пользователей; нечитаемое значение дает пустой список
func (m *Manager) loadUsers() []User {
	value, ok := m.store.Get(store.KeyUsers)
	if !ok {
		return nil
	}

	var users []User
	if err := json.Unmarshal(value, &users); err != nil {
		return nil
	}
	return users
}

// saveUsers сохраняет список пользователей
func (m *Manager) saveUsers(users []User) error {
	value, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return m.store.Set(store.KeyUsers, value)
}

// Register создает нового пользователя. Имя пользователя должно быть уникальным.
func (m *Manager) Register(fullName, email, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("имя пользователя и пароль обязательны")
	}

	users := m.loadUsers()
	for _, u := range users {
		if u.Username == username {
			return ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	users = append(users, User{
		FullName:     fullName,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	})
	return m.saveUsers(users)
}

// Login проверяет пароль и открывает сессию
func (m *Manager) Login(username, password string) error {
	for _, u := range m.loadUsers() {
		if u.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		value, err := json.Marshal(username)
		if err != nil {
			return err
		}
		return m.store.Set(store.KeyLoggedInUser, value)
	}
	return ErrInvalidCredentials
}

// Logout закрывает текущую сессию
func (m *Manager) Logout() error {
	return m.store.Delete(store.KeyLoggedInUser)
}

// Current возвращает пользователя открытой сессии
func (m *Manager) Current() (*User, error) {
	value, ok := m.store.Get(store.KeyLoggedInUser)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var username string
	if err := json.Unmarshal(value, &username); err != nil {
		return nil, ErrNotLoggedIn
	}

	for _, u := range m.loadUsers() {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotLoggedIn
}
