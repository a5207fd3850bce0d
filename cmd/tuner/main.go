package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/config"
	"github.com/hazadus/go-tuner/internal/favorites"
	"github.com/hazadus/go-tuner/internal/logging"
	"github.com/hazadus/go-tuner/internal/playlist"
	"github.com/hazadus/go-tuner/internal/session"
	"github.com/hazadus/go-tuner/internal/store"
)

const defaultConfigPath = "~/.tuner"

// Application содержит зависимости приложения
type Application struct {
	Config    *config.Config
	Store     store.Store
	Catalog   *catalog.Catalog
	Favorites *favorites.Manager
	Playlist  *playlist.Manager
	Session   *session.Manager
	Logger    zerolog.Logger
}

// newApplication собирает приложение из конфигурации
func newApplication(cfg *config.Config) (*Application, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		// Без файла журнала приложение продолжает работать
		logger = logging.Nop()
	}

	profileStore, err := store.NewFileStore(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия профиля: %w", err)
	}

	cat := catalog.New()
	if err := cat.Load(cfg.CatalogPath); err != nil {
		// Каталог может отсутствовать до первого запуска sync или import
		logger.Warn().Err(err).Str("path", cfg.CatalogPath).Msg("каталог не загружен")
	}

	return &Application{
		Config:    cfg,
		Store:     profileStore,
		Catalog:   cat,
		Favorites: favorites.NewManager(profileStore, cat),
		Playlist:  playlist.NewManager(profileStore, cat),
		Session:   session.NewManager(profileStore),
		Logger:    logger,
	}, nil
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	// Собираем приложение
	app, err := newApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации: %v\n", err)
		os.Exit(1)
	}

	// Контекст отменяется по сигналу прерывания
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
