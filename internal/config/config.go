// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogPath   string `yaml:"catalog_path"`
	CatalogURL    string `yaml:"catalog_url"`
	ProfilePath   string `yaml:"profile_path"`
	LogPath       string `yaml:"log_path"`
	LogLevel      string `yaml:"log_level"`
	PageSize      int    `yaml:"page_size"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не считается ошибкой: возвращается конфигурация
// со значениями по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.CatalogPath == "" {
		config.CatalogPath = "~/.tuner-catalog.json"
	}
	if config.ProfilePath == "" {
		config.ProfilePath = "~/.tuner-profile.yml"
	}
	if config.LogPath == "" {
		config.LogPath = "~/.tuner.log"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.PageSize <= 0 {
		config.PageSize = 10
	}

	// Раскрываем тильду в путях
	config.CatalogPath = strings.Replace(config.CatalogPath, "~", home, 1)
	config.ProfilePath = strings.Replace(config.ProfilePath, "~", home, 1)
	config.LogPath = strings.Replace(config.LogPath, "~", home, 1)

	return config, nil
}
