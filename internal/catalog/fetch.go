package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetch загружает каталог по HTTP один раз при старте приложения
func (c *Catalog) Fetch(ctx context.Context, url string) error {
	data, err := Download(ctx, url)
	if err != nil {
		return err
	}
	return c.Decode(data)
}

// Download скачивает JSON-файл каталога по указанному URL
func Download(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "go-tuner/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки каталога: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	// Каталог отдается как статический ресурс, Content-Type проверяем нестрого
	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "json") && !strings.Contains(contentType, "octet-stream") {
		fmt.Printf("⚠️  Предупреждение: неожиданный Content-Type: %s\n", contentType)
	}

	return io.ReadAll(resp.Body)
}
