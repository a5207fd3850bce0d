// Package streaming содержит буферизованный HTTP-ридер для потокового
// воспроизведения аудио-превью
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Размер буфера чтения: его хватает на несколько секунд MP3-потока
const bufferSize = 256 << 10

// Один клиент на все потоки. Общий таймаут не задаем: соединение живет
// столько, сколько играет трек.
var client = &http.Client{
	Transport: &http.Transport{
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       5 * time.Minute,
		MaxIdleConnsPerHost:   2,
	},
}

// Reader читает удаленный аудиофайл порциями через буфер
type Reader struct {
	buf  *bufio.Reader
	body io.ReadCloser
}

// NewReader открывает потоковое соединение с указанным URL
func NewReader(ctx context.Context, url string) (*Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Поток читаем без сжатия и с начала файла
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Range", "bytes=0-")
	req.Header.Set("User-Agent", "go-tuner/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		buf:  bufio.NewReaderSize(resp.Body, bufferSize),
		body: resp.Body,
	}, nil
}

// Read реализует интерфейс io.Reader
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.buf.Read(p)
}

// Close закрывает соединение
func (r *Reader) Close() error {
	return r.body.Close()
}
