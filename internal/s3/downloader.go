// Package s3 предоставляет функционал для получения каталога из S3-совместимого хранилища
package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// Downloader обертка для S3 downloader
type Downloader struct {
	s3Downloader *s3manager.Downloader
	config       *Config
}

// NewDownloader создает новый S3 downloader
func NewDownloader(config *Config) (*Downloader, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Downloader{
		s3Downloader: s3manager.NewDownloader(sess),
		config:       config,
	}, nil
}

// DownloadObject скачивает объект из бакета целиком
func (d *Downloader) DownloadObject(ctx context.Context, key string) ([]byte, error) {
	buffer := aws.NewWriteAtBuffer([]byte{})

	_, err := d.s3Downloader.DownloadWithContext(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(d.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания объекта %s: %w", key, err)
	}

	return buffer.Bytes(), nil
}
