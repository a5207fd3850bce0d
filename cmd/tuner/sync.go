package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/catalog"
	"github.com/hazadus/go-tuner/internal/s3"
)

// createSyncCommand создает команду sync с привязкой к экземпляру приложения
func (app *Application) createSyncCommand(ctx context.Context) *cobra.Command {
	var fromS3 bool
	var objectKey string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Update the local catalog",
		Long:  `Download the catalog from the configured URL or S3 bucket and save it locally.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.syncCatalog(ctx, fromS3, objectKey)
		},
	}

	cmd.Flags().BoolVar(&fromS3, "s3", false, "скачать каталог из S3 бакета вместо URL")
	cmd.Flags().StringVar(&objectKey, "key", "catalog.json", "ключ объекта каталога в бакете")

	return cmd
}

func (app *Application) syncCatalog(ctx context.Context, fromS3 bool, objectKey string) error {
	cat := catalog.New()

	if fromS3 {
		if app.Config.AwsBucketName == "" {
			return fmt.Errorf("бакет не настроен: заполните aws_bucket_name в конфигурации")
		}

		downloader, err := s3.NewDownloader(&s3.Config{
			Region:     app.Config.AwsRegion,
			AccessKey:  app.Config.AwsAccessKey,
			SecretKey:  app.Config.AwsSecretKey,
			Endpoint:   app.Config.AwsEndpoint,
			BucketName: app.Config.AwsBucketName,
		})
		if err != nil {
			return err
		}

		fmt.Printf("☁️  Скачиваем каталог из бакета %s...\n", app.Config.AwsBucketName)
		data, err := downloader.DownloadObject(ctx, objectKey)
		if err != nil {
			app.Logger.Error().Err(err).Str("key", objectKey).Msg("ошибка скачивания каталога из S3")
			return err
		}
		if err := cat.Decode(data); err != nil {
			return fmt.Errorf("ошибка разбора каталога: %w", err)
		}
	} else {
		if app.Config.CatalogURL == "" {
			return fmt.Errorf("источник не настроен: заполните catalog_url в конфигурации")
		}

		fmt.Printf("🌐 Скачиваем каталог: %s\n", app.Config.CatalogURL)
		if err := cat.Fetch(ctx, app.Config.CatalogURL); err != nil {
			app.Logger.Error().Err(err).Str("url", app.Config.CatalogURL).Msg("ошибка скачивания каталога")
			return err
		}
	}

	if err := cat.Save(app.Config.CatalogPath); err != nil {
		return fmt.Errorf("ошибка сохранения каталога: %w", err)
	}

	app.Logger.Info().Int("tracks", cat.Len()).Msg("каталог обновлен")
	fmt.Printf("✅ Каталог обновлен: %d треков сохранено в %s\n", cat.Len(), app.Config.CatalogPath)
	return nil
}
