package usecase

import (
	"context"
	"io"
)

// MediaStore скачивает удалённые изображения и регистрирует их в медиатеке.
type MediaStore interface {
	Download(ctx context.Context, url string) (string, error)
	Register(ctx context.Context, localPath, fileName, title string) (int64, error)
	DeleteLocal(localPath string) error
}

// ObjectsInfra загружает объекты в S3 и убирает осиротевшие объекты в фоне.
type ObjectsInfra interface {
	UploadObject(ctx context.Context, body io.Reader, size int64, mimeType string) (string, error)
	CleanupObjects(keys []string)
}

type EventPublisher interface {
	PublishProductImported(ctx context.Context, ev *ProductImportedEvent) error
	PublishImportCompleted(ctx context.Context, res *ImportCatalogRes) error
}

// TxRunner выполняет функцию в транзакции базы данных.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
