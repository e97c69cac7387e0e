package minio

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/infrastructure"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/jitter"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/google/uuid"
)

const (
	// objectPrefix — каталог объектов медиатеки в бакете
	objectPrefix = "catalog"

	cleanupAttempts    = 3
	cleanupBaseBackoff = time.Second
	cleanupMaxBackoff  = 4 * time.Second
	cleanupTimeout     = 30 * time.Second
)

// MinioInfrastructure управляет загрузкой объектов медиатеки в MinIO и очисткой осиротевших объектов.
type MinioInfrastructure struct {
	objectRepo  usecase.ObjectRepository
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(objectRepo usecase.ObjectRepository, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		objectRepo:  objectRepo,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadObject загружает изображение под ключом catalog/<uuid>.<ext> и возвращает ключ.
func (m *MinioInfrastructure) UploadObject(ctx context.Context, body io.Reader, size int64, mimeType string) (string, error) {
	const op = "MinioInfrastructure.UploadObject"

	ext, err := infrastructure.GetExtensionFromMIME(mimeType)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	objKey := fmt.Sprintf("%s/%s.%s", objectPrefix, uuid.NewString(), ext)

	key, err := m.objectRepo.Upload(ctx, objKey, body, size, mimeType)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return key, nil
}

// CleanupObjects запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupObjects(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: cleaning up %d orphaned objects", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < cleanupAttempts; attempt++ {
			err := m.objectRepo.Delete(ctx, key)
			if err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt == cleanupAttempts-1 {
				m.logger.Warnf("failed to delete orphaned object, key=%v: %v", key, e.Wrap(op, err))
				break
			}

			select {
			case <-time.After(jitter.ExponentialBackoff(cleanupBaseBackoff, cleanupMaxBackoff, attempt, jitter.DefaultJitter)):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
