package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/DRSN-tech/storefront-seeder/internal/cfg"
	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

const (
	tempFilePattern = "seed-asset-*"
	sniffLen        = 512
)

// Store скачивает изображения во временный каталог и регистрирует их в медиатеке:
// объект уходит в S3, запись о вложении — в базу.
type Store struct {
	client       *http.Client
	objectsInfra usecase.ObjectsInfra
	assetRepo    usecase.AssetRepository
	cfg          *cfg.MediaCfg
	bucket       string
	logger       logger.Logger

	mu      sync.Mutex
	sources map[string]string // локальный путь -> исходный адрес
}

func NewStore(
	objectsInfra usecase.ObjectsInfra,
	assetRepo usecase.AssetRepository,
	mediaCfg *cfg.MediaCfg,
	bucket string,
	logger logger.Logger,
) *Store {
	return &Store{
		client:       &http.Client{Timeout: mediaCfg.DownloadTimeout},
		objectsInfra: objectsInfra,
		assetRepo:    assetRepo,
		cfg:          mediaCfg,
		bucket:       bucket,
		logger:       logger,
		sources:      make(map[string]string),
	}
}

// Download сохраняет ресурс по адресу во временный файл и возвращает его путь.
func (s *Store) Download(ctx context.Context, rawURL string) (string, error) {
	const op = "media.Store.Download"

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", e.Wrap(fmt.Sprintf("%s: %q", op, rawURL), e.ErrInvalidAssetURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", e.Wrap(op, e.Wrap(err.Error(), e.ErrAssetDownloadFailed))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", e.Wrap(fmt.Sprintf("%s: status %d", op, resp.StatusCode), e.ErrAssetDownloadFailed)
	}

	if resp.ContentLength > s.cfg.MaxDownloadSize {
		return "", e.Wrap(op, e.ErrAssetTooLarge)
	}

	f, err := os.CreateTemp(s.cfg.TempDir, tempFilePattern)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	written, err := io.Copy(f, io.LimitReader(resp.Body, s.cfg.MaxDownloadSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", e.Wrap(op, e.Wrap(err.Error(), e.ErrAssetDownloadFailed))
	}

	if written > s.cfg.MaxDownloadSize {
		_ = os.Remove(f.Name())
		return "", e.Wrap(op, e.ErrAssetTooLarge)
	}

	s.mu.Lock()
	s.sources[f.Name()] = u.String()
	s.mu.Unlock()

	return f.Name(), nil
}

// Register загружает локальный файл в S3, создаёт запись медиатеки и удаляет локальный файл.
// Если запись не создалась, загруженный объект убирается в фоне.
func (s *Store) Register(ctx context.Context, localPath, fileName, title string) (int64, error) {
	const op = "media.Store.Register"

	f, err := os.Open(localPath)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	mimeType, err := detectContentType(f)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	objectKey, err := s.objectsInfra.UploadObject(ctx, f, info.Size(), mimeType)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	if fileName == "" {
		fileName = filepath.Base(objectKey)
	}

	asset := domain.NewAsset(title, fileName, s.bucket, objectKey, mimeType, info.Size())
	asset.SourceURL = s.sourceOf(localPath)

	asset, err = s.assetRepo.Create(ctx, asset)
	if err != nil {
		s.objectsInfra.CleanupObjects([]string{objectKey})
		return 0, e.Wrap(op, err)
	}

	if err := s.DeleteLocal(localPath); err != nil {
		s.logger.Warnf("failed to remove downloaded file %s: %v", localPath, err)
	}

	return asset.ID, nil
}

// DeleteLocal удаляет скачанный файл. Отсутствующий файл не считается ошибкой.
func (s *Store) DeleteLocal(localPath string) error {
	s.mu.Lock()
	delete(s.sources, localPath)
	s.mu.Unlock()

	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		return e.Wrap("media.Store.DeleteLocal", err)
	}

	return nil
}

func (s *Store) sourceOf(localPath string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sources[localPath]
}

// detectContentType определяет MIME-тип по первым байтам файла и возвращает курсор в начало.
func detectContentType(f *os.File) (string, error) {
	head := make([]byte, sniffLen)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(head[:n]), nil
}
