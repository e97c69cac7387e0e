package usecase

import (
	"context"
	"net/url"
	"path"

	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

// AssetFetcher скачивает изображение по URL и регистрирует его в медиатеке.
// Любая ошибка означает «нет изображения» и не прерывает импорт.
type AssetFetcher struct {
	mediaStore MediaStore
	logger     logger.Logger
}

func NewAssetFetcher(mediaStore MediaStore, logger logger.Logger) *AssetFetcher {
	return &AssetFetcher{
		mediaStore: mediaStore,
		logger:     logger,
	}
}

// Fetch делает ровно одну попытку и возвращает ID изображения и признак успеха.
func (a *AssetFetcher) Fetch(ctx context.Context, rawURL, title string) (int64, bool) {
	localPath, err := a.mediaStore.Download(ctx, rawURL)
	if err != nil {
		a.logger.Warnf("image download failed, url=%s: %v", rawURL, err)
		return 0, false
	}

	assetID, err := a.mediaStore.Register(ctx, localPath, fileNameFromURL(rawURL), title)
	if err != nil {
		a.logger.Warnf("image registration failed, url=%s: %v", rawURL, err)
		if err := a.mediaStore.DeleteLocal(localPath); err != nil {
			a.logger.Warnf("failed to delete temporary file %s: %v", localPath, err)
		}
		return 0, false
	}

	return assetID, true
}

// fileNameFromURL возвращает последний сегмент пути URL.
func fileNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}

	return name
}
