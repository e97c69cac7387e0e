package infrastructure

import (
	"mime"
	"strings"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
)

// imageExtensions — принимаемые медиатекой типы изображений.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения, параметры типа игнорируются.
// Для неподдерживаемых типов возвращает e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(contentType)
	}

	ext, ok := imageExtensions[strings.ToLower(mediaType)]
	if !ok {
		return "", e.Wrap(contentType, e.ErrUnsupportedMediaType)
	}

	return ext, nil
}
