package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtensionFromMIME(t *testing.T) {
	tests := map[string]string{
		"image/jpeg":               "jpg",
		"image/jpg":                "jpg",
		"image/png":                "png",
		"image/webp":               "webp",
		"IMAGE/PNG":                "png",
		"image/jpeg; charset=utf8": "jpg",
	}

	for mimeType, want := range tests {
		ext, err := GetExtensionFromMIME(mimeType)
		require.NoError(t, err, mimeType)
		assert.Equal(t, want, ext, mimeType)
	}
}

func TestGetExtensionFromMIME_Unsupported(t *testing.T) {
	for _, mimeType := range []string{"image/gif", "text/html; charset=utf-8", "application/octet-stream", ""} {
		_, err := GetExtensionFromMIME(mimeType)
		assert.ErrorIs(t, err, e.ErrUnsupportedMediaType, mimeType)
	}
}
