package domain

import "time"

// Asset описывает изображение медиатеки, которое хранится в S3
type Asset struct {
	ID        int64
	Title     string
	FileName  string
	Bucket    string
	ObjectKey string
	MimeType  string
	Size      int64
	SourceURL string
	CreatedAt time.Time
}

func NewAsset(title, fileName, bucket, objectKey, mimeType string, size int64) *Asset {
	return &Asset{
		Title:     title,
		FileName:  fileName,
		Bucket:    bucket,
		ObjectKey: objectKey,
		MimeType:  mimeType,
		Size:      size,
	}
}
