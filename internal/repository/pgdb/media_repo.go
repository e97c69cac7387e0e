package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/jimlawless/whereami"
)

// MediaRepo хранит записи медиатеки: сами файлы лежат в S3.
type MediaRepo struct {
	pool tr.Querier
}

func NewMediaRepo(pool tr.Querier) *MediaRepo {
	return &MediaRepo{pool: pool}
}

func (m *MediaRepo) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	query := `
		INSERT INTO media (title, file_name, bucket, object_key, mime_type, size, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, file_name, bucket, object_key, mime_type, size, source_url, created_at;
	`

	in := converter.MediaToModel(asset)

	var model converter.MediaModel
	if err := tr.QuerierFromCtx(ctx, m.pool).QueryRow(ctx, query,
		in.Title, in.FileName, in.Bucket, in.ObjectKey, in.MimeType, in.Size, in.SourceURL,
	).Scan(
		&model.ID, &model.Title, &model.FileName, &model.Bucket, &model.ObjectKey,
		&model.MimeType, &model.Size, &model.SourceURL, &model.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.MediaToEntity(&model), nil
}
