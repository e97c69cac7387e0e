package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// SettingsRepo хранит именованные настройки магазина в JSONB.
type SettingsRepo struct {
	pool tr.Querier
}

func NewSettingsRepo(pool tr.Querier) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

func (s *SettingsRepo) Get(ctx context.Context, name string, dst any) (bool, error) {
	query := `SELECT value FROM settings WHERE name = $1;`

	var raw []byte
	if err := tr.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, name).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return true, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

func (s *SettingsRepo) Set(ctx context.Context, name string, value any) error {
	query := `
		INSERT INTO settings (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`

	raw, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tr.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, name, raw); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SettingsRepo) Delete(ctx context.Context, name string) error {
	if _, err := tr.QuerierFromCtx(ctx, s.pool).Exec(ctx, `DELETE FROM settings WHERE name = $1;`, name); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
