package pgdb

import (
	"context"
	"regexp"
	"testing"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inlineTx выполняет fn без открытия транзакции: запросы уходят прямо в мок.
type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func newCap() *domain.Product {
	return &domain.Product{
		Kind:              domain.KindSimple,
		SKU:               "woo-cap",
		Name:              "Cap",
		Status:            domain.StatusPublish,
		CatalogVisibility: "visible",
		RegularPrice:      decimal.NewNullDecimal(decimal.RequireFromString("18.5")),
		TaxStatus:         "taxable",
		Backorders:        "no",
		ImageID:           9,
		CategoryIDs:       []int64{3, 4},
	}
}

func capArgs() []any {
	imageID := int64(9)
	return []any{
		int64(0), "simple", "woo-cap", "Cap", "publish", false, "visible",
		"", "", decimal.NewNullDecimal(decimal.RequireFromString("18.5")), decimal.NullDecimal{}, "taxable", "",
		false, (*int64)(nil), "no", false,
		decimal.NullDecimal{}, decimal.NullDecimal{}, decimal.NullDecimal{}, decimal.NullDecimal{}, false, "",
		&imageID, []byte("[]"), []byte("{}"),
	}
}

func TestProductRepo_Save_Insert(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepo(mock, inlineTx{})

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (`)).
		WithArgs(capArgs()...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_terms`)).
		WithArgs(int64(41), domain.TaxonomyCategory).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_terms`)).
		WithArgs(int64(41), []int64{3, 4}, domain.TaxonomyCategory).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	id, err := repo.Save(context.Background(), newCap())
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Save_UpdatePutsIDFirst(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepo(mock, inlineTx{})

	product := newCap()
	product.ID = 41
	product.CategoryIDs = nil

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE products SET`)).
		WithArgs(append([]any{int64(41)}, capArgs()...)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_terms`)).
		WithArgs(int64(41), domain.TaxonomyCategory).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	id, err := repo.Save(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Save_MissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepo(mock, inlineTx{})

	product := newCap()
	product.ID = 404

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE products SET`)).
		WithArgs(append([]any{int64(404)}, capArgs()...)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Save(context.Background(), product)
	require.ErrorIs(t, err, e.ErrProductNotSaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_SetTerms(t *testing.T) {
	tests := []struct {
		name    string
		termIDs []int64
	}{
		{name: "replace tags", termIDs: []int64{7, 8, 9}},
		{name: "clear tags", termIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewProductRepo(mock, inlineTx{})

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_terms`)).
				WithArgs(int64(12), domain.TaxonomyTag).
				WillReturnResult(pgxmock.NewResult("DELETE", 1))
			if len(tt.termIDs) > 0 {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_terms`)).
					WithArgs(int64(12), tt.termIDs, domain.TaxonomyTag).
					WillReturnResult(pgxmock.NewResult("INSERT", int64(len(tt.termIDs))))
			}

			require.NoError(t, repo.SetTerms(context.Background(), 12, domain.TaxonomyTag, tt.termIDs))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepo_SetMeta(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepo(mock, inlineTx{})

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_meta`)).
		WithArgs(int64(12), "_gtin", "4006381333931").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SetMeta(context.Background(), 12, "_gtin", "4006381333931"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
