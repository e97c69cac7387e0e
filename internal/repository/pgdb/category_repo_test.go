package pgdb

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_Find_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCategoryRepo(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM terms`)).
		WithArgs(domain.TaxonomyCategory, "Hoodies", int64(2)).
		WillReturnError(pgx.ErrNoRows)

	category, err := repo.Find(context.Background(), domain.TaxonomyCategory, "Hoodies", 2)
	require.ErrorIs(t, err, e.ErrTermNotFound)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepo_Find_QueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCategoryRepo(mock)

	connErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM terms`)).
		WithArgs(domain.TaxonomyTag, "Sale", domain.RootTermID).
		WillReturnError(connErr)

	_, err := repo.Find(context.Background(), domain.TaxonomyTag, "Sale", domain.RootTermID)
	require.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, e.ErrTermNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
