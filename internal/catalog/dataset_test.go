package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	data, err := LoadDataset("")
	require.NoError(t, err)
	assert.Equal(t, SampleDataset(), data)

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("Type,SKU\nsimple,a\n"), 0o600))

	data, err = LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, "Type,SKU\nsimple,a\n", data)

	_, err = LoadDataset(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, e.ErrDatasetNotAvailable)
}
