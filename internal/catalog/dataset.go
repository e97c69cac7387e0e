package catalog

import (
	_ "embed"
	"os"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/jimlawless/whereami"
)

//go:embed dataset/sample.csv
var sampleDataset string

// SampleDataset возвращает встроенный демонстрационный набор товаров.
func SampleDataset() string {
	return sampleDataset
}

// LoadDataset читает набор данных из файла или, если путь пустой, возвращает встроенный.
func LoadDataset(path string) (string, error) {
	if path == "" {
		return SampleDataset(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrDatasetNotAvailable))
	}

	return string(data), nil
}
