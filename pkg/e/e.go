package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибки разбора табличных данных
	ErrEmptyDataset        = fmt.Errorf("dataset is empty")
	ErrFieldCountMismatch  = fmt.Errorf("field count does not match header")
	ErrDatasetNotAvailable = fmt.Errorf("dataset is not available")

	// Ошибки каталога
	ErrUnsupportedProductKind = fmt.Errorf("unsupported product kind")
	ErrTermNotFound           = fmt.Errorf("term not found")
	ErrProductNotSaved        = fmt.Errorf("product has no id")
	ErrEmptyCategoryName      = fmt.Errorf("category name is empty")

	// Ошибки медиа
	ErrInvalidAssetURL      = fmt.Errorf("invalid asset url")
	ErrAssetDownloadFailed  = fmt.Errorf("asset download failed")
	ErrAssetTooLarge        = fmt.Errorf("asset is too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// Ошибки запуска импорта
	ErrImportInProgress = fmt.Errorf("import is already in progress")
	ErrNoImportRuns     = fmt.Errorf("no completed import runs")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrImportFailed        = fmt.Errorf("failed to import catalog")
	ErrBootstrapFailed     = fmt.Errorf("failed to bootstrap store")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
