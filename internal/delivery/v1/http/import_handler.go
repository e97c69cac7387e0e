package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

type ImportHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewImportHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ImportHandler {
	return &ImportHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// ImportStartedData — данные успешного ответа импорта.
type ImportStartedData struct {
	SiteURL string `json:"site_url"`
}

// ImportSummaryData — итог последнего завершённого импорта.
type ImportSummaryData struct {
	SiteURL           string    `json:"site_url"`
	Products          int       `json:"products"`
	Variations        int       `json:"variations"`
	Skipped           int       `json:"skipped"`
	DroppedVariations int       `json:"dropped_variations"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
}

// importCatalog
//
//	@Summary		Импорт демонстрационного каталога
//	@Description	Импортирует набор данных каталога и возвращает адрес витрины
//	@Tags			import
//	@Produce		json
//	@Success		200	{object}	Response{data=ImportStartedData}	"Каталог импортирован"
//	@Failure		409	{object}	FailureResponse			"Импорт уже выполняется"
//	@Failure		422	{object}	FailureResponse			"Некорректный набор данных"
//	@Failure		500	{object}	FailureResponse			"Ошибка импорта"
//	@Router			/import [get]
//	@Router			/import [post]
func (h *ImportHandler) importCatalog(w http.ResponseWriter, r *http.Request) {
	// Клиент может уйти со страницы прогресса, начатый импорт при этом не прерывается
	ctx := context.WithoutCancel(r.Context())

	res, err := h.catalogUsecase.ImportCatalog(ctx, usecase.NewImportCatalogReq(""))
	if err != nil {
		h.logger.Errorf(err, "catalog import failed")
		if !isClientError(err) {
			err = e.Wrap(err.Error(), e.ErrImportFailed)
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ImportStartedData{SiteURL: res.SiteURL})
}

// lastImport
//
//	@Summary		Итог последнего импорта
//	@Tags			import
//	@Produce		json
//	@Success		200	{object}	Response{data=ImportSummaryData}
//	@Failure		404	{object}	FailureResponse	"Импортов ещё не было"
//	@Router			/import/last [get]
func (h *ImportHandler) lastImport(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogUsecase.LastImport(r.Context())
	if err != nil {
		if !errors.Is(err, e.ErrNoImportRuns) {
			h.logger.Errorf(err, "failed to read last import")
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ImportSummaryData{
		SiteURL:           res.SiteURL,
		Products:          res.Products,
		Variations:        res.Variations,
		Skipped:           res.Skipped,
		DroppedVariations: res.DroppedVariations,
		StartedAt:         res.StartedAt,
		FinishedAt:        res.FinishedAt,
	})
}

func isClientError(err error) bool {
	return errors.Is(err, e.ErrImportInProgress) ||
		errors.Is(err, e.ErrFieldCountMismatch) ||
		errors.Is(err, e.ErrEmptyDataset)
}
