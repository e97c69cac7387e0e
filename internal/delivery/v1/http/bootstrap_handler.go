package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

type BootstrapHandler struct {
	bootstrapUsecase usecase.BootstrapUC
	logger           logger.Logger
}

func NewBootstrapHandler(bootstrapUsecase usecase.BootstrapUC, logger logger.Logger) *BootstrapHandler {
	return &BootstrapHandler{bootstrapUsecase: bootstrapUsecase, logger: logger}
}

// BootstrapData — ответ настройки магазина.
type BootstrapData struct {
	Message string   `json:"message"`
	Applied []string `json:"applied"`
}

// bootstrapStore
//
//	@Summary		Настройка магазина
//	@Description	Идемпотентно включает ссылки, доставку по фиксированной ставке и оплату при получении
//	@Tags			store
//	@Produce		json
//	@Success		200	{object}	Response{data=BootstrapData}
//	@Failure		500	{object}	FailureResponse
//	@Router			/store/bootstrap [post]
func (h *BootstrapHandler) bootstrapStore(w http.ResponseWriter, r *http.Request) {
	res, err := h.bootstrapUsecase.Bootstrap(r.Context())
	if err != nil {
		h.logger.Errorf(err, "store bootstrap failed")
		WriteError(w, e.Wrap(err.Error(), e.ErrBootstrapFailed))
		return
	}

	WriteSuccess(w, http.StatusOK, BootstrapData{Message: "ok", Applied: res.Applied})
}
