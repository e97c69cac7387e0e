package http

import (
	"net/http"

	_ "github.com/DRSN-tech/storefront-seeder/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	apiPrefix   = "/api/v1"
	importRoute = "/import"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, bootstrapUC usecase.BootstrapUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	progressHandler := NewProgressHandler(apiPrefix+importRoute, r.logger)
	r.router.Get("/", progressHandler.page)

	r.router.Route(apiPrefix, func(v1 chi.Router) {
		registerImportRoutes(v1, NewImportHandler(catalogUC, r.logger))
		registerStoreRoutes(v1, NewBootstrapHandler(bootstrapUC, r.logger))
	})
}

func registerImportRoutes(router chi.Router, importHandler *ImportHandler) {
	router.Route(importRoute, func(ir chi.Router) {
		ir.Get("/", importHandler.importCatalog)
		ir.Post("/", importHandler.importCatalog)
		ir.Get("/last", importHandler.lastImport)
	})
}

func registerStoreRoutes(router chi.Router, bootstrapHandler *BootstrapHandler) {
	router.Route("/store", func(sr chi.Router) {
		sr.Post("/bootstrap", bootstrapHandler.bootstrapStore)
	})
}
