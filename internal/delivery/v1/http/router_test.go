package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogUC struct {
	mock.Mock
}

func (m *mockCatalogUC) ImportCatalog(ctx context.Context, req *usecase.ImportCatalogReq) (*usecase.ImportCatalogRes, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.ImportCatalogRes)
	return res, args.Error(1)
}

func (m *mockCatalogUC) LastImport(ctx context.Context) (*usecase.ImportCatalogRes, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*usecase.ImportCatalogRes)
	return res, args.Error(1)
}

type mockBootstrapUC struct {
	mock.Mock
}

func (m *mockBootstrapUC) Bootstrap(ctx context.Context) (*usecase.BootstrapRes, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*usecase.BootstrapRes)
	return res, args.Error(1)
}

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

func newTestRouter(catalogUC usecase.CatalogUC, bootstrapUC usecase.BootstrapUC) *chi.Mux {
	mux := chi.NewRouter()
	NewRouter(mux, logger.NewDiscardLogger()).Init(catalogUC, bootstrapUC)
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func TestImportCatalog_Success(t *testing.T) {
	catalogUC := &mockCatalogUC{}
	catalogUC.On("ImportCatalog", mock.Anything, &usecase.ImportCatalogReq{}).
		Return(&usecase.ImportCatalogRes{SiteURL: "http://shop.local/", Products: 18}, nil).Twice()

	router := newTestRouter(catalogUC, &mockBootstrapUC{})

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec, body := doRequest(t, router, method, "/api/v1/import")

		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.True(t, body.Success)
		assert.Equal(t, map[string]any{"site_url": "http://shop.local/"}, body.Data)
	}
	catalogUC.AssertExpectations(t)
}

func TestImportCatalog_DetachedFromRequestCancellation(t *testing.T) {
	catalogUC := &mockCatalogUC{}
	catalogUC.On("ImportCatalog", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return(&usecase.ImportCatalogRes{SiteURL: "/"}, nil)

	router := newTestRouter(catalogUC, &mockBootstrapUC{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImportCatalog_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"in progress", e.Wrap("CatalogUseCase.ImportCatalog", e.ErrImportInProgress), http.StatusConflict, e.ErrImportInProgress.Error()},
		{"field mismatch", e.Wrap("catalog.Parse: line 3", e.ErrFieldCountMismatch), http.StatusUnprocessableEntity, e.ErrFieldCountMismatch.Error()},
		{"empty dataset", e.Wrap("catalog.Parse", e.ErrEmptyDataset), http.StatusUnprocessableEntity, e.ErrEmptyDataset.Error()},
		{"store down", errors.New("connection refused"), http.StatusInternalServerError, "failed to import catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogUC := &mockCatalogUC{}
			catalogUC.On("ImportCatalog", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, body := doRequest(t, newTestRouter(catalogUC, &mockBootstrapUC{}), http.MethodPost, "/api/v1/import")

			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Data["message"])
		})
	}
}

func TestLastImport(t *testing.T) {
	started := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	catalogUC := &mockCatalogUC{}
	catalogUC.On("LastImport", mock.Anything).Return(&usecase.ImportCatalogRes{
		SiteURL:    "http://shop.local/",
		Products:   18,
		Variations: 12,
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
	}, nil)

	rec, body := doRequest(t, newTestRouter(catalogUC, &mockBootstrapUC{}), http.MethodGet, "/api/v1/import/last")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, float64(18), body.Data["products"])
	assert.Equal(t, float64(12), body.Data["variations"])
	assert.Equal(t, "2026-10-19T12:00:00Z", body.Data["started_at"])
}

func TestLastImport_NoRuns(t *testing.T) {
	catalogUC := &mockCatalogUC{}
	catalogUC.On("LastImport", mock.Anything).Return(nil, e.Wrap("RunRepo.LastResult", e.ErrNoImportRuns))

	rec, body := doRequest(t, newTestRouter(catalogUC, &mockBootstrapUC{}), http.MethodGet, "/api/v1/import/last")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
}

func TestBootstrapStore(t *testing.T) {
	bootstrapUC := &mockBootstrapUC{}
	bootstrapUC.On("Bootstrap", mock.Anything).Return(&usecase.BootstrapRes{Applied: []string{usecase.StepPermalinks}}, nil).Once()
	bootstrapUC.On("Bootstrap", mock.Anything).Return(nil, errors.New("settings table missing")).Once()

	router := newTestRouter(&mockCatalogUC{}, bootstrapUC)

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/store/bootstrap")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Data["message"])
	assert.Equal(t, []any{usecase.StepPermalinks}, body.Data["applied"])

	rec, body = doRequest(t, router, http.MethodPost, "/api/v1/store/bootstrap")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, e.ErrBootstrapFailed.Error(), body.Data["message"])
}

func TestProgressPage(t *testing.T) {
	rec, _ := doRequest(t, newTestRouter(&mockCatalogUC{}, &mockBootstrapUC{}), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	page := rec.Body.String()
	assert.Contains(t, page, `"percent":70`)
	assert.Contains(t, page, "Importing demo content...")
	assert.Contains(t, page, "Something went wrong! Please try again.")
	assert.Contains(t, page, "'Error: '")
}

func TestHealthz(t *testing.T) {
	rec, _ := doRequest(t, newTestRouter(&mockCatalogUC{}, &mockBootstrapUC{}), http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
