package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
)

// Response — общий конверт ответов API: {"success": bool, "data": {...}}.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageData — тело ответа с текстовым сообщением.
type MessageData struct {
	Message string `json:"message"`
}

// FailureResponse — конверт ответа с ошибкой.
type FailureResponse struct {
	Success bool        `json:"success"`
	Data    MessageData `json:"data"`
}

func NewFailureResponse(message string) *FailureResponse {
	return &FailureResponse{
		Success: false,
		Data:    MessageData{Message: message},
	}
}

func NewSuccessResponse(data any) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// ToHTTPResponse сопоставляет ошибку use case с кодом ответа и текстом для клиента.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrImportInProgress):
		return http.StatusConflict, e.ErrImportInProgress.Error()
	case errors.Is(err, e.ErrFieldCountMismatch):
		return http.StatusUnprocessableEntity, e.ErrFieldCountMismatch.Error()
	case errors.Is(err, e.ErrEmptyDataset):
		return http.StatusUnprocessableEntity, e.ErrEmptyDataset.Error()
	case errors.Is(err, e.ErrNoImportRuns):
		return http.StatusNotFound, e.ErrNoImportRuns.Error()
	case errors.Is(err, e.ErrBootstrapFailed):
		return http.StatusInternalServerError, e.ErrBootstrapFailed.Error()
	case errors.Is(err, e.ErrImportFailed):
		return http.StatusInternalServerError, e.ErrImportFailed.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteJSON(w, code, NewFailureResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, NewSuccessResponse(data))
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
