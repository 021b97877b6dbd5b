package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/products-api/pkg/e"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// SuccessResponse — конверт успешного ответа.
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse — конверт ответа с ошибкой. Заполняется либо Message
// (одиночная ошибка), либо Errors (список нарушений валидации).
type ErrorResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Errors  []e.FieldError `json:"errors,omitempty"`
}

// ToHTTPResponse сопоставляет ошибку слоёв приложения статусу и сообщению.
// Неопознанные ошибки (сбои embedding-сервиса, хранилища, сети) наружу
// отдаются одним обобщённым сообщением: детали остаются в логах.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidBody):
		return http.StatusBadRequest, e.ErrInvalidBody.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrProductAlreadyExists):
		return http.StatusConflict, e.ErrProductAlreadyExists.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// WriteError пишет конверт ошибки. Ошибки валидации разворачиваются
// в список полей, остальные — в одиночное сообщение.
func WriteError(w http.ResponseWriter, err error) {
	var vErr *e.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{
			Status: statusError,
			Errors: vErr.Fields,
		})
		return
	}

	code, msg := ToHTTPResponse(err)
	writeJSON(w, code, &ErrorResponse{
		Status:  statusError,
		Message: msg,
	})
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, &SuccessResponse{
		Status: statusSuccess,
		Data:   data,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
