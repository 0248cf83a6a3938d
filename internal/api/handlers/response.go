package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodySize ограничение на размер JSON тела запроса
const maxBodySize = 1 << 20

var errEmptyBody = errors.New("empty request body")

const msgInternalError = "Something went wrong. Please try again."

// Источник ошибки: по нему фронтенд выбирает, где показать уведомление
const (
	SourceValidation = "validation"
	SourceBackend    = "backend"
	SourcePayment    = "payment"
	SourceAuth       = "auth"
)

// Действие, которое предлагается пользователю
const (
	ActionRetry     = "retry"
	ActionGoBack    = "go_back"
	ActionSignIn    = "sign_in"
	ActionFixFields = "fix_fields"
)

// ErrorResponse уведомление об ошибке
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Source  string            `json:"source"`
	Action  string            `json:"action,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondNotification отправляет уведомление об ошибке
func RespondNotification(w http.ResponseWriter, n ErrorResponse) {
	RespondJSON(w, n.Code, n)
}

// RespondError отправляет ошибку, источник и действие выводятся из статуса
func RespondError(w http.ResponseWriter, status int, message string) {
	n := ErrorResponse{Code: status, Message: message, Source: SourceValidation}
	switch {
	case status == http.StatusUnauthorized:
		n.Source = SourceAuth
		n.Action = ActionSignIn
	case status >= http.StatusInternalServerError:
		n.Source = SourceBackend
		n.Action = ActionRetry
	}
	RespondNotification(w, n)
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnauthorized 401 с предложением войти
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondValidation 422 с ошибками по полям
func RespondValidation(w http.ResponseWriter, message string, fields map[string]string) {
	RespondNotification(w, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Source:  SourceValidation,
		Action:  ActionFixFields,
		Fields:  fields,
	})
}

// RespondUnavailable 503: бэкенд недоступен, можно повторить
func RespondUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, message)
}

// RespondPaymentError ошибка оплаты с действием для пользователя
func RespondPaymentError(w http.ResponseWriter, status int, message, action string) {
	RespondNotification(w, ErrorResponse{
		Code:    status,
		Message: message,
		Source:  SourcePayment,
		Action:  action,
	})
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
