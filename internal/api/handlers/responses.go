package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse тело ответа с пояснением (успешное удаление и т.п.)
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldErrors ошибки валидации по полям: имя поля -> список сообщений
type FieldErrors map[string][]string

// RespondJSON пишет payload в ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// Заголовки уже отправлены, отдать ошибку кодирования клиенту нельзя.
	// Обрыв соединения фиксируется обработчиком через его логгер.
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest пишет ошибку 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет ошибку 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет ошибку 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет ошибку 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError пишет ошибку 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

// RespondFieldErrors пишет ошибки валидации 400 в формате
// {"field": ["message"]} - совместимость с существующими клиентами
func RespondFieldErrors(w http.ResponseWriter, errors FieldErrors) {
	RespondJSON(w, http.StatusBadRequest, errors)
}

// FieldError формирует FieldErrors с единственным полем
func FieldError(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

// DecodeJSON разбирает тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
