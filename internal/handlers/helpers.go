package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const defaultPage = 1

// PaginationDTO — блок пагинации списочных ответов.
type PaginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// PageResponse — конверт списочного ответа.
type PageResponse struct {
	Data       any           `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}

func newPagination(page, limit int, total int64) PaginationDTO {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationDTO{Page: page, Limit: limit, TotalItems: total, TotalPages: pages}
}

// parsePageLimit читает page/limit из query. Нечисловые и неположительные
// значения заменяются значениями по умолчанию.
func parsePageLimit(r *http.Request, defaultLimit int) (page, limit int) {
	page, limit = defaultPage, defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage отдаёт {"message": ...} с указанным статусом.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// internalError отдаёт 500 с сообщением из ошибки, если оно есть.
func internalError(w http.ResponseWriter, err error) {
	msg := "internal error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	writeMessage(w, http.StatusInternalServerError, msg)
}
