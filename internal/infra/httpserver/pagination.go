package httpserver

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip for the current page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Status     string         `json:"status"`
	Data       any            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: DefaultPage, Limit: DefaultLimit}
}

// ExtractPaginationParams reads page and limit from the query string.
// Missing, malformed or out of range values fall back to the defaults.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if page, err := strconv.Atoi(GetQueryParam(r, "page")); err == nil && page > 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(GetQueryParam(r, "limit")); err == nil && limit > 0 && limit <= MaxLimit {
		params.Limit = limit
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Status: StatusSuccess,
		Data:   data,
		Pagination: PaginationInfo{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
