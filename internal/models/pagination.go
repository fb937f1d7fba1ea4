// internal/models/pagination.go
package models

// Pagination is replaced wholesale from each list response; the client never
// computes page counts itself.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	Limit       int `json:"limit"`
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
