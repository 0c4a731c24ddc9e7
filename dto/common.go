package dto

// PaginationQuery is the shared page/limit query shape
type PaginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
