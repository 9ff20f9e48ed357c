package request

import (
	"net/url"

	"usuarios-api/pkg/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PaginatedRequest is read from ?page&per_page. A zero Page means no pagination.
type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func PaginationFromQuery(q url.Values) PaginatedRequest {
	if q.Get("page") == "" && q.Get("per_page") == "" {
		return PaginatedRequest{}
	}

	return PaginatedRequest{
		Page:    utils.ParseInt(q.Get("page"), 1),
		PerPage: utils.ParseInt(q.Get("per_page"), DefaultPerPage),
	}
}

func (p PaginatedRequest) Enabled() bool {
	return p.Page > 0
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
