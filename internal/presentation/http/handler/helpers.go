package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// dateLayout is the wire format for date-only fields such as birth dates.
const dateLayout = "2006-01-02"

// paginationFromQuery reads page-based pagination from query params
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// parseDate parses an optional YYYY-MM-DD string
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
