package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", PaginationParams{}, 1, 15},
		{"negative page clamped", PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{"per page capped at 100", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid values untouched", PaginationParams{Page: 3, PerPage: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPerPage, tt.in.PerPage)
		})
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	assert.Equal(t, 2, pag.CurrentPage)
	assert.Equal(t, 15, pag.PerPage)
	assert.Equal(t, int64(31), pag.Total)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)
}

func TestNewPaginationSinglePage(t *testing.T) {
	pag := NewPagination(1, 15, 7)

	assert.Equal(t, 1, pag.TotalPages)
	assert.False(t, pag.HasNext)
	assert.False(t, pag.HasPrev)
}
