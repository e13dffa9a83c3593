package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatedResultTotalPages(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"exact multiple", 40, 20, 2},
		{"partial last page", 41, 20, 3},
		{"empty", 0, 20, 0},
		{"single item", 1, 20, 1},
		{"per page zero", 100, 0, 0},
		{"per page negative", 100, -5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaginatedResult([]int{}, tc.total, 1, tc.perPage)
			assert.Equal(t, tc.want, p.TotalPages())
		})
	}
}

func TestPaginatedResultNavigation(t *testing.T) {
	p := NewPaginatedResult([]int{1, 2, 3}, 50, 2, 10)

	assert.True(t, p.HasNext())
	assert.True(t, p.HasPrev())
	require.NotNil(t, p.NextPage())
	require.NotNil(t, p.PrevPage())
	assert.Equal(t, 3, *p.NextPage())
	assert.Equal(t, 1, *p.PrevPage())

	first := NewPaginatedResult([]int{1}, 50, 1, 10)
	assert.False(t, first.HasPrev())
	assert.Nil(t, first.PrevPage())

	last := NewPaginatedResult([]int{1}, 50, 5, 10)
	assert.False(t, last.HasNext())
	assert.Nil(t, last.NextPage())
}

func TestPaginatedResultDegeneratePerPage(t *testing.T) {
	p := NewPaginatedResult([]int{}, 100, 1, 0)

	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasNext())
	assert.Nil(t, p.NextPage())
}

func TestPaginatedResultMarshalJSON(t *testing.T) {
	p := NewPaginatedResult([]string{"a", "b"}, 5, 1, 2)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, float64(5), decoded["total"])
	assert.Equal(t, float64(3), decoded["totalPages"])
	assert.Equal(t, true, decoded["hasNext"])
	assert.Equal(t, false, decoded["hasPrev"])
	assert.Equal(t, float64(2), decoded["nextPage"])
	assert.Nil(t, decoded["prevPage"])
}

func TestPaginatedResultMarshalNilItems(t *testing.T) {
	p := PaginatedResult[string]{Total: 0, Page: 1, PerPage: 10}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestMapPaginated(t *testing.T) {
	p := NewPaginatedResult([]int{1, 2, 3}, 30, 2, 3)

	mapped := MapPaginated(p, func(v int) int { return v * 10 })

	assert.Equal(t, []int{10, 20, 30}, mapped.Items)
	assert.Equal(t, p.Total, mapped.Total)
	assert.Equal(t, p.Page, mapped.Page)
	assert.Equal(t, p.PerPage, mapped.PerPage)
}
