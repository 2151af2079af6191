package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrdesk/internal/pkg/pagination"
)

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := pagination.Slice(items, pagination.NewParams(2, 2))
	assert.Equal(t, []int{3, 4}, page.Data)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNext)
	assert.True(t, page.Meta.HasPrev)

	last := pagination.Slice(items, pagination.NewParams(9, 2))
	assert.Equal(t, []int{}, last.Data)
	assert.False(t, last.Meta.HasNext)
}

func TestNewParamsClamps(t *testing.T) {
	p := pagination.NewParams(0, 1000)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
