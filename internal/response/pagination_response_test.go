package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 2, 5)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 2, p.To)
	assert.True(t, p.HasMore)

	last := NewPagination(3, 2, 5)
	assert.Equal(t, 5, last.From)
	assert.Equal(t, 5, last.To)
	assert.False(t, last.HasMore)

	past := NewPagination(9, 2, 5)
	assert.Equal(t, 0, past.From)
	assert.Equal(t, 0, past.To)

	defaults := NewPagination(0, 0, 3)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 10, defaults.PageSize)
	assert.Equal(t, int64(1), defaults.TotalPages)
}
