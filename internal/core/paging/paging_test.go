package paging

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_TrimsExtraRow(t *testing.T) {
	rows := []int{5, 4, 3}

	page := NewPage(rows, 2, strconv.Itoa)

	assert.Equal(t, []int{5, 4}, page.Data)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.Cursor)
	assert.Equal(t, "4", *page.Cursor)
}

func TestNewPage_LastPage(t *testing.T) {
	page := NewPage([]int{1}, 2, strconv.Itoa)

	assert.Equal(t, []int{1}, page.Data)
	assert.False(t, page.HasMore)
	require.NotNil(t, page.Cursor)
	assert.Equal(t, "1", *page.Cursor)
}

func TestNewPage_ExactlyLimitRows(t *testing.T) {
	page := NewPage([]int{2, 1}, 2, strconv.Itoa)

	assert.Len(t, page.Data, 2)
	assert.False(t, page.HasMore, "limit rows without the sentinel row means no next page")
}

func TestNewPage_Empty(t *testing.T) {
	page := NewPage[int](nil, 10, strconv.Itoa)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.Cursor)
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 100},
		{"negative uses default", -5, 100},
		{"in range kept", 25, 25},
		{"above max clamped", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLimit(tt.limit, 100, 100))
		})
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 10, ParseLimit("10"))
	assert.Equal(t, 10, ParseLimit(" 10 "))
	assert.Equal(t, 0, ParseLimit("ten"))
	assert.Equal(t, 0, ParseLimit(""))
	assert.Equal(t, -3, ParseLimit("-3"))
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("   "))
	require.NotNil(t, OptionalString("x"))
	assert.Equal(t, "x", *OptionalString("x"))
}
