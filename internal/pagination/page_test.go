package pagination_test

import (
	"math"
	"strconv"
	"testing"

	"taskboard/internal/apperr"
	"taskboard/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var limits = pagination.Limits{DefaultTake: 10, MaxTake: 50}

func TestParse_Defaults(t *testing.T) {
	opts, err := limits.Parse("", "", "")

	require.NoError(t, err)
	assert.Equal(t, pagination.Options{Page: 1, Take: 10, Order: pagination.ASC}, opts)
	assert.Equal(t, 0, opts.Offset())
	assert.Equal(t, 10, opts.Limit())
	assert.Equal(t, "cards.id ASC", opts.OrderBy("cards"))
}

func TestParse_OffsetAndOrder(t *testing.T) {
	opts, err := limits.Parse("3", "20", "desc")

	require.NoError(t, err)
	assert.Equal(t, 40, opts.Offset())
	assert.Equal(t, 20, opts.Limit())
	assert.Equal(t, pagination.DESC, opts.Order)
	assert.Equal(t, "columns.id DESC", opts.OrderBy("columns"))
}

func TestParse_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name              string
		page, take, order string
	}{
		{"zero page", "0", "", ""},
		{"negative page", "-2", "", ""},
		{"garbage page", "first", "", ""},
		{"zero take", "", "0", ""},
		{"take above max", "", "51", ""},
		{"unknown order", "", "", "RANDOM"},
		{"offset overflow", "9223372036854775807", "50", ""},
		{"offset overflow with default take", "9223372036854775807", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := limits.Parse(tc.page, tc.take, tc.order)
			assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
		})
	}
}

func TestParse_LargestPageKeepsOffsetPositive(t *testing.T) {
	take := 50
	page := strconv.Itoa(math.MaxInt/take + 1)

	opts, err := limits.Parse(page, strconv.Itoa(take), "")

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, opts.Offset(), 0)
}

func TestNewMeta_UsesTotalCount(t *testing.T) {
	// 5 rows, 2 per page: the first page must already know there are 3 pages.
	first := pagination.NewMeta(pagination.Options{Page: 1, Take: 2, Order: pagination.ASC}, 5)
	assert.Equal(t, int64(5), first.ItemCount)
	assert.Equal(t, int64(3), first.PageCount)
	assert.False(t, first.HasPreviousPage)
	assert.True(t, first.HasNextPage)

	last := pagination.NewMeta(pagination.Options{Page: 3, Take: 2, Order: pagination.ASC}, 5)
	assert.True(t, last.HasPreviousPage)
	assert.False(t, last.HasNextPage)

	beyond := pagination.NewMeta(pagination.Options{Page: 9, Take: 2, Order: pagination.ASC}, 5)
	assert.False(t, beyond.HasNextPage)
}

func TestNew_EmptyDataSerializesAsEmptySlice(t *testing.T) {
	page := pagination.New[int](nil, pagination.Options{Page: 1, Take: 10}, 0)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Meta.PageCount)
	assert.False(t, page.Meta.HasNextPage)
}
