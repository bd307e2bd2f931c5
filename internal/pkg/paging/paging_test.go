package paging_test

import (
	"cmp"
	"strconv"
	"testing"

	"ordering/internal/pkg/paging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, paging.ClampPage(-3))
	assert.Equal(t, 1, paging.ClampPage(0))
	assert.Equal(t, 7, paging.ClampPage(7))
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, paging.DefaultPageSize, paging.ClampPageSize(0))
	assert.Equal(t, paging.DefaultPageSize, paging.ClampPageSize(-5))
	assert.Equal(t, 1, paging.ClampPageSize(1))
	assert.Equal(t, 100, paging.ClampPageSize(100))
	assert.Equal(t, paging.MaxPageSize, paging.ClampPageSize(250))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{25, 10, 3},
		{30, 10, 3},
		{31, 10, 4},
		{5, 0, 0},
		{1, 100, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paging.TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, paging.Ascending, paging.ParseDirection("asc"))
	assert.Equal(t, paging.Ascending, paging.ParseDirection(" ASCENDING "))
	assert.Equal(t, paging.Descending, paging.ParseDirection("desc"))
	assert.Equal(t, paging.Descending, paging.ParseDirection(""))
	assert.Equal(t, paging.Descending, paging.ParseDirection("sideways"))
	assert.False(t, paging.IsDirection("sideways"))
	assert.True(t, paging.IsDirection("Desc"))
}

type row struct {
	id    int
	group string
}

func rows(n int) []row {
	out := make([]row, 0, n)
	for i := range n {
		out = append(out, row{id: i + 1, group: strconv.Itoa(i % 3)})
	}
	return out
}

func byGroupThenID(a, b row) int {
	if c := cmp.Compare(a.group, b.group); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

func TestApply_SecondPageOfTwentyFive(t *testing.T) {
	items, total := paging.Apply(rows(25), paging.Spec[row]{Compare: byGroupThenID}, 2, 10)

	assert.Equal(t, 25, total)
	assert.Len(t, items, 10)

	result := paging.NewResult(items, 2, 10, total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestApply_PagesPartitionTheSortedSet(t *testing.T) {
	for _, direction := range []paging.Direction{paging.Ascending, paging.Descending} {
		spec := paging.Spec[row]{
			Predicates: []func(row) bool{func(r row) bool { return r.id%5 != 0 }},
			Compare:    byGroupThenID,
			Direction:  direction,
		}

		all, total := paging.Apply(rows(47), spec, 1, 1000)
		require.Equal(t, len(all), total)

		const size = 7
		var concatenated []row
		for page := 1; page <= paging.TotalPages(total, size); page++ {
			items, pageTotal := paging.Apply(rows(47), spec, page, size)
			assert.Equal(t, total, pageTotal)
			assert.LessOrEqual(t, len(items), size)
			concatenated = append(concatenated, items...)
		}

		assert.Equal(t, all, concatenated)
	}
}

func TestApply_DescendingReversesComparator(t *testing.T) {
	items, _ := paging.Apply(rows(3), paging.Spec[row]{
		Compare:   func(a, b row) int { return cmp.Compare(a.id, b.id) },
		Direction: paging.Descending,
	}, 1, 10)

	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{items[0].id, items[1].id, items[2].id})
}

func TestApply_PredicatesAreAndCombined(t *testing.T) {
	spec := paging.Spec[row]{
		Predicates: []func(row) bool{
			func(r row) bool { return r.group == "1" },
			func(r row) bool { return r.id > 10 },
		},
		Compare:   byGroupThenID,
		Direction: paging.Ascending,
	}

	items, total := paging.Apply(rows(20), spec, 1, 10)

	assert.Equal(t, 4, total) // ids 11, 14, 17, 20
	for _, item := range items {
		assert.Equal(t, "1", item.group)
		assert.Greater(t, item.id, 10)
	}
}

func TestApply_PageBeyondRange(t *testing.T) {
	items, total := paging.Apply(rows(5), paging.Spec[row]{}, 3, 10)

	assert.Equal(t, 5, total)
	assert.Empty(t, items)
}

func TestMapResult(t *testing.T) {
	r := paging.NewResult([]int{1, 2}, 1, 10, 2)

	mapped := paging.MapResult(r, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, mapped.Items)
	assert.Equal(t, 1, mapped.TotalPages)
	assert.Equal(t, 2, mapped.TotalCount)
}
