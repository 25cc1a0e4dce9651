package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/pkg/collection"
)

func TestMap(t *testing.T) {
	out := collection.Map([]int{1, 2, 3}, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, out)

	require.Empty(t, collection.Map(nil, strconv.Itoa))
}

func TestSortBy(t *testing.T) {
	in := []int{3, 1, 2}
	out := collection.SortBy(in, func(a, b int) bool { return a < b })

	require.Equal(t, []int{1, 2, 3}, out)
}
