package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbpager/dbpager/core"
)

func fillStore(n int) *core.RowStore {
	store := core.NewRowStore()
	for i := 0; i < n; i++ {
		store.Append(core.EncodeRow([]string{fmt.Sprint(i)}), i%7 == 0)
	}
	return store
}

func TestRowStore_BucketPartition(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		rows    int
		buckets int
	}{
		{0, 0},
		{1, 1},
		{999, 1},
		{1000, 1},
		{1001, 2},
		{2000, 2},
		{2001, 3},
	}

	for _, tc := range testCases {
		store := fillStore(tc.rows)

		r.Equal(tc.rows, store.Len())
		r.Equal(tc.buckets, store.NumBuckets())
	}
}

func TestRowStore_OrderPreserved(t *testing.T) {
	r := require.New(t)

	const total = 2345
	store := fillStore(total)

	// index-based handles
	for i := 0; i < total; i++ {
		r.Equal(fmt.Sprint(i), store.Row(i).Field(0))
		r.Equal(i%7 == 0, store.Multiline(i))
	}

	// in-order walk
	visited := 0
	store.Each(func(i int, row *core.Row, multiline bool) bool {
		r.Equal(visited, i)
		r.Equal(fmt.Sprint(i), row.Field(0))
		r.Equal(i%7 == 0, multiline)
		visited++
		return true
	})
	r.Equal(total, visited)
}

func TestRowStore_EachStopsEarly(t *testing.T) {
	r := require.New(t)

	store := fillStore(100)

	visited := 0
	store.Each(func(i int, _ *core.Row, _ bool) bool {
		visited++
		return i < 9
	})
	r.Equal(10, visited)
}
