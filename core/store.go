package core

// bucketCapacity bounds the size of a single row-slice allocation
// while amortizing allocation overhead. It has no effect on
// correctness, only on allocation granularity.
const bucketCapacity = 1000

// bucket is one fixed-capacity chunk of rows with a parallel
// per-row multiline flag.
type bucket struct {
	rows       []*Row
	multilines []bool
}

// RowStore is an append-only arena of fixed-capacity buckets. Rows are
// addressed by insertion index, so iteration never follows pointer
// chains. Every bucket except possibly the last is exactly full.
//
// The store is mutated only while a transfer fills it. Once the
// transfer returns, it is read-only and safe for concurrent readers.
type RowStore struct {
	buckets []*bucket
	total   int
}

func NewRowStore() *RowStore {
	return &RowStore{}
}

// Append places a row and its multiline flag at the next free slot,
// growing the arena by one bucket when the tail is full.
func (s *RowStore) Append(row *Row, multiline bool) {
	if len(s.buckets) == 0 || len(s.buckets[len(s.buckets)-1].rows) >= bucketCapacity {
		s.buckets = append(s.buckets, &bucket{
			rows:       make([]*Row, 0, bucketCapacity),
			multilines: make([]bool, 0, bucketCapacity),
		})
	}

	tail := s.buckets[len(s.buckets)-1]
	tail.rows = append(tail.rows, row)
	tail.multilines = append(tail.multilines, multiline)
	s.total++
}

// Len returns the number of stored rows, header row included.
func (s *RowStore) Len() int {
	return s.total
}

func (s *RowStore) NumBuckets() int {
	return len(s.buckets)
}

// Row returns the i-th row in insertion order.
func (s *RowStore) Row(i int) *Row {
	return s.buckets[i/bucketCapacity].rows[i%bucketCapacity]
}

// Multiline reports whether the i-th row contains a line break in any
// of its fields.
func (s *RowStore) Multiline(i int) bool {
	return s.buckets[i/bucketCapacity].multilines[i%bucketCapacity]
}

// Each walks rows in insertion order until fn returns false.
func (s *RowStore) Each(fn func(i int, row *Row, multiline bool) bool) {
	i := 0
	for _, b := range s.buckets {
		for slot, row := range b.rows {
			if !fn(i, row, b.multilines[slot]) {
				return
			}
			i++
		}
	}
}
