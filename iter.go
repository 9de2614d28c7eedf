package judy

import "iter"

// All returns an iterator over the Map's entries in ascending key
// order, each key freshly reconstructed into its own slice. It is
// sugar over [Map.First]/[Map.Next] for `for range` callers and does
// not itself appear in the original source. Ranging over All shares
// m's cursor like any other traversal call — do not interleave it
// with other cursor-moving calls on m from inside the loop body, and
// take a [Map.Clone] first if you need to.
func (m *Map) All() iter.Seq2[[]byte, *uint64] {
	return func(yield func([]byte, *uint64) bool) {
		buf := make([]byte, m.max+1)
		for cell := m.First(); cell != nil; cell = m.Next() {
			n := m.Key(buf)
			key := make([]byte, n)
			copy(key, buf[:n])
			if !yield(key, cell) {
				return
			}
		}
	}
}
