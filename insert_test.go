package judy_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-judy/judy"
)

func TestCellIdempotent(t *testing.T) {
	m, _ := judy.Open(32, 0)
	c1 := m.Cell([]byte("banana"))
	*c1 = 42
	c2 := m.Cell([]byte("banana"))
	qt.Assert(t, qt.Equals(c1, c2))
	qt.Assert(t, qt.Equals(*c2, uint64(42)))
}

func TestCellThenSlotSameAddress(t *testing.T) {
	m, _ := judy.Open(32, 0)
	c := m.Cell([]byte("apricot"))
	*c = 7
	s := m.Slot([]byte("apricot"))
	qt.Assert(t, qt.Not(qt.IsNil(s)))
	qt.Assert(t, qt.Equals(c, s))
}

func TestEmptyKeyIsSingleLeafAtRoot(t *testing.T) {
	m, _ := judy.Open(32, 0)
	c := m.Cell(nil)
	*c = 99
	qt.Assert(t, qt.Equals(*m.Slot(nil), uint64(99)))

	var buf [8]byte
	n := m.Key(buf[:])
	qt.Assert(t, qt.Equals(n, 0))
}

func TestReconstructedKeyMatchesInserted(t *testing.T) {
	m, _ := judy.Open(40, 0)
	keys := []string{
		"apple", "apricot", "banana", "",
		"hello_world_this_is_a_long_key_xxx",
		"hello_world_this_is_a_long_key_yyy",
		"z",
	}
	for i, k := range keys {
		*m.Cell([]byte(k)) = uint64(i + 1)
	}
	for _, k := range keys {
		qt.Assert(t, qt.Not(qt.IsNil(m.Slot([]byte(k)))))
		buf := make([]byte, 64)
		n := m.Key(buf)
		qt.Assert(t, qt.Equals(string(buf[:n]), k))
	}
}

// TestKeyRoundTripsExactLengthBuffer checks that a buffer sized to
// exactly the key's length receives every byte of the key, with no
// byte silently reserved for a trailing NUL.
func TestKeyRoundTripsExactLengthBuffer(t *testing.T) {
	m, _ := judy.Open(40, 0)
	keys := []string{"apple", "z", "hello_world_this_is_a_long_key_xxx"}
	for i, k := range keys {
		*m.Cell([]byte(k)) = uint64(i + 1)
	}
	for _, k := range keys {
		qt.Assert(t, qt.Not(qt.IsNil(m.Slot([]byte(k)))))
		buf := make([]byte, len(k))
		n := m.Key(buf)
		qt.Assert(t, qt.Equals(n, len(k)))
		qt.Assert(t, qt.Equals(string(buf), k))
	}
}

func TestLongSharedPrefixSplitsSpan(t *testing.T) {
	m, _ := judy.Open(64, 0)
	k1 := "hello_world_this_is_a_long_key_xxx"
	k2 := "hello_world_this_is_a_long_key_yyy"
	*m.Cell([]byte(k1)) = 1
	*m.Cell([]byte(k2)) = 2

	qt.Assert(t, qt.Equals(*m.Slot([]byte(k1)), uint64(1)))
	qt.Assert(t, qt.Equals(*m.Slot([]byte(k2)), uint64(2)))

	var got []string
	for v := m.First(); v != nil; v = m.Next() {
		buf := make([]byte, 64)
		n := m.Key(buf)
		got = append(got, string(buf[:n]))
	}
	qt.Assert(t, qt.DeepEquals(got, []string{k1, k2}))
}

func TestSingleByteKeysPromoteThroughLinearShapes(t *testing.T) {
	m, _ := judy.Open(4, 0)
	// 33 distinct single-byte keys sharing no common prefix: forces
	// lin1->lin2->lin4->lin8->lin16->lin32->radix at the root.
	var want []string
	for i := 1; i <= 33; i++ {
		k := string([]byte{byte(i)})
		*m.Cell([]byte(k)) = uint64(i)
		want = append(want, k)
	}
	var got []string
	for v := m.First(); v != nil; v = m.Next() {
		buf := make([]byte, 4)
		n := m.Key(buf)
		got = append(got, string(buf[:n]))
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestIntegerModeCellAndSlot(t *testing.T) {
	m, _ := judy.Open(0, 2)
	k := intKey(1, 1)
	*m.Cell(k) = 5
	qt.Assert(t, qt.Equals(*m.Slot(k), uint64(5)))
	qt.Assert(t, qt.IsNil(m.Slot(intKey(1, 2))))
}

// intKey packs word tuples into the big-endian byte key a Map in
// integer mode expects.
func intKey(words ...uint64) []byte {
	buf := make([]byte, len(words)*8)
	for i, w := range words {
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(w >> (8 * (7 - b)))
		}
	}
	return buf
}
