package judy

// This file implements ordered traversal (component H, §4.H):
// [Map.First], [Map.End]/[Map.Last], [Map.Next] and [Map.Prev], all
// driven by the path stack rather than recursion, mirroring
// judy_first/judy_last/judy_nxt/judy_prv.
//
// Linear-N nodes keep their populated entries contiguous at [0,cnt),
// ascending by fragment value with index (§9's node.go note), so
// "first populated" and "last populated" need no scan — unlike the
// source, whose right-justified layout makes judy_first scan for the
// first nonzero slot. A radix pair is genuinely sparse at each of its
// two 16-slot levels and still needs an occupancy scan in both
// directions, first across the outer table's nibble then across the
// matching inner table's nibble.

// first descends from r, already reached at byte offset off, to the
// smallest key under it, pushing frames along the way.
func (m *Map) first(r ref, off int) *uint64 {
	for r.valid() {
		switch r.tag() {
		case shapeSpan:
			sp := m.pools.spanN(r)
			m.stack.push(frame{node: r, off: off, slot: -1})
			if sp.isLeaf() {
				return &sp.child
			}
			off += sp.blen
			r = ref(sp.child)
		case shapeRadix:
			outer := m.pools.radixN(r)
			hi := 0
			for hi < 16 && !outer.has(hi) {
				hi++
			}
			if hi == 16 {
				return nil
			}
			m.stack.push(frame{node: r, off: off, slot: hi})
			innerRef := ref(outer.slot[hi])
			inner := m.pools.radixN(innerRef)
			lo := 0
			for lo < 16 && !inner.has(lo) {
				lo++
			}
			if lo == 16 {
				return nil
			}
			m.stack.push(frame{node: innerRef, off: off, slot: lo, radixInner: true})
			b := byte(hi<<4 | lo)
			if m.isLeafAt(off+1, 0, uint64(b)) {
				return &inner.slot[lo]
			}
			r, off = ref(inner.slot[lo]), off+1
		default:
			v := m.pools.lN(r)
			if v.cnt == 0 {
				return nil
			}
			keysize := keysizeAt(off)
			m.stack.push(frame{node: r, off: off, slot: 0})
			if m.isLeafAt(off, keysize, v.frag[0]) {
				return &v.child[0]
			}
			r, off = ref(v.child[0]), off+keysize
		}
	}
	return nil
}

// last descends from r to the largest key under it, the mirror of
// first.
func (m *Map) last(r ref, off int) *uint64 {
	for r.valid() {
		switch r.tag() {
		case shapeSpan:
			sp := m.pools.spanN(r)
			m.stack.push(frame{node: r, off: off, slot: -1})
			if sp.isLeaf() {
				return &sp.child
			}
			off += sp.blen
			r = ref(sp.child)
		case shapeRadix:
			outer := m.pools.radixN(r)
			hi := 15
			for hi >= 0 && !outer.has(hi) {
				hi--
			}
			if hi < 0 {
				return nil
			}
			m.stack.push(frame{node: r, off: off, slot: hi})
			innerRef := ref(outer.slot[hi])
			inner := m.pools.radixN(innerRef)
			lo := 15
			for lo >= 0 && !inner.has(lo) {
				lo--
			}
			if lo < 0 {
				return nil
			}
			m.stack.push(frame{node: innerRef, off: off, slot: lo, radixInner: true})
			b := byte(hi<<4 | lo)
			if m.isLeafAt(off+1, 0, uint64(b)) {
				return &inner.slot[lo]
			}
			r, off = ref(inner.slot[lo]), off+1
		default:
			v := m.pools.lN(r)
			if v.cnt == 0 {
				return nil
			}
			idx := v.cnt - 1
			keysize := keysizeAt(off)
			m.stack.push(frame{node: r, off: off, slot: idx})
			if m.isLeafAt(off, keysize, v.frag[idx]) {
				return &v.child[idx]
			}
			r, off = ref(v.child[idx]), off+keysize
		}
	}
	return nil
}

// First returns the value cell of the smallest key present, or nil
// if the Map is empty.
func (m *Map) First() *uint64 {
	m.stack.reset()
	return m.first(ref(m.root), 0)
}

// End returns the value cell of the largest key present, or nil if
// the Map is empty.
func (m *Map) End() *uint64 {
	m.stack.reset()
	return m.last(ref(m.root), 0)
}

// Last is an alias for [Map.End], reading more naturally next to
// [Map.First] at call sites that pair the two.
func (m *Map) Last() *uint64 { return m.End() }

// Next returns the value cell of the smallest key strictly greater
// than the cursor's current position, or nil if none remains. With
// no current position (including right after [Map.Open]) it behaves
// like [Map.First].
func (m *Map) Next() *uint64 {
	if m.stack.empty() {
		return m.First()
	}
	for {
		f, ok := m.stack.pop()
		if !ok {
			return nil
		}
		switch f.node.tag() {
		case shapeSpan:
			continue
		case shapeRadix:
			inner := m.pools.radixN(f.node)
			lo := f.slot + 1
			if !f.radixInner {
				// An outer frame is on top only when [Map.Slot]
				// stopped at a missing high nibble: skip the inner
				// scan and resume the outer scan below from the
				// next nibble up.
				m.stack.push(f)
				lo = 16
			}
			for lo < 16 && !inner.has(lo) {
				lo++
			}
			if lo < 16 {
				outerFrame, _ := m.stack.peek()
				hi := outerFrame.slot
				m.stack.push(frame{node: f.node, off: f.off, slot: lo, radixInner: true})
				b := byte(hi<<4 | lo)
				if m.isLeafAt(f.off+1, 0, uint64(b)) {
					return &inner.slot[lo]
				}
				return m.first(ref(inner.slot[lo]), f.off+1)
			}
			of, ok2 := m.stack.pop()
			if !ok2 {
				return nil
			}
			outer := m.pools.radixN(of.node)
			hi := of.slot + 1
			for hi < 16 && !outer.has(hi) {
				hi++
			}
			if hi == 16 {
				continue
			}
			innerRef := ref(outer.slot[hi])
			inner2 := m.pools.radixN(innerRef)
			lo2 := 0
			for lo2 < 16 && !inner2.has(lo2) {
				lo2++
			}
			m.stack.push(frame{node: of.node, off: of.off, slot: hi})
			m.stack.push(frame{node: innerRef, off: of.off, slot: lo2, radixInner: true})
			b := byte(hi<<4 | lo2)
			if m.isLeafAt(of.off+1, 0, uint64(b)) {
				return &inner2.slot[lo2]
			}
			return m.first(ref(inner2.slot[lo2]), of.off+1)
		default:
			v := m.pools.lN(f.node)
			idx := f.slot + 1
			if idx >= v.cnt {
				continue
			}
			keysize := keysizeAt(f.off)
			m.stack.push(frame{node: f.node, off: f.off, slot: idx})
			if m.isLeafAt(f.off, keysize, v.frag[idx]) {
				return &v.child[idx]
			}
			return m.first(ref(v.child[idx]), f.off+keysize)
		}
	}
}

// Prev returns the value cell of the largest key strictly less than
// the cursor's current position, or nil if none remains. With no
// current position it behaves like [Map.End].
func (m *Map) Prev() *uint64 {
	if m.stack.empty() {
		return m.End()
	}
	for {
		f, ok := m.stack.pop()
		if !ok {
			return nil
		}
		switch f.node.tag() {
		case shapeSpan:
			continue
		case shapeRadix:
			if !f.radixInner {
				continue
			}
			inner := m.pools.radixN(f.node)
			lo := f.slot - 1
			for lo >= 0 && !inner.has(lo) {
				lo--
			}
			if lo >= 0 {
				outerFrame, _ := m.stack.peek()
				hi := outerFrame.slot
				m.stack.push(frame{node: f.node, off: f.off, slot: lo, radixInner: true})
				b := byte(hi<<4 | lo)
				if m.isLeafAt(f.off+1, 0, uint64(b)) {
					return &inner.slot[lo]
				}
				return m.last(ref(inner.slot[lo]), f.off+1)
			}
			of, ok2 := m.stack.pop()
			if !ok2 {
				return nil
			}
			outer := m.pools.radixN(of.node)
			hi := of.slot - 1
			for hi >= 0 && !outer.has(hi) {
				hi--
			}
			if hi < 0 {
				continue
			}
			innerRef := ref(outer.slot[hi])
			inner2 := m.pools.radixN(innerRef)
			lo2 := 15
			for lo2 >= 0 && !inner2.has(lo2) {
				lo2--
			}
			m.stack.push(frame{node: of.node, off: of.off, slot: hi})
			m.stack.push(frame{node: innerRef, off: of.off, slot: lo2, radixInner: true})
			b := byte(hi<<4 | lo2)
			if m.isLeafAt(of.off+1, 0, uint64(b)) {
				return &inner2.slot[lo2]
			}
			return m.last(ref(inner2.slot[lo2]), of.off+1)
		default:
			v := m.pools.lN(f.node)
			idx := f.slot - 1
			if idx < 0 {
				continue
			}
			keysize := keysizeAt(f.off)
			m.stack.push(frame{node: f.node, off: f.off, slot: idx})
			if m.isLeafAt(f.off, keysize, v.frag[idx]) {
				return &v.child[idx]
			}
			return m.last(ref(v.child[idx]), f.off+keysize)
		}
	}
}
