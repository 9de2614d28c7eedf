package judy

// Del removes the key at the cursor's current position — as left by
// the most recent [Map.Slot], [Map.StartAt], [Map.First], [Map.Last],
// [Map.Next] or [Map.Prev] call — and repositions the cursor to the
// previous key, returning its cell (or nil if the deleted key was the
// smallest present).
//
// Del panics if called with no current position, or on a read-only
// [Map.Clone] snapshot (§4.G, §7).
func (m *Map) Del() *uint64 {
	m.checkMutable()
	if m.stack.empty() {
		panic("judy: Del called with no current position")
	}
	for {
		f, ok := m.stack.pop()
		if !ok {
			m.root = 0
			return nil
		}
		switch f.node.tag() {
		case shapeSpan:
			// A span holds exactly one logical entry (the trailing
			// cell); deleting it always empties the node. The parent
			// frame's own removal, processed next, severs the link
			// that pointed here.
			m.pools.freeSpanNode(f.node.idx())
			continue
		case shapeRadix:
			if f.radixInner {
				inner := m.pools.radixN(f.node)
				inner.clear(f.slot)
				if !inner.empty() {
					m.stack.push(frame{node: f.node, off: f.off, slot: f.slot, radixInner: true})
					return m.Prev()
				}
				m.pools.freeRadixNode(f.node.idx())
				// The inner table emptied out entirely; the next
				// iteration pops the paired outer frame and clears
				// its now-dangling entry (§4.G).
				continue
			}
			// An outer frame only surfaces here once its inner table
			// has just been freed (above); the hi slot it led through
			// no longer has a live inner table and must be cleared.
			outer := m.pools.radixN(f.node)
			outer.clear(f.slot)
			if outer.empty() {
				m.pools.freeRadixNode(f.node.idx())
				continue
			}
			// The outer table survives with other hi entries, but
			// the one this descent used is now gone, so there is no
			// "current position" left to resume from the way a mere
			// decompaction would allow: search for the nearest lower
			// hi directly, the same scan [Map.Prev] performs when an
			// inner table's scan comes up empty.
			hi := f.slot - 1
			for hi >= 0 && !outer.has(hi) {
				hi--
			}
			if hi < 0 {
				// No lower entry is left in this radix node: keep its
				// outer frame so Prev retreats from it into the parent
				// level instead of removing the parent's link to it.
				m.stack.push(frame{node: f.node, off: f.off, slot: f.slot})
				return m.Prev()
			}
			innerRef := ref(outer.slot[hi])
			inner2 := m.pools.radixN(innerRef)
			lo := 15
			for lo >= 0 && !inner2.has(lo) {
				lo--
			}
			m.stack.push(frame{node: f.node, off: f.off, slot: hi})
			m.stack.push(frame{node: innerRef, off: f.off, slot: lo, radixInner: true})
			b := byte(hi<<4 | lo)
			if m.isLeafAt(f.off+1, 0, uint64(b)) {
				return &inner2.slot[lo]
			}
			return m.last(ref(inner2.slot[lo]), f.off+1)
		default: // linear-N
			s := f.node.tag()
			v := m.pools.lN(f.node)
			idx := f.slot
			v.removeAt(idx)
			if v.cnt > 0 {
				// The entry that used to sit one past the deleted
				// one has shifted into idx; resume Prev from there
				// so it lands on the true predecessor.
				m.stack.push(frame{node: f.node, off: f.off, slot: idx})
				return m.Prev()
			}
			m.pools.freeLinNode(s, f.node.idx())
			continue
		}
	}
}
