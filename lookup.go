package judy

// Slot returns the value cell for key, or nil if key is not present.
// It descends the trie exactly as [Map.Cell] does but never grows the
// structure, recording the path it took — even a path that ends in
// not-found — on m's path stack, so that [Map.StartAt] can resume a
// failed lookup from where it diverged (§4.E).
func (m *Map) Slot(key []byte) *uint64 {
	m.stack.reset()
	r, off := ref(m.root), 0
	for r.valid() {
		switch r.tag() {
		case shapeSpan:
			sp := m.pools.spanN(r)
			n := m.matchSpan(sp, key, off)
			m.stack.push(frame{node: r, off: off, slot: -1})
			if n < sp.blen {
				return nil
			}
			if sp.isLeaf() {
				return &sp.child
			}
			off += n
			r = ref(sp.child)
		case shapeRadix:
			var b byte
			if off < len(key) {
				b = key[off]
			}
			hi, lo := int(b>>4), int(b&0xf)
			outer := m.pools.radixN(r)
			m.stack.push(frame{node: r, off: off, slot: hi})
			if !outer.has(hi) {
				return nil
			}
			innerRef := ref(outer.slot[hi])
			inner := m.pools.radixN(innerRef)
			m.stack.push(frame{node: innerRef, off: off, slot: lo, radixInner: true})
			if !inner.has(lo) {
				return nil
			}
			off++
			if m.isLeafAt(off, 0, uint64(b)) {
				return &inner.slot[lo]
			}
			r = ref(inner.slot[lo])
		default: // linear-N
			v := m.pools.lN(r)
			value, keysize := readFragment(key, off)
			idx := v.find(value)
			m.stack.push(frame{node: r, off: off, slot: idx})
			if idx < 0 || v.frag[idx] != value {
				return nil
			}
			if m.isLeafAt(off, keysize, value) {
				return &v.child[idx]
			}
			off += keysize
			r = ref(v.child[idx])
		}
	}
	return nil
}

// StartAt returns the value cell of the lowest key present that is
// greater than or equal to key. If key itself is present, its cell is
// returned; otherwise traversal resumes from the partial descent
// [Map.Slot] recorded to find the next existing key (§4.E).
func (m *Map) StartAt(key []byte) *uint64 {
	if cell := m.Slot(key); cell != nil {
		return cell
	}
	// A span whose content sorts above key holds the answer itself;
	// Next would step past it.
	if f, ok := m.stack.peek(); ok && f.node.tag() == shapeSpan {
		sp := m.pools.spanN(f.node)
		n := m.matchSpan(sp, key, f.off)
		var kb byte
		if f.off+n < len(key) {
			kb = key[f.off+n]
		}
		if n < sp.blen && sp.b[n] > kb {
			m.stack.pop()
			return m.first(f.node, f.off)
		}
	}
	return m.Next()
}
