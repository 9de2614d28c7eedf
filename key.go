package judy

// Key reconstructs the cursor's current key — as left by the most
// recent [Map.Slot], [Map.StartAt], [Map.First], [Map.Last],
// [Map.Next], [Map.Prev] or [Map.Del] — into buf, walking the path
// stack frame by frame (§4.C). It returns the number of bytes
// written, truncating rather than panicking if buf is too small. If
// there is no current position, it returns 0.
//
// Following judy_key's word assembly, reconstruction is resumable
// mid-word: a frame never assumes it starts at a word boundary, since
// a lin32-to-radix split can leave a path where earlier frames didn't
// each consume a full word.
func (m *Map) Key(buf []byte) int {
	max := len(buf)

	n := 0
	for i := 0; i < m.stack.top && n < max; i++ {
		f := m.stack.frames[i]
		switch f.node.tag() {
		case shapeSpan:
			sp := m.pools.spanN(f.node)
			for k := 0; k < sp.blen && sp.b[k] != 0 && n < max; k++ {
				buf[n] = sp.b[k]
				n++
			}
		case shapeRadix:
			// Radix contributes two consecutive frames per key byte:
			// an outer frame (hi nibble) immediately followed by an
			// inner frame (lo nibble), per the path stack's doc
			// comment. The inner frame carries no information on its
			// own, so it is skipped here and folded into the byte
			// written when its preceding outer frame is visited.
			if f.radixInner {
				continue
			}
			hi := f.slot
			lo := 0
			if i+1 < m.stack.top {
				lo = m.stack.frames[i+1].slot
			}
			b := byte(hi<<4 | lo)
			if m.stringMode() && b == 0 {
				continue
			}
			if n < max {
				buf[n] = b
				n++
			}
		default: // linear-N
			v := m.pools.lN(f.node)
			keysize := keysizeAt(f.off)
			value := v.frag[f.slot]
			for k := keysize - 1; k >= 0 && n < max; k-- {
				b := byte(value >> (8 * k))
				if m.stringMode() && b == 0 {
					break
				}
				buf[n] = b
				n++
			}
		}
	}
	return n
}
