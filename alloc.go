package judy

// pools is the node allocator (component B): per-shape free lists
// layered on the arena. Each shape's live nodes are kept in a slice
// pool; a ref's index addresses an entry in the pool for its tag.
// Freeing pushes an index onto that shape's free-list stack; no
// coalescing is performed, matching §4.B.
//
// Reuse across shapes (§4.B.4, §9's radix/span-to-lin_max bin
// sharing) is approximated rather than reproduced byte-for-byte: Go's
// type system does not let a radixNode and a linNode alias the same
// backing memory the way untyped byte blocks do in the source, so
// radix and span keep their own free lists. The three-tier allocation
// strategy that is actually observable (exact-shape free list, then
// split a larger free linear block, then carve fresh) is preserved in
// full for the six linear shapes, where the aliasing trick works
// cleanly via Go slice re-slicing.
type pools struct {
	arena *arena

	lin     [7][]*linNode // indices 1..6 used (shapeLin1..shapeLin32)
	freeLin [7][]int

	radix     []*radixNode
	freeRadix []int

	span     []*spanNode
	freeSpan []int
}

func newPools(a *arena) *pools {
	return &pools{arena: a}
}

// charge accounts one node allocation against the arena's segment
// budget, so an exhausted test Allocator makes node growth fail the
// same way Data does, fulfilling §7's "open/cell/data return null"
// out-of-memory contract for node-pool growth as well. The charge
// size is nominal (one word) rather than a node's actual Go memory
// footprint — what matters for the OOM contract is that the budget is
// finite and decreases monotonically with population, not that it
// tracks real heap bytes one-for-one.
func (p *pools) charge() bool {
	return p.arena.chargeBytes(wordSize)
}

func (p *pools) allocLin(s shape) (ref, *linNode) {
	if n := len(p.freeLin[s]); n > 0 {
		idx := p.freeLin[s][n-1]
		p.freeLin[s] = p.freeLin[s][:n-1]
		node := p.lin[s][idx]
		resetLin(node)
		return makeRef(s, idx), node
	}
	for u := s + 1; u <= shapeLin32; u++ {
		if n := len(p.freeLin[u]); n > 0 {
			idx := p.freeLin[u][n-1]
			p.freeLin[u] = p.freeLin[u][:n-1]
			big := p.lin[u][idx]
			return p.splitLin(big, u, s)
		}
	}
	if !p.charge() {
		return 0, nil
	}
	node := newLinNode(s)
	p.lin[s] = append(p.lin[s], node)
	return makeRef(s, len(p.lin[s])-1), node
}

// splitLin recursively halves a freed larger linear block until it
// yields a node of shape want, pushing the unused half at each level
// onto that level's own free list. Because every linear shape's
// capacity is exactly double the one below it, each halving is exact:
// splitting a shape-u block of capacity 2n into two shape-(u-1)
// blocks of capacity n each wastes nothing, matching §4.B.2's
// "split it into a t-sized block plus one block each of intermediate
// sizes".
func (p *pools) splitLin(big *linNode, from, want shape) (ref, *linNode) {
	for from > want {
		half := linCount(from) / 2
		lo := &linNode{n: half, frag: big.frag[:half:half], child: big.child[:half:half]}
		hi := &linNode{n: half, frag: big.frag[half : 2*half : 2*half], child: big.child[half : 2*half : 2*half]}
		sib := from - 1
		p.lin[sib] = append(p.lin[sib], hi)
		p.freeLin[sib] = append(p.freeLin[sib], len(p.lin[sib])-1)
		big = lo
		from = sib
	}
	resetLin(big)
	p.lin[want] = append(p.lin[want], big)
	return makeRef(want, len(p.lin[want])-1), big
}

func resetLin(n *linNode) {
	n.cnt = 0
	for i := range n.frag {
		n.frag[i] = 0
		n.child[i] = 0
	}
}

func (p *pools) freeLinNode(s shape, idx int) {
	p.freeLin[s] = append(p.freeLin[s], idx)
}

func (p *pools) allocRadix() (ref, *radixNode) {
	if n := len(p.freeRadix); n > 0 {
		idx := p.freeRadix[n-1]
		p.freeRadix = p.freeRadix[:n-1]
		node := p.radix[idx]
		*node = radixNode{}
		return makeRef(shapeRadix, idx), node
	}
	if !p.charge() {
		return 0, nil
	}
	node := newRadixNode()
	p.radix = append(p.radix, node)
	return makeRef(shapeRadix, len(p.radix)-1), node
}

func (p *pools) freeRadixNode(idx int) {
	p.freeRadix = append(p.freeRadix, idx)
}

func (p *pools) allocSpan() (ref, *spanNode) {
	if n := len(p.freeSpan); n > 0 {
		idx := p.freeSpan[n-1]
		p.freeSpan = p.freeSpan[:n-1]
		node := p.span[idx]
		*node = spanNode{}
		return makeRef(shapeSpan, idx), node
	}
	if !p.charge() {
		return 0, nil
	}
	node := newSpanNode()
	p.span = append(p.span, node)
	return makeRef(shapeSpan, len(p.span)-1), node
}

func (p *pools) freeSpanNode(idx int) {
	p.freeSpan = append(p.freeSpan, idx)
}

func (p *pools) lN(r ref) *linNode     { return p.lin[r.tag()][r.idx()] }
func (p *pools) radixN(r ref) *radixNode { return p.radix[r.idx()] }
func (p *pools) spanN(r ref) *spanNode   { return p.span[r.idx()] }
