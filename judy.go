package judy

import "fmt"

// Map is an ordered associative trie map keyed by either
// NUL-terminated byte strings or fixed-width big-endian integer
// tuples, mapping each key to a single machine-word value cell.
//
// The zero value is not usable; construct one with [Open].
type Map struct {
	root  uint64
	depth int // 0 for string mode, word-tuple count for integer mode
	max   int // maximum key length in bytes

	pools *pools
	arena *arena
	stack *pathStack

	readOnly bool
}

// Option configures a [Map] at [Open] time.
type Option func(*openConfig)

type openConfig struct {
	allocator Allocator
	segSize   int
	cacheLine int
}

// WithAllocator overrides the segment source a Map draws from. It
// exists chiefly so tests can inject a capacity-limited [Allocator]
// to exercise the out-of-memory paths deterministically.
func WithAllocator(a Allocator) Option {
	return func(c *openConfig) { c.allocator = a }
}

// WithSegmentSize overrides the size of each arena segment obtained
// from the [Allocator] (default 64 KiB, §4.A). Mainly useful in tests
// that want to force segment rollover with a small population.
func WithSegmentSize(n int) Option {
	return func(c *openConfig) { c.segSize = n }
}

// WithCacheLine overrides the alignment [Map.Data] allocations are
// rounded up to (default 8 bytes; the source also documents 64 bytes
// as a tuned choice for wider cache lines, §6, §9).
func WithCacheLine(n int) Option {
	return func(c *openConfig) { c.cacheLine = n }
}

// Open creates a Map. In string mode (depth == 0), maxKeyBytes bounds
// the length of any key passed to [Map.Cell] or [Map.Slot], excluding
// the implicit NUL terminator. In integer mode (depth > 0), keys are
// tuples of depth big-endian machine words and maxKeyBytes is
// ignored: the effective maximum is always depth*8, per the source's
// integer-mode contract.
func Open(maxKeyBytes, depth int, opts ...Option) (*Map, error) {
	if maxKeyBytes < 0 || depth < 0 {
		return nil, fmt.Errorf("judy: negative maxKeyBytes or depth")
	}
	cfg := openConfig{segSize: defaultSegSize, cacheLine: defaultCacheLine}
	for _, o := range opts {
		o(&cfg)
	}
	max := maxKeyBytes
	if depth > 0 {
		max = depth * wordSize
	}
	a := newArena(cfg.allocator, cfg.segSize, cfg.cacheLine)
	m := &Map{
		depth: depth,
		max:   max,
		pools: newPools(a),
		arena: a,
		stack: newPathStack(max + 1),
	}
	return m, nil
}

// Close releases the Map's underlying segments. A closed Map must not
// be used again.
func (m *Map) Close() {
	m.arena.segs = nil
	m.pools = nil
	m.root = 0
}

// Clone returns a read-only snapshot of m sharing its trie storage
// but with an independent cursor. Traversal and lookup operations on
// the clone do not disturb m's cursor and vice versa. Calling any
// mutating method ([Map.Cell], [Map.Del], [Map.Data]) on the clone
// panics: the
// source implementation this package is modeled on leaves the
// behavior of mutating a snapshot undefined, and this package chooses
// to make that misuse fail loudly instead.
func (m *Map) Clone() *Map {
	return &Map{
		root:     m.root,
		depth:    m.depth,
		max:      m.max,
		pools:    m.pools,
		arena:    m.arena,
		stack:    m.stack.clone(),
		readOnly: true,
	}
}

func (m *Map) checkMutable() {
	if m.readOnly {
		panic("judy: mutating method called on a read-only clone")
	}
}

// Data allocates n bytes from the Map's arena for the caller's own
// use, e.g. to store a copy of a key alongside its value cell. The
// returned slice is valid for the lifetime of the Map and is freed
// only when the Map closes; it returns nil if the underlying
// [Allocator] cannot supply more memory. Calling Data on a read-only
// clone panics rather than bumping the arena cursor the source map's
// own allocations depend on.
func (m *Map) Data(n int) []byte {
	m.checkMutable()
	return m.arena.carve(n)
}

// stringMode reports whether the Map is keyed by NUL-terminated byte
// strings rather than fixed-width integer tuples.
func (m *Map) stringMode() bool { return m.depth == 0 }
