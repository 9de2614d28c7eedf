// Package judy implements a compact, ordered associative map keyed by
// either NUL-terminated byte strings or fixed-width unsigned integer
// tuples, in the style of Karl Malbrain's judy64nb: a trie variant in
// the Judy family that promotes and demotes between several node
// shapes so memory use tracks key-set density while keeping lookup,
// ordered traversal, and key reconstruction logarithmic in key length.
//
// A Map is not safe for concurrent use; see [Map.Clone] for taking a
// read-only, traversal-only snapshot. Every lookup, insert, delete and
// traversal call moves the Map's internal cursor, so a caller that
// needs a stable cursor
// across unrelated queries must clone first.
package judy
