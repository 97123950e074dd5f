/*
Package location implements the search engine's memoization layer: the
location cache.

A location is a (word-index, trie-node) pair — a point in the joint search
space the engine explores. At most one Entry exists per location over the
lifetime of a search. An Entry tracks every incoming path by the spelling
it arrived with (so two distinct spellings reaching the same location are
not conflated), a representative path (the cheapest known arrival, which
carries the location's outgoing search), a resolved base cost (-1 until
the location's subtree has been fully expanded once), and the append-only
list of suffix records describing how that subtree completes into
dictionary words.

Cache is generic over the path handle type P so that this package never
needs to import the search package (which is the only thing that knows
what a "path" is) — avoiding an import cycle. It is instantiated as
Cache[int, *trie.Node, *search.Path] by the search engine.

The outer index is a small, monotonically increasing int (the word
position i), which is exactly the shape github.com/Zubayear/kotoba/treemap
is built for; the inner index is a trie node pointer, which has no natural
order, so it stays a plain Go map.
*/
package location

import (
	"golang.org/x/exp/constraints"

	"github.com/Zubayear/kotoba/treemap"
)

// SuffixRecord is one way a location's subtree can complete into a
// dictionary word: the completing suffix string and its cost from this
// location.
type SuffixRecord struct {
	Suffix string
	Cost   int
}

// Entry is one location's memoized state.
type Entry[P any] struct {
	// In maps "word spelled so far" -> the incoming path that reached this
	// location via that spelling.
	In map[string]P
	// Representative is the cheapest known incoming path; it carries the
	// location's outgoing search. hasRep distinguishes "no representative
	// yet" from a legitimate zero value of P (P is often a pointer, where
	// nil already means that, but P is not constrained to be a pointer).
	Representative P
	hasRep         bool
	// ResolvedBaseCost is -1 until this location has been fully expanded
	// to completion once; thereafter it holds the g at which that first
	// happened.
	ResolvedBaseCost int
	// Suffixes is append-only once ResolvedBaseCost >= 0.
	Suffixes []SuffixRecord
}

func newEntry[P any]() *Entry[P] {
	return &Entry[P]{In: make(map[string]P), ResolvedBaseCost: -1}
}

// IsResolved reports whether this location's suffix set is complete.
func (e *Entry[P]) IsResolved() bool {
	return e.ResolvedBaseCost >= 0
}

// Resolve fixes the location's resolved base cost. It must only be called
// once, when the representative path's pending-edge set empties.
func (e *Entry[P]) Resolve(cost int) {
	e.ResolvedBaseCost = cost
}

// AddSuffix appends one more completion to this location's suffix list.
func (e *Entry[P]) AddSuffix(suffix string, cost int) {
	e.Suffixes = append(e.Suffixes, SuffixRecord{Suffix: suffix, Cost: cost})
}

// SetRepresentative installs p as this location's representative path.
func (e *Entry[P]) SetRepresentative(p P) {
	e.Representative = p
	e.hasRep = true
}

// HasRepresentative reports whether a representative has been set.
func (e *Entry[P]) HasRepresentative() bool {
	return e.hasRep
}

// Cache is the two-level (word-index, trie-node) -> Entry memoization
// table for one search. It is allocated fresh per call to the search
// engine and dropped at the end: no two concurrent searches share
// mutable state.
type Cache[K constraints.Ordered, N comparable, P any] struct {
	outer *treemap.TreeMap[K, map[N]*Entry[P]]
}

// NewCache returns an empty location cache.
func NewCache[K constraints.Ordered, N comparable, P any]() *Cache[K, N, P] {
	return &Cache[K, N, P]{outer: treemap.NewTreeMap[K, map[N]*Entry[P]]()}
}

// GetOrCreate returns the Entry for (i, n), creating it (and its Entry) on
// first access. This is the cache's core contract: at most one Entry is
// ever created per (i, n) pair.
func (c *Cache[K, N, P]) GetOrCreate(i K, n N) *Entry[P] {
	inner, ok := c.outer.Get(i)
	if !ok {
		inner = make(map[N]*Entry[P])
		c.outer.Put(i, inner)
	}
	entry, ok := inner[n]
	if !ok {
		entry = newEntry[P]()
		inner[n] = entry
	}
	return entry
}

// Get looks up the Entry for (i, n) without creating one.
func (c *Cache[K, N, P]) Get(i K, n N) (*Entry[P], bool) {
	inner, ok := c.outer.Get(i)
	if !ok {
		return nil, false
	}
	entry, ok := inner[n]
	return entry, ok
}
