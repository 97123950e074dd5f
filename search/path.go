package search

import (
	"github.com/Zubayear/kotoba/deque"
	"github.com/Zubayear/kotoba/location"
	"github.com/Zubayear/kotoba/trie"
)

// locationEntry is the location cache's per-(index, node) memoization
// record, instantiated for this engine's path handle type.
type locationEntry = location.Entry[*Path]

// Edge is a directed link from a parent Path to a child state. It is also
// the unit of work the engine re-queues once its target location resolves.
type Edge struct {
	Parent   *Path
	Target   *trie.Node
	NewIndex int
	Label    string
	Cost     int
	Action   Action
}

// Path is one candidate edit path: the trie node it sits at, its index
// into the query, the word spelled so far, and its accumulated/A* costs.
// Paths are created by expanding an edge from a parent, mutated only to
// add/remove pending edges or to be deactivated, and dropped when the
// search ends.
type Path struct {
	Node   *trie.Node
	Index  int
	Word   string
	G      int
	F      int // g + h; h is always 0, so F tracks G exactly
	Active bool

	// Pending is this path's outgoing edges still awaiting resolution,
	// implemented as a Deque[*Edge]: edges arrive via OfferLast and are
	// plucked out by identity via Remove the moment their target resolves.
	Pending *deque.Deque[*Edge]

	// Parent and CreatingEdge identify the edge that produced this path, so
	// resolution can bubble from a non-representative path straight to its
	// parent.
	Parent       *Path
	CreatingEdge *Edge

	// Location is the cache entry for this path's own (Index, Node) pair,
	// stashed at creation time so completeLocation/onPathDrained don't need
	// a separate path->location map.
	Location *locationEntry
}

func newPath(node *trie.Node, index int, word string, g int, parent *Path, creatingEdge *Edge) *Path {
	return &Path{
		Node:         node,
		Index:        index,
		Word:         word,
		G:            g,
		F:            g,
		Active:       true,
		Pending:      deque.NewDeque[*Edge](),
		Parent:       parent,
		CreatingEdge: creatingEdge,
	}
}

// Emission is one (word, cost) candidate the generator has accepted for
// delivery to the collector.
type Emission struct {
	Word string
	Cost int
}
