/*
Package search implements an A*-style best-first engine: it explores the
joint space of query positions × trie nodes, memoizing shared suffixes
through the location cache so that distinct edit paths reaching the same
(index, node) pair share the cost of completing the dictionary subtree
below it.

Go has no resumable generators, so Generator is a stateful-iterator
stand-in: Next(changeLimit) runs the A* loop until it has one more
accepted emission (or the frontier is exhausted under the current cost
limit), and the caller feeds back a (possibly tighter) changeLimit on
every call. The loop never suspends anywhere except at an accepted
emission.
*/
package search

import (
	"github.com/Zubayear/kotoba/location"
	"github.com/Zubayear/kotoba/orthography"
	"github.com/Zubayear/kotoba/priorityqueue"
	"github.com/Zubayear/kotoba/queue"
	"github.com/Zubayear/kotoba/set"
	"github.com/Zubayear/kotoba/trie"
)

func pathLess(a, b *Path) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	return a.Index > b.Index // tie-break: favor further progress into the word
}

// Generator drives one A* search over one trie root. It is single-threaded
// and cooperative: Next suspends at each accepted emission and resumes
// when asked for the next one. All of its caches are allocated fresh by
// New and dropped with the Generator when the search ends.
type Generator struct {
	query    []rune
	root     *trie.Root
	noFollow *set.UnorderedSet

	costLimit int

	heap    *priorityqueue.PairingHeap[*Path]
	cache   *location.Cache[int, *trie.Node, *Path]
	resolve *queue.Queue[*Edge]

	emitted map[string]int // shared emission ledger, across every root in one suggest() call
	ready   []Emission
}

// New returns a Generator over root for query, seeded from root's initial
// nodes. costLimit is the starting cost bound — callers driving multiple
// roots in one Suggest call should carry the previous root's final limit
// forward (clamped to the per-query formula) so the collector's
// tightening is not lost between roots. emitted is the shared emission
// ledger; pass the same map across every root in one Suggest call so
// duplicate words found via a second root are suppressed.
func New(root *trie.Root, query string, ignoreCase bool, costLimit int, emitted map[string]int) *Generator {
	g := &Generator{
		query:     []rune(query),
		root:      root,
		noFollow:  root.NoFollowSet(),
		costLimit: costLimit,
		heap:      priorityqueue.NewPairingHeap[*Path](pathLess),
		cache:     location.NewCache[int, *trie.Node, *Path](),
		resolve:   queue.NewQueue[*Edge](),
		emitted:   emitted,
	}
	for _, n := range root.InitialNodes(ignoreCase) {
		g.seed(n.Node, n.StartCost)
	}
	return g
}

// CostLimit returns the engine's current cost bound, for carrying over to
// the next root in a multi-root suggest() call.
func (g *Generator) CostLimit() int {
	return g.costLimit
}

func (g *Generator) seed(node *trie.Node, startCost int) {
	entry := g.cache.GetOrCreate(0, node)
	if _, exists := entry.In[""]; exists {
		return
	}
	p := newPath(node, 0, "", startCost, nil, nil)
	p.Location = entry
	entry.In[""] = p
	if !entry.HasRepresentative() || startCost < entry.Representative.G {
		if entry.HasRepresentative() {
			entry.Representative.Active = false
		}
		entry.SetRepresentative(p)
	}
	g.heap.Add(p)
}

// Next resumes the search, honoring changeLimit (a negative value means
// "no tightening this time"): costLimit only ever shrinks, never grows. It
// returns the next accepted (word, cost) emission, or ok=false once the
// frontier is exhausted under the current cost limit.
func (g *Generator) Next(changeLimit int) (Emission, bool) {
	if changeLimit >= 0 && changeLimit < g.costLimit {
		g.costLimit = changeLimit
	}

	for len(g.ready) == 0 {
		top, ok := g.heap.Peek()
		if !ok || top.F > g.costLimit {
			return Emission{}, false
		}
		p, _ := g.heap.Dequeue()
		if !p.Active {
			continue
		}
		g.processPath(p)
	}

	e := g.ready[0]
	g.ready = g.ready[1:]
	return e, true
}

func (g *Generator) processPath(p *Path) {
	if p.Node.IsTerminal() {
		remaining := len(g.query) - p.Index
		g.completeLocation(p, "", remaining*BaseCost)
	}
	g.expand(p)
	if p.Pending.IsEmpty() {
		g.onPathDrained(p)
	}
	g.drainResolutions()
}

// expand runs the applicable edit operations from p. At i == len(query),
// only Insert runs.
func (g *Generator) expand(p *Path) {
	i := p.Index
	n := len(g.query)
	node := p.Node

	if i < n {
		q := g.query[i]

		if child, ok := node.Child(q); ok {
			g.addEdge(p, child, i+1, string(q), 0, Identity)
		}

		for ch, child := range node.Children() {
			if ch == q {
				continue
			}
			var cost int
			if orthography.VisuallySimilar(ch, q) {
				cost = VisuallySimilarCost
			} else {
				cost = BaseCost
				if i == 0 {
					cost += FirstLetterBias
				}
			}
			g.addEdge(p, child, i+1, string(ch), cost, Replace)
		}

		g.addEdge(p, node, i+1, "", BaseCost, Delete)

		if i+1 < n && q != g.query[i+1] {
			if mid, ok := node.Child(g.query[i+1]); ok {
				if dst, ok := mid.Child(q); ok {
					label := string(g.query[i+1]) + string(q)
					g.addEdge(p, dst, i+2, label, SwapCost, Swap)
				}
			}
		}

		if i+1 < n && q == g.query[i+1] {
			if child, ok := node.Child(q); ok {
				g.addEdge(p, child, i+2, string(q), DuplicateLetterCost, Delete)
			}
		} else {
			if mid, ok := node.Child(q); ok {
				if dst, ok := mid.Child(q); ok {
					label := string(q) + string(q)
					g.addEdge(p, dst, i+1, label, DuplicateLetterCost, Insert)
				}
			}
		}
	}

	for ch, child := range node.Children() {
		g.addEdge(p, child, i, string(ch), BaseCost, Insert)
	}
}

// addEdge adds one edit-transition edge from parent to target: the four
// branches that make memoization possible.
func (g *Generator) addEdge(parent *Path, target *trie.Node, newIndex int, label string, cost int, action Action) {
	gPrime := parent.G + cost
	if gPrime > g.costLimit {
		return // step 1: drop
	}

	entry := g.cache.GetOrCreate(newIndex, target)

	if entry.IsResolved() && entry.ResolvedBaseCost <= gPrime {
		// step 2: already resolved — combine immediately, no new path.
		g.completeFromSuffixes(parent, label, cost, entry.Suffixes)
		return
	}

	spelled := parent.Word + label
	if existing, ok := entry.In[spelled]; ok && existing.G <= gPrime {
		return // step 3: a cheaper or equal arrival via this spelling exists
	}

	// step 4: create the child path.
	edge := &Edge{Parent: parent, Target: target, NewIndex: newIndex, Label: label, Cost: cost, Action: action}
	child := newPath(target, newIndex, spelled, gPrime, parent, edge)
	child.Location = entry
	entry.In[spelled] = child

	if !entry.HasRepresentative() || gPrime < entry.Representative.G {
		if entry.HasRepresentative() {
			entry.Representative.Active = false
		}
		entry.SetRepresentative(child)
		g.heap.Add(child)
	}
	parent.Pending.OfferLast(edge)
}

// completeLocation registers (suffix, cost) as one way owner's own
// location can complete into a dictionary word: it tries emitting the
// corresponding full word, and — if owner is the representative of its
// location — appends the suffix to that location's memoized list so later
// arrivals can reuse it by combination instead of re-expansion.
func (g *Generator) completeLocation(owner *Path, suffix string, cost int) {
	g.tryEmit(owner.Word+suffix, owner.G+cost)
	entry := owner.Location
	if entry != nil && entry.HasRepresentative() && entry.Representative == owner {
		entry.AddSuffix(suffix, cost)
	}
}

func (g *Generator) completeFromSuffixes(owner *Path, label string, cost int, suffixes []location.SuffixRecord) {
	for _, sfx := range suffixes {
		g.completeLocation(owner, label+sfx.Suffix, cost+sfx.Cost)
	}
}

// onPathDrained fires once p.Pending empties: either p is the
// representative of its own location, in which case the location is now
// fully resolved and every incoming arrival's edge is queued for
// resolution; or p bubbles the "done" signal straight to its parent via
// the edge that created it.
func (g *Generator) onPathDrained(p *Path) {
	entry := p.Location
	if entry == nil {
		return
	}
	if entry.HasRepresentative() && entry.Representative == p {
		if entry.IsResolved() {
			return
		}
		entry.Resolve(p.G)
		for _, incoming := range entry.In {
			if incoming.CreatingEdge != nil {
				g.resolve.Enqueue(incoming.CreatingEdge)
			}
		}
	} else if p.CreatingEdge != nil {
		g.resolve.Enqueue(p.CreatingEdge)
	}
}

func (g *Generator) drainResolutions() {
	for !g.resolve.IsEmpty() {
		e, err := g.resolve.Dequeue()
		if err != nil {
			return
		}
		targetEntry, ok := g.cache.Get(e.NewIndex, e.Target)
		if !ok {
			continue
		}
		g.completeFromSuffixes(e.Parent, e.Label, e.Cost, targetEntry.Suffixes)
		e.Parent.Pending.Remove(e)
		if e.Parent.Pending.IsEmpty() {
			g.onPathDrained(e.Parent)
		}
	}
}

// tryEmit applies the emission rule: cost within budget, the word doesn't
// end in a no-follow (reserved sentinel) character, and the emission
// ledger doesn't already hold an equal-or-cheaper entry for it.
func (g *Generator) tryEmit(word string, cost int) {
	if cost > g.costLimit || word == "" {
		return
	}
	last := []rune(word)
	if g.noFollow.Contain(last[len(last)-1]) {
		return
	}
	if prior, ok := g.emitted[word]; ok && prior <= cost {
		return
	}
	g.emitted[word] = cost
	g.ready = append(g.ready, Emission{Word: word, Cost: cost})
}
