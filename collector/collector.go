/*
Package collector implements kotoba's bounded ranked output buffer: it
consumes a generator's emissions in the order the search produces them,
keeps only the cheapest NumSuggestions of them, and feeds the worst kept
cost back to the generator as a tightened cost limit so the search can
prune itself early. The cost limit it hands back only ever tightens,
never loosens, for the lifetime of one collector.

The buffer is a size-capped max-heap over cost, built on
github.com/Zubayear/kotoba/priorityqueue.BinaryHeap.
*/
package collector

import (
	"sort"
	"strings"

	"github.com/Zubayear/kotoba/priorityqueue"
	"github.com/Zubayear/kotoba/search"
)

// Options configures one collector.
type Options struct {
	// NumSuggestions caps how many suggestions the collector ultimately
	// keeps. Zero or negative means "unbounded" (the generator's own cost
	// limit is the only bound).
	NumSuggestions int
	// IncludeTies keeps every emission tied with the current worst-kept
	// cost even past NumSuggestions, rather than dropping ties arbitrarily.
	IncludeTies bool
	// IgnoreCase case-folds words for dedup purposes only: two emissions
	// that fold to the same key occupy a single slot, and the cheaper of
	// the cased variants observed is the one kept. It does not widen the
	// search itself — trie.InitialNodes(ignoreCase) does that.
	IgnoreCase bool
	// Filter, if set, rejects an emission outright before it is considered
	// for the buffer at all (e.g. a caller-supplied word blocklist).
	Filter func(word string, cost int) bool
}

// kept is one accepted (word, cost) entry held in the bounded buffer.
type kept struct {
	word string
	cost int
}

// Collector accumulates search.Emission values into a bounded, ranked set.
type Collector struct {
	opts     Options
	heap     *priorityqueue.BinaryHeap[kept]
	size     int
	foldedAt map[string]kept // IgnoreCase only: fold key -> currently kept item
}

// New returns an empty Collector configured by opts.
func New(opts Options) *Collector {
	cmp := func(a, b kept) bool {
		if a.cost != b.cost {
			return a.cost > b.cost // max-heap: worst-kept cost sits at the root
		}
		return a.word > b.word
	}
	return &Collector{
		opts:     opts,
		heap:     priorityqueue.NewBinaryHeapWithComparator[kept](cmp),
		foldedAt: make(map[string]kept),
	}
}

// foldKey case-folds word for IgnoreCase dedup comparisons.
func foldKey(word string) string {
	return strings.ToLower(word)
}

// Offer considers one emission for inclusion. It returns the collector's
// current change limit: the caller should pass this straight back into the
// generator's Next call so the search tightens as the buffer fills.
// A negative return means "no limit yet" (the buffer is not yet full).
func (c *Collector) Offer(e search.Emission) int {
	if c.opts.Filter != nil && !c.opts.Filter(e.Word, e.Cost) {
		return c.changeLimit()
	}

	item := kept{word: e.Word, cost: e.Cost}

	var key string
	if c.opts.IgnoreCase {
		key = foldKey(e.Word)
		if prior, ok := c.foldedAt[key]; ok {
			if e.Cost >= prior.cost {
				return c.changeLimit() // a costlier spelling of a word already kept
			}
			if _, found := c.heap.RemoveMatch(func(k kept) bool {
				return k.word == prior.word && k.cost == prior.cost
			}); found {
				c.size--
			}
			delete(c.foldedAt, key)
		}
		c.foldedAt[key] = item
	}

	limit := c.opts.NumSuggestions

	if limit <= 0 {
		c.heap.Add(item)
		c.size++
		return -1
	}

	if c.size < limit {
		c.heap.Add(item)
		c.size++
		return c.changeLimit()
	}

	worst, err := c.heap.Peek()
	if err != nil {
		return -1
	}
	if e.Cost < worst.cost || (c.opts.IncludeTies && e.Cost == worst.cost) {
		if e.Cost < worst.cost {
			_, _ = c.heap.Poll()
			c.size--
			if c.opts.IgnoreCase {
				delete(c.foldedAt, foldKey(worst.word))
			}
		}
		c.heap.Add(item)
		c.size++
	} else if c.opts.IgnoreCase {
		delete(c.foldedAt, key) // didn't make the cut; undo the provisional entry
	}
	return c.changeLimit()
}

// changeLimit returns the worst-kept cost once the buffer is at capacity,
// or -1 while it still has room (no tightening possible yet).
func (c *Collector) changeLimit() int {
	limit := c.opts.NumSuggestions
	if limit <= 0 || c.size < limit {
		return -1
	}
	worst, err := c.heap.Peek()
	if err != nil {
		return -1
	}
	return worst.cost
}

// Result is one finished, ranked suggestion.
type Result struct {
	Word string
	Cost int
}

// Results drains the collector and returns its contents ranked cheapest
// first, with ties broken lexicographically.
func (c *Collector) Results() []Result {
	raw := c.heap.Sort() // worst (highest cost) first
	out := make([]Result, len(raw))
	for i, k := range raw {
		out[len(raw)-1-i] = Result{Word: k.word, Cost: k.cost}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost < out[j].Cost
	})
	return out
}
