package priorityqueue

/*
PairingHeap is a generic, mergeable min-priority queue.

Where BinaryHeap gives O(log n) insert, a PairingHeap gives O(1) amortized
Add (it is just a root-merge) at the cost of a more expensive Poll, which
pays off the deferred merges in one amortized O(log n) pass. The search
engine's A* frontier pushes far more often than it pops relative to how
much it merges, so the pairing heap's insert-heavy amortized bounds fit it
better than BinaryHeap's balanced bounds do.

A PairingHeap node is a heap-ordered tree: a value plus a list of child
subheaps, each of which also satisfies the heap property relative to its
own children. The heap itself is nothing but a pointer to the minimum root
(nil when empty); Add merges a new singleton node into that root, and Poll
detaches the root's children and pairwise-merges them back into one tree
(first left-to-right in pairs, then right-to-left folding the pairs
together), which is what keeps the amortized bound logarithmic.

Ordering is supplied by a comparator, exactly like BinaryHeap's
NewBinaryHeapWithComparator: cmp(a, b) returns true when a has strictly
higher priority (sorts before) b. The search engine's comparator orders by
g ascending, tie-broken by word index i descending (prefer the path that
has consumed more of the query).

Complexity:
  - Add (meld a singleton): O(1) amortized
  - Dequeue (pop + pairwise merge): O(log n) amortized
  - Length: O(1)
*/

type pairingNode[T any] struct {
	value    T
	children []*pairingNode[T]
}

// PairingHeap is a generic, mergeable min-priority queue ordered by a
// caller-supplied comparator. It is not safe for concurrent use: the
// search engine that owns it is single-threaded by design, so no mutex is
// carried here.
type PairingHeap[T any] struct {
	root   *pairingNode[T]
	length int
	cmp    func(a, b T) bool
}

// NewPairingHeap returns an empty PairingHeap ordered by cmp. cmp(a, b)
// must return true when a should be dequeued before b.
func NewPairingHeap[T any](cmp func(a, b T) bool) *PairingHeap[T] {
	return &PairingHeap[T]{cmp: cmp}
}

// Length returns the number of elements currently in the heap.
//
// Complexity: O(1)
func (h *PairingHeap[T]) Length() int {
	return h.length
}

// IsEmpty reports whether the heap holds no elements.
func (h *PairingHeap[T]) IsEmpty() bool {
	return h.length == 0
}

// Add inserts val into the heap.
//
// Complexity: O(1) amortized
func (h *PairingHeap[T]) Add(val T) {
	h.root = h.merge(h.root, &pairingNode[T]{value: val})
	h.length++
}

// Peek returns the current minimum without removing it.
//
// Complexity: O(1)
func (h *PairingHeap[T]) Peek() (T, bool) {
	var zero T
	if h.root == nil {
		return zero, false
	}
	return h.root.value, true
}

// Dequeue removes and returns the current minimum, re-merging its children.
//
// Complexity: O(log n) amortized
func (h *PairingHeap[T]) Dequeue() (T, bool) {
	var zero T
	if h.root == nil {
		return zero, false
	}
	min := h.root.value
	h.root = h.mergePairs(h.root.children)
	h.length--
	return min, true
}

// merge combines two heap-ordered trees into one, making the
// higher-priority root the parent.
func (h *PairingHeap[T]) merge(a, b *pairingNode[T]) *pairingNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.cmp(b.value, a.value) {
		a, b = b, a
	}
	a.children = append(a.children, b)
	return a
}

// mergePairs implements the classic two-pass pairing-heap merge: pair
// siblings left-to-right, then fold the resulting trees right-to-left into
// one. This two-pass shape is what gives Dequeue its amortized O(log n)
// bound instead of degrading to O(n) on adversarial sequences.
func (h *PairingHeap[T]) mergePairs(nodes []*pairingNode[T]) *pairingNode[T] {
	if len(nodes) == 0 {
		return nil
	}
	if len(nodes) == 1 {
		return nodes[0]
	}

	var merged []*pairingNode[T]
	i := 0
	for i+1 < len(nodes) {
		merged = append(merged, h.merge(nodes[i], nodes[i+1]))
		i += 2
	}
	if i < len(nodes) {
		merged = append(merged, nodes[i])
	}

	var result *pairingNode[T]
	for j := len(merged) - 1; j >= 0; j-- {
		result = h.merge(merged[j], result)
	}
	return result
}
