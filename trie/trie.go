/*
Package trie provides the dictionary prefix tree consumed by the
spell-suggestion search engine.

A Root is an ordinary Node plus three reserved single-character sentinels:
a case-folding marker, a compound-word marker, and a forbidden-word marker.
Each sentinel, when populated, gates a child subtree that is itself a
complete trie: the case-folding subtree holds a lower-cased/accent-stripped
mirror of the dictionary, the compound subtree holds compound-word join
points, and the forbidden subtree holds entries that must never be
suggested. The search engine never pattern-matches on which rune a sentinel
actually is; it only asks the Root for its sentinel-gated children and for
the no-follow set of characters a suggestion must not end in.

Thread-safety: a Root's RWMutex protects mutation (Insert/Remove); the
search engine only reads from a Root, and does so for the full duration of a
search, so callers must not mutate a Root that a search is still
consuming.

Time Complexity:
  - Insert / Search / StartsWith / Remove: O(n), n = length of the word

Space Complexity:
  - O(m * n), m = number of words, n = average word length
*/
package trie

import (
	"sync"

	"github.com/Zubayear/kotoba/set"
	"github.com/Zubayear/kotoba/stack"
)

// Node is a single node of the trie: a map of rune to child Node, plus a
// flag marking whether a dictionary entry ends here.
type Node struct {
	children map[rune]*Node
	terminal bool
}

// NewNode returns an empty, non-terminal trie node.
func NewNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Child returns the child reached by r, if any.
func (n *Node) Child(r rune) (*Node, bool) {
	c, ok := n.children[r]
	return c, ok
}

// IsTerminal reports whether a dictionary entry ends at n.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// Children returns the node's children. Callers must not mutate the
// returned map; it is shared with the node.
func (n *Node) Children() map[rune]*Node {
	return n.children
}

// Root is the root of a dictionary trie plus its three reserved sentinel
// characters. A zero-value sentinel rune (0) means that sentinel is unset
// and its subtree does not exist.
type Root struct {
	*Node
	CompoundCharacter         rune
	ForbiddenWordPrefix       rune
	StripCaseAndAccentsPrefix rune
	size                      int
	mutex                     sync.RWMutex
}

// NewRoot returns an empty Root. Sentinel characters default to unset (0);
// set them with SetCompoundCharacter, SetForbiddenWordPrefix and
// SetStripCaseAndAccentsPrefix before inserting through those subtrees.
func NewRoot() *Root {
	return &Root{Node: NewNode()}
}

// SetCompoundCharacter designates r as the compound-word marker and
// ensures its subtree exists.
func (t *Root) SetCompoundCharacter(r rune) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.CompoundCharacter = r
	t.ensureSentinelChild(r)
}

// SetForbiddenWordPrefix designates r as the forbidden-word marker and
// ensures its subtree exists.
func (t *Root) SetForbiddenWordPrefix(r rune) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.ForbiddenWordPrefix = r
	t.ensureSentinelChild(r)
}

// SetStripCaseAndAccentsPrefix designates r as the case-folding marker and
// ensures its subtree exists.
func (t *Root) SetStripCaseAndAccentsPrefix(r rune) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.StripCaseAndAccentsPrefix = r
	t.ensureSentinelChild(r)
}

func (t *Root) ensureSentinelChild(r rune) {
	if r == 0 {
		return
	}
	if _, ok := t.children[r]; !ok {
		t.children[r] = NewNode()
	}
}

// Insert adds a word to the trie (case-sensitive, no normalization).
//
// Time Complexity: O(N), N = length of the word.
func (t *Root) Insert(word string) {
	if len(word) == 0 {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.insertFrom(t.Node, word)
}

// InsertFolded inserts word, unchanged, into the StripCaseAndAccentsPrefix
// subtree, creating the subtree if needed. It does no folding itself: the
// caller passes the already case/accent-folded spelling.
func (t *Root) InsertFolded(word string) {
	if len(word) == 0 {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.ensureSentinelChild(t.StripCaseAndAccentsPrefix)
	t.insertFrom(t.children[t.StripCaseAndAccentsPrefix], word)
}

// InsertForbidden inserts word into the ForbiddenWordPrefix subtree.
func (t *Root) InsertForbidden(word string) {
	if len(word) == 0 {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.ensureSentinelChild(t.ForbiddenWordPrefix)
	t.insertFrom(t.children[t.ForbiddenWordPrefix], word)
}

func (t *Root) insertFrom(start *Node, word string) {
	current := start
	isNewWord := false
	for _, ch := range word {
		if current.children[ch] == nil {
			current.children[ch] = NewNode()
		}
		current = current.children[ch]
	}
	if !current.terminal {
		current.terminal = true
		isNewWord = true
	}
	if isNewWord && start == t.Node {
		t.size++
	}
}

// Size returns the number of complete words inserted at the root level
// (sentinel subtrees are not counted).
func (t *Root) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.size
}

// IsEmpty reports whether the root-level dictionary is empty.
func (t *Root) IsEmpty() bool {
	return t.Size() == 0
}

// Search reports whether word is a complete dictionary entry.
func (t *Root) Search(word string) bool {
	if len(word) == 0 {
		return false
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	n := t.findNodeForPrefix(t.Node, word)
	return n != nil && n.terminal
}

// StartsWith reports whether any entry begins with prefix.
func (t *Root) StartsWith(prefix string) bool {
	if len(prefix) == 0 {
		return false
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.findNodeForPrefix(t.Node, prefix) != nil
}

func (t *Root) findNodeForPrefix(start *Node, prefix string) *Node {
	current := start
	for _, ch := range prefix {
		if current.children[ch] == nil {
			return nil
		}
		current = current.children[ch]
	}
	return current
}

func (t *Root) dfs(node *Node, prefix string) []string {
	var result []string
	var walk func(node *Node, prefix string)
	walk = func(node *Node, prefix string) {
		if node.terminal {
			result = append(result, prefix)
		}
		for ch, child := range node.children {
			walk(child, prefix+string(ch))
		}
	}
	walk(node, prefix)
	return result
}

// GetWordsWithPrefix returns every dictionary entry starting with prefix.
func (t *Root) GetWordsWithPrefix(prefix string) []string {
	if len(prefix) == 0 {
		return nil
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	current := t.findNodeForPrefix(t.Node, prefix)
	if current == nil {
		return nil
	}
	return t.dfs(current, prefix)
}

// Remove deletes word from the root-level dictionary, pruning now-dead
// nodes on the way back up. Returns false if word was not present.
//
// Algorithm Steps:
//   - Traverse the word, pushing (node, char) pairs for backtracking.
//   - If the word does not exist or is not terminal, return false.
//   - Mark the last node non-terminal.
//   - Backtrack, deleting nodes that are leaves with no terminal marker.
func (t *Root) Remove(word string) bool {
	if len(word) == 0 {
		return false
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	current := t.Node
	type pair struct {
		node *Node
		ch   rune
	}
	s := stack.NewStack[pair]()
	for _, ch := range word {
		next := current.children[ch]
		if next == nil {
			return false
		}
		_, _ = s.Push(pair{current, ch})
		current = next
	}
	if !current.terminal {
		return false
	}
	current.terminal = false

	for !s.IsEmpty() {
		val, _ := s.Pop()
		parent := val.node
		ch := val.ch
		child := parent.children[ch]
		if len(child.children) == 0 && !child.terminal {
			delete(parent.children, ch)
		} else {
			break
		}
	}
	t.size--
	return true
}

// NoFollowSet returns the set of reserved sentinel characters populated on
// this root. A suggestion whose last character is in this set must never
// be emitted (it would spell a path through a sentinel subtree rather than
// a real dictionary word).
func (t *Root) NoFollowSet() *set.UnorderedSet {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	s := set.NewUnorderedSet()
	for _, r := range [3]rune{t.CompoundCharacter, t.ForbiddenWordPrefix, t.StripCaseAndAccentsPrefix} {
		if r != 0 {
			s.Insert(r)
		}
	}
	return s
}

// InitialNode is one of the search engine's starting points: a synthetic
// node to explore from word index 0, and the path-cost it should start at.
type InitialNode struct {
	Node      *Node
	StartCost int
}

// InitialNodes computes the search engine's starting frontier: a synthetic
// node exposing the root's real-alphabet children (the sentinel edges
// hidden), at StartCost 0; plus, if ignoreCase is requested and a
// case-folding subtree exists, that subtree's root at StartCost 1 so
// exact-case matches win ties over folded ones.
func (t *Root) InitialNodes(ignoreCase bool) []InitialNode {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	noFollow := map[rune]bool{
		t.CompoundCharacter:         t.CompoundCharacter != 0,
		t.ForbiddenWordPrefix:       t.ForbiddenWordPrefix != 0,
		t.StripCaseAndAccentsPrefix: t.StripCaseAndAccentsPrefix != 0,
	}
	synthetic := NewNode()
	synthetic.terminal = t.terminal
	for ch, child := range t.children {
		if noFollow[ch] {
			continue
		}
		synthetic.children[ch] = child
	}

	nodes := []InitialNode{{Node: synthetic, StartCost: 0}}
	if ignoreCase && t.StripCaseAndAccentsPrefix != 0 {
		if folded, ok := t.children[t.StripCaseAndAccentsPrefix]; ok {
			nodes = append(nodes, InitialNode{Node: folded, StartCost: 1})
		}
	}
	return nodes
}
