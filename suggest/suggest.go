/*
Package suggest is the library's public entry point: it wires a
search.Generator and a collector.Collector together across one or more
trie roots and returns a ranked, bounded list of corrections for a
misspelled word.

Three entry points are exposed: Suggest, the full multi-root
orchestration; GenSuggestions, a single-root generator for callers that
want to drive the A* engine themselves one emission at a time;
and SuggestionCollector, the factory Suggest itself uses to build its
bounded output buffer.
*/
package suggest

import (
	"errors"
	"fmt"

	"github.com/Zubayear/kotoba/collector"
	"github.com/Zubayear/kotoba/search"
	"github.com/Zubayear/kotoba/trie"
)

// Suggestion is one ranked correction, tagged for both JSON and MessagePack
// output (the CLI writes either, via vmihailenco/msgpack).
type Suggestion struct {
	Word string `json:"word" msgpack:"word"`
	Cost int    `json:"cost" msgpack:"cost"`
}

// CompoundMethod selects a compounding strategy for multi-word corrections.
// The underlying engine does not exercise compound search itself (that is
// a separate search path this library does not implement); CompoundMethod
// is carried through GenSuggestions as a pass-through hook so callers that
// do implement it have somewhere to plug it in.
type CompoundMethod int

const (
	// CompoundNone disables compounding: the default, and the only value
	// the generator actually acts on.
	CompoundNone CompoundMethod = iota
	// CompoundJoinWords requests that a correction be considered across a
	// joined pair of dictionary words. Accepted but not yet implemented.
	CompoundJoinWords
	// CompoundSeparateWords requests that a correction be considered across
	// a space-separated pair of dictionary words. Accepted but not yet
	// implemented.
	CompoundSeparateWords
)

// Options configures one Suggest call. The zero value is usable: it
// returns up to 10 ranked suggestions, case-sensitive, untied, unfiltered.
type Options struct {
	NumSuggestions int
	IgnoreCase     bool
	IncludeTies    bool
	Filter         func(word string, cost int) bool
}

const defaultNumSuggestions = 10

func (o Options) withDefaults() Options {
	if o.NumSuggestions == 0 {
		o.NumSuggestions = defaultNumSuggestions
	}
	return o
}

// SuggestionCollector builds the bounded output buffer a Suggest call
// drives: word is accepted for parity with the lower-level entry points
// (the collector itself ranks on cost alone and never inspects the query
// that produced an emission) and options.withDefaults applies before
// construction.
func SuggestionCollector(word string, opts Options) *collector.Collector {
	_ = word
	opts = opts.withDefaults()
	return collector.New(collector.Options{
		NumSuggestions: opts.NumSuggestions,
		IncludeTies:    opts.IncludeTies,
		IgnoreCase:     opts.IgnoreCase,
		Filter:         opts.Filter,
	})
}

// GenSuggestions returns a Generator seeded for one root and one query,
// for callers that want to drive the A* engine directly: repeatedly call
// its Next(changeLimit) rather than going through a collector. Each call
// gets its own emission ledger, so duplicate suppression across multiple
// roots (the job Suggest's shared ledger does) is the caller's
// responsibility when driving more than one root this way.
//
// compoundMethod is accepted and threaded nowhere yet; see CompoundMethod.
func GenSuggestions(root *trie.Root, word string, compoundMethod CompoundMethod) (*search.Generator, error) {
	if root == nil {
		return nil, errors.New("suggest: GenSuggestions requires a non-nil root")
	}
	_ = compoundMethod
	costLimit := search.InitialCostLimit(len([]rune(word)))
	emitted := make(map[string]int)
	return search.New(root, word, false, costLimit, emitted), nil
}

// Suggest returns ranked corrections for word, searching every non-nil
// root in order and sharing one emission ledger and one collector across
// all of them so duplicates found via a second root are suppressed and
// the ranking reflects the cheapest path from any root.
//
// It rejects invalid arguments at the entry point rather than letting
// them silently degrade: opts.NumSuggestions must be 0 (meaning "use the
// default") or positive, and at least one non-nil root must be supplied.
func Suggest(roots []*trie.Root, word string, opts Options) ([]Suggestion, error) {
	if opts.NumSuggestions < 0 {
		return nil, fmt.Errorf("suggest: NumSuggestions must be 0 (default) or >= 1, got %d", opts.NumSuggestions)
	}

	hasRoot := false
	for _, root := range roots {
		if root != nil {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		return nil, errors.New("suggest: at least one non-nil root is required")
	}

	opts = opts.withDefaults()
	c := SuggestionCollector(word, opts)

	emitted := make(map[string]int)
	costLimit := search.InitialCostLimit(len([]rune(word)))

	for _, root := range roots {
		if root == nil {
			continue
		}
		g := search.New(root, word, opts.IgnoreCase, costLimit, emitted)
		changeLimit := -1
		for {
			e, ok := g.Next(changeLimit)
			if !ok {
				break
			}
			changeLimit = c.Offer(e)
		}
		costLimit = g.CostLimit()
	}

	results := c.Results()
	out := make([]Suggestion, len(results))
	for i, r := range results {
		out[i] = Suggestion{Word: r.Word, Cost: r.Cost}
	}
	return out, nil
}
