package treemap_test

import (
	"strconv"
	"testing"

	"github.com/Zubayear/kotoba/location"
)

// These tests drive treemap.TreeMap only through location.Cache, its one
// real caller: location.Cache[int, ...] keys its outer index by word
// position, which is exactly the ordered-int-key shape TreeMap exists
// for. They live in an external package so they can import location
// (which imports treemap) without creating an import cycle.

func TestCacheOuterIndexOrdersByWordPosition(t *testing.T) {
	c := location.NewCache[int, string, int]()

	// entries arrive out of word-position order, the way a best-first
	// search visits them
	c.GetOrCreate(5, "node-at-5")
	c.GetOrCreate(1, "node-at-1")
	c.GetOrCreate(3, "node-at-3")

	for _, i := range []int{1, 3, 5} {
		if _, ok := c.Get(i, "node-at-"+strconv.Itoa(i)); !ok {
			t.Errorf("expected an entry at word position %d", i)
		}
	}
	if _, ok := c.Get(2, "node-at-2"); ok {
		t.Errorf("expected no entry at an untouched word position")
	}
}

func TestCacheDistinguishesNodesAtSharedWordPosition(t *testing.T) {
	c := location.NewCache[int, string, int]()

	c.GetOrCreate(4, "alpha").AddSuffix("x", 2)
	c.GetOrCreate(4, "beta").AddSuffix("y", 3)

	alpha, ok := c.Get(4, "alpha")
	if !ok || len(alpha.Suffixes) != 1 || alpha.Suffixes[0].Suffix != "x" {
		t.Fatalf("Get(4, alpha) = %+v, %v; want single suffix x", alpha, ok)
	}
	beta, ok := c.Get(4, "beta")
	if !ok || len(beta.Suffixes) != 1 || beta.Suffixes[0].Suffix != "y" {
		t.Fatalf("Get(4, beta) = %+v, %v; want single suffix y", beta, ok)
	}
}
