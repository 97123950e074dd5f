package search

import "math"

// Cost constants. These exact values give a correction like
// "cateogry" -> "category" its specific rank (a single Swap, cost 75)
// relative to a plain substitution (cost 100).
const (
	// BaseCost is the price of an Insert, Delete, or a Replace that is not
	// between visually-similar characters.
	BaseCost = 100
	// SwapCost transposes two adjacent characters.
	SwapCost = 75
	// DuplicateLetterCost collapses "xx" -> "x" or expands "x" -> "xx".
	DuplicateLetterCost = 25
	// VisuallySimilarCost replaces a letter with a visually-similar one.
	VisuallySimilarCost = 1
	// FirstLetterBias is added to a non-visually-similar Replace at i == 0,
	// discouraging first-letter substitutions.
	FirstLetterBias = 25
	// MaxNumChanges caps the initial cost budget, in BaseCost units.
	MaxNumChanges = 3
	// MaxCostScale is the per-character share of the initial cost budget.
	MaxCostScale = 0.515
)

// InitialCostLimit computes BaseCost * min(queryLen * MaxCostScale,
// MaxNumChanges), the starting cost budget for a query of length queryLen.
func InitialCostLimit(queryLen int) int {
	scale := math.Min(float64(queryLen)*MaxCostScale, MaxNumChanges)
	return int(math.Round(BaseCost * scale))
}
