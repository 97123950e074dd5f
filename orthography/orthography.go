/*
Package orthography maps characters to a bitmask of the other characters
they are visually similar to, so the search engine can charge a cheap
"visual typo" cost instead of a full replacement cost when a substitution
lands on a look-alike letter.

Two characters are visually similar iff their masks share a set bit. The
table is small, fixed, and process-wide: there is no per-query or
per-dictionary state here, so unlike the other packages in this module
there is nothing to make thread-safe — MaskOf only ever reads a package
level array literal.

Groups (by visual confusability, the classic OCR/typo clusters):
  - o, 0, O
  - l, 1, I, i
  - rn, m (not modeled per-character; rn/m is a two-character confusion,
    out of scope for a single-rune mask)
  - c, e
  - v, u
  - a, e (loosely, in some fonts)
  - s, 5
  - b, 6
  - g, 9
  - z, 2
*/
package orthography

// Each group gets its own bit. A character can belong to more than one
// group (e.g. a letter close to two visually distinct clusters), in which
// case its mask is the OR of every group it belongs to.
const (
	groupO uint64 = 1 << iota
	groupL
	groupC
	groupV
	groupA
	groupS
	groupB
	groupG
	groupZ
)

var maskTable = map[rune]uint64{
	'o': groupO, 'O': groupO, '0': groupO,
	'l': groupL, 'L': groupL, '1': groupL, 'i': groupL, 'I': groupL,
	'c': groupC, 'C': groupC, 'e': groupC | groupA,
	'v': groupV, 'V': groupV, 'u': groupV, 'U': groupV,
	'a': groupA, 'A': groupA,
	's': groupS, 'S': groupS, '5': groupS,
	'b': groupB, 'B': groupB, '6': groupB,
	'g': groupG, 'G': groupG, '9': groupG,
	'z': groupZ, 'Z': groupZ, '2': groupZ,
}

// MaskOf returns r's visual-similarity bitmask, or 0 if r belongs to no
// known confusable group.
func MaskOf(r rune) uint64 {
	return maskTable[r]
}

// VisuallySimilar reports whether a and b are visually similar: their
// masks are both non-zero and share at least one bit.
func VisuallySimilar(a, b rune) bool {
	ma, mb := MaskOf(a), MaskOf(b)
	return ma != 0 && mb != 0 && ma&mb != 0
}
