package priorityqueue

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"testing"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randSeq(n int) string {
	bn, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[bn.Int64()]
	}
	return string(b)
}

func generateWords(n int) []string {
	data := make([]string, n)
	for i := 0; i < n; i++ {
		data[i] = randSeq(10)
	}
	return data
}

// ---------------------------
// Sequential Benchmarks
// ---------------------------

func BenchmarkBinaryHeapAdd(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			bh.Add(v)
		}
		bh.Clear()
	}
}

func BenchmarkBinaryHeapPeek(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	for _, v := range data {
		bh.Add(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bh.Peek()
	}
}

func BenchmarkBinaryHeapPoll(b *testing.B) {
	data := generateWords(100000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bh := NewBinaryHeap[string]()
		for _, v := range data {
			bh.Add(v)
		}
		for !bh.IsEmpty() {
			_, _ = bh.Poll()
		}
	}
}

func BenchmarkBinaryHeapClear(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	for _, v := range data {
		bh.Add(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bh.Clear()
	}
}

// ---------------------------
// Parallel Benchmarks
// ---------------------------

func BenchmarkBinaryHeapAddParallel(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for _, v := range data {
				bh.Add(v)
			}
			bh.Clear()
		}
	})
}

func BenchmarkBinaryHeapPeekParallel(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	for _, v := range data {
		bh.Add(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = bh.Peek()
		}
	})
}

func BenchmarkBinaryHeapPollParallel(b *testing.B) {
	data := generateWords(100000)
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bh := NewBinaryHeap[string]()
			for _, v := range data {
				bh.Add(v)
			}
			for !bh.IsEmpty() {
				_, _ = bh.Poll()
			}
		}
	})
}

func BenchmarkBinaryHeapClearParallel(b *testing.B) {
	data := generateWords(100000)
	bh := NewBinaryHeap[string]()
	for _, v := range data {
		bh.Add(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bh.Clear()
		}
	})
}

// generateCandidates produces n dummy (word, cost) pairs shaped like the
// collector's kept entries, for benchmarking the comparator path collector
// actually exercises.
func generateCandidates(n int) []candidate {
	out := make([]candidate, n)
	for i := 0; i < n; i++ {
		out[i] = candidate{
			word: "cand_" + strconv.Itoa(i),
			cost: i % 100,
		}
	}
	return out
}

// Benchmark adding elements to a heap with a custom comparator.
func BenchmarkBinaryHeapAddWithCustomComparator(b *testing.B) {
	candidates := generateCandidates(1000)

	for i := 0; i < b.N; i++ {
		h := NewBinaryHeapWithComparator(candidateComparator)
		for _, c := range candidates {
			h.Add(c)
		}
	}
}

// Benchmark polling all elements from a heap with a custom comparator.
func BenchmarkBinaryHeapPollWithCustomComparator(b *testing.B) {
	candidates := generateCandidates(1000)

	for i := 0; i < b.N; i++ {
		h := NewBinaryHeapWithComparator(candidateComparator)
		for _, c := range candidates {
			h.Add(c)
		}
		for !h.IsEmpty() {
			_, _ = h.Poll()
		}
	}
}

// BenchmarkBinaryHeapSort benchmarks the Sort() method on a BinaryHeap with
// a custom comparator.
func BenchmarkBinaryHeapSort(b *testing.B) {
	bn, _ := rand.Int(rand.Reader, big.NewInt(10000))

	N := 10000
	candidates := make([]candidate, N)
	for i := 0; i < N; i++ {
		candidates[i] = candidate{
			word: "cand_" + strconv.Itoa(int(bn.Int64())),
			cost: int(bn.Int64()),
		}
	}

	bh := NewBinaryHeapWithComparator(candidateComparator)
	for _, c := range candidates {
		bh.Add(c)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bh.Sort()
	}
}

// BenchmarkBinaryHeapRemoveMatch benchmarks evicting a stale case-folded
// duplicate the way collector.Offer does under IgnoreCase.
func BenchmarkBinaryHeapRemoveMatch(b *testing.B) {
	candidates := generateCandidates(1000)

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := NewBinaryHeapWithComparator(candidateComparator)
		for _, c := range candidates {
			h.Add(c)
		}
		target := candidates[len(candidates)/2].word
		b.StartTimer()

		h.RemoveMatch(func(c candidate) bool { return c.word == target })
	}
}
