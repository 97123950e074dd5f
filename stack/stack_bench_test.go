package stack_test

import (
	"testing"

	"github.com/Zubayear/kotoba/stack"
	"github.com/Zubayear/kotoba/trie"
)

// generateNodes approximates the (node, char) frames trie.Root.Remove
// pushes while walking down to a word's terminal node.
func generateNodes(n int) []*trie.Node {
	nodes := make([]*trie.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = trie.NewNode()
	}
	return nodes
}

func BenchmarkPush(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			_, _ = s.Push(v)
		}
	}
}

func BenchmarkPop(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < len(data); j++ {
			_, _ = s.Pop()
		}
	}
}

func BenchmarkPeek(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.Peek()
	}
}

func BenchmarkPushParallel(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = s.Push(data[i%len(data)])
			i++
		}
	})
}

func BenchmarkPopParallel(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = s.Pop()
		}
	})
}

func BenchmarkPeekParallel(b *testing.B) {
	data := generateNodes(10000)
	s := stack.NewStack[*trie.Node]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = s.Peek()
		}
	})
}

func BenchmarkPushLarge(b *testing.B) {
	data := generateNodes(100000)
	s := stack.NewStack[*trie.Node]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			_, _ = s.Push(v)
		}
	}
}
