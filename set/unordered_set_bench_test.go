package set

import (
	"testing"
)

func BenchmarkUnorderedSetInsert(b *testing.B) {
	s := NewUnorderedSet()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(rune(i % 0x10FFFF))
	}
}

func BenchmarkUnorderedSetContain(b *testing.B) {
	s := NewUnorderedSet()
	const n = 1000
	for i := 0; i < n; i++ {
		s.Insert(rune(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contain(rune(i % n))
	}
}

func BenchmarkUnorderedSetRemove(b *testing.B) {
	s := NewUnorderedSet()
	for i := 0; i < b.N; i++ {
		s.Insert(rune(i))
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Remove(rune(i))
	}
}

func BenchmarkUnorderedSetItems(b *testing.B) {
	s := NewUnorderedSet()
	const n = 100000
	for i := 0; i < n; i++ {
		s.Insert(rune(i))
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Items()
	}
}
