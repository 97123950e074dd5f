package stack_test

import (
	"testing"

	"github.com/Zubayear/kotoba/stack"
	"github.com/Zubayear/kotoba/trie"
)

// frame mirrors the (node, char) pair trie.Root.Remove pushes while
// walking a word down to its terminal node, so it can backtrack and
// prune now-dead nodes on the way back up.
type frame struct {
	node *trie.Node
	ch   rune
}

func pushFrames(s *stack.Stack[frame], word string) []frame {
	frames := make([]frame, 0, len(word))
	for _, ch := range word {
		f := frame{node: trie.NewNode(), ch: ch}
		frames = append(frames, f)
		if _, err := s.Push(f); err != nil {
			panic(err)
		}
	}
	return frames
}

func TestStackIsEmpty(t *testing.T) {
	s := stack.NewStack[frame]()
	if !s.IsEmpty() {
		t.Fatalf("expected new stack to be empty")
	}
	pushFrames(s, "cat")
	if s.IsEmpty() {
		t.Errorf("expected non-empty stack after pushing frames")
	}
}

func TestStackIsFull(t *testing.T) {
	s := stack.NewStack[frame]()
	// default capacity is 16; 16 pushes should report full, not trigger growth.
	frames := pushFrames(s, "abcdefghijklmnop")
	if len(frames) != 16 {
		t.Fatalf("test setup expected 16 pushes, got %d", len(frames))
	}
	if !s.IsFull() {
		t.Errorf("expected stack to report full at capacity")
	}
}

func TestStackPeek(t *testing.T) {
	s := stack.NewStack[frame]()
	frames := pushFrames(s, "word")
	got, err := s.Peek()
	if err != nil {
		t.Fatalf("unexpected error from Peek: %v", err)
	}
	want := frames[len(frames)-1]
	if got != want {
		t.Errorf("Peek() = %+v, want %+v", got, want)
	}
	// Peek must not remove the element.
	if s.Size() != len(frames) {
		t.Errorf("Peek changed size: got %d, want %d", s.Size(), len(frames))
	}
}

func TestStackPop(t *testing.T) {
	s := stack.NewStack[frame]()
	frames := pushFrames(s, "word")

	// Remove deletes along the backtrack path in reverse insertion order.
	for i := len(frames) - 1; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error from Pop at i=%d: %v", i, err)
		}
		if got != frames[i] {
			t.Errorf("Pop() = %+v, want %+v", got, frames[i])
		}
	}
	if !s.IsEmpty() {
		t.Errorf("expected stack empty after popping every frame")
	}
	if _, err := s.Pop(); err == nil {
		t.Errorf("expected error popping an empty stack")
	}
}

func TestStackPush(t *testing.T) {
	s := stack.NewStack[frame]()
	f := frame{node: trie.NewNode(), ch: 'x'}
	ok, err := s.Push(f)
	if !ok || err != nil {
		t.Fatalf("Push failed: ok=%v err=%v", ok, err)
	}
	got, err := s.Peek()
	if err != nil || got != f {
		t.Errorf("Peek() = %+v, err=%v, want %+v", got, err, f)
	}
}

func TestStackSize(t *testing.T) {
	s := stack.NewStack[frame]()
	frames := pushFrames(s, "dict")
	if got := s.Size(); got != len(frames) {
		t.Errorf("Size() = %d, want %d", got, len(frames))
	}
}

func TestStackGrowsPastInitialCapacity(t *testing.T) {
	s := stack.NewStack[frame]()
	// 17 pushes: one past the default capacity of 16, forcing increaseSize.
	frames := pushFrames(s, "abcdefghijklmnopq")
	if s.Size() != 17 {
		t.Fatalf("expected size 17, got %d", s.Size())
	}
	for i := len(frames) - 1; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil || got != frames[i] {
			t.Fatalf("Pop() at i=%d = %+v, err=%v, want %+v", i, got, err, frames[i])
		}
	}
}

func TestStackValueAt(t *testing.T) {
	s := stack.NewStack[frame]()
	frames := pushFrames(s, "abc")

	// pos 0 is the top (last pushed), pos len-1 is the bottom.
	for pos := 0; pos < len(frames); pos++ {
		got, err := s.ValueAt(pos)
		if err != nil {
			t.Fatalf("ValueAt(%d) unexpected error: %v", pos, err)
		}
		want := frames[len(frames)-1-pos]
		if got != want {
			t.Errorf("ValueAt(%d) = %+v, want %+v", pos, got, want)
		}
	}

	if _, err := s.ValueAt(-1); err == nil {
		t.Errorf("expected error for negative position")
	}
	if _, err := s.ValueAt(len(frames)); err == nil {
		t.Errorf("expected error for out-of-range position")
	}
}

func TestStackClear(t *testing.T) {
	s := stack.NewStack[frame]()
	pushFrames(s, "clearme")
	s.Clear()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Errorf("expected empty stack after Clear")
	}
	if _, err := s.ValueAt(0); err == nil {
		t.Errorf("expected error from ValueAt after Clear")
	}
}
