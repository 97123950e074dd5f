package orthography

import "testing"

func TestVisuallySimilarPairs(t *testing.T) {
	tests := []struct {
		a, b rune
		want bool
	}{
		{'o', '0', true},
		{'O', 'o', true},
		{'l', '1', true},
		{'i', 'I', true},
		{'s', '5', true},
		{'g', '9', true},
		{'c', 'e', true},
		{'q', 'x', false},
		{'e', 'v', false},
	}
	for _, tt := range tests {
		if got := VisuallySimilar(tt.a, tt.b); got != tt.want {
			t.Errorf("VisuallySimilar(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMaskOfUnknownCharacterIsZero(t *testing.T) {
	if MaskOf('$') != 0 {
		t.Errorf("MaskOf('$') = %d; want 0", MaskOf('$'))
	}
}

func TestVisuallySimilarIsSymmetric(t *testing.T) {
	for a := rune('a'); a <= 'z'; a++ {
		for b := rune('a'); b <= 'z'; b++ {
			if VisuallySimilar(a, b) != VisuallySimilar(b, a) {
				t.Fatalf("VisuallySimilar(%q,%q) not symmetric", a, b)
			}
		}
	}
}
