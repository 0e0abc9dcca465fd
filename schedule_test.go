package lz78

import "testing"

func TestWidthSchedule(t *testing.T) {
	// Widths for phrases 1, 2, 3, ...
	want := []int{1, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 5}
	s := newWidthSchedule()
	for i, w := range want {
		if s.width != w {
			t.Fatalf("phrase %d: width %d, want %d", i+1, s.width, w)
		}
		// Every back-reference up to the phrase index must fit.
		if i+1 >= 1<<s.width {
			t.Fatalf("phrase %d: width %d cannot address it", i+1, s.width)
		}
		s.advance()
	}
}
