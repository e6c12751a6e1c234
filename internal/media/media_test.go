package media

import "testing"

func TestSegmentStarts(t *testing.T) {
	cases := []struct {
		name       string
		duration   float64
		segmentSec int
		want       []float64
	}{
		{"empty track", 0, 5, nil},
		{"shorter than one segment", 3.2, 5, []float64{0}},
		{"exact multiple gets no empty tail", 10, 5, []float64{0, 5}},
		{"partial tail kept", 12.5, 5, []float64{0, 5, 10}},
		{"one second chunks", 3, 1, []float64{0, 1, 2}},
		{"bad segment length", 10, 0, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SegmentStarts(c.duration, c.segmentSec)
			if len(got) != len(c.want) {
				t.Fatalf("got %d starts %v, want %d %v", len(got), got, len(c.want), c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("start[%d] = %v, want %v", i, got[i], c.want[i])
				}
			}
		})
	}
}
