package hwy

import "testing"

func TestLaneCountOf(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"x1", LaneCountOf[X1](), 1},
		{"x2", LaneCountOf[X2](), 2},
		{"x4", LaneCountOf[X4](), 4},
		{"x8", LaneCountOf[X8](), 8},
		{"x16", LaneCountOf[X16](), 16},
		{"x32", LaneCountOf[X32](), 32},
		{"x64", LaneCountOf[X64](), 64},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LaneCountOf[%s]() = %d, want %d", tt.name, tt.got, tt.want)
		}
		if !SupportedLaneCount(tt.got) {
			t.Errorf("SupportedLaneCount(%d) = false for tag %s", tt.got, tt.name)
		}
	}
	if got := laneName[X16](); got != "x16" {
		t.Errorf("X16 name = %q, want x16", got)
	}
}

func TestSupportedLaneCount(t *testing.T) {
	for n := -1; n <= 130; n++ {
		want := n == 1 || n == 2 || n == 4 || n == 8 || n == 16 || n == 32 || n == 64
		if got := SupportedLaneCount(n); got != want {
			t.Errorf("SupportedLaneCount(%d) = %v, want %v", n, got, want)
		}
	}
}
