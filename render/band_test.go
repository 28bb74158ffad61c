package render

import "testing"

func TestPartitionCoversWidth(t *testing.T) {
	bands := Partition(100, 3)
	want := []Band{{0, 33}, {33, 66}, {66, 100}}
	if len(bands) != len(want) {
		t.Fatalf("Expected %d bands, got %d", len(want), len(bands))
	}
	for i := range want {
		if bands[i] != want[i] {
			t.Errorf("Band %d: expected %v, got %v", i, want[i], bands[i])
		}
	}

	owners := make([]int, 100)
	for _, b := range bands {
		for x := b.Start; x < b.End; x++ {
			owners[x]++
		}
	}
	for x, n := range owners {
		if n != 1 {
			t.Errorf("Expected column %d owned by exactly one band, got %d", x, n)
		}
	}
}

func TestPartitionEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		width, n  int
		wantBands int
	}{
		{"zero width", 0, 4, 0},
		{"negative width", -3, 4, 0},
		{"more workers than columns", 3, 6, 3},
		{"zero workers", 10, 0, 1},
		{"exact division", 120, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := Partition(tt.width, tt.n)
			if len(bands) != tt.wantBands {
				t.Fatalf("Expected %d bands, got %d", tt.wantBands, len(bands))
			}
			prev := 0
			for _, b := range bands {
				if b.Start != prev || b.Width() <= 0 {
					t.Errorf("Expected contiguous non-empty band at %d, got %v", prev, b)
				}
				prev = b.End
			}
			if len(bands) > 0 && prev != tt.width {
				t.Errorf("Expected union to end at %d, got %d", tt.width, prev)
			}
		})
	}
}
