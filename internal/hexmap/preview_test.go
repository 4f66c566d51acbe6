package hexmap

import "testing"

func TestPreview(t *testing.T) {
	m := flatMap(4, 2)
	m.Tiles[m.Index(0, 0)].GroundHeight = 2
	m.Tiles[m.Index(0, 0)].WallHeight = 2
	m.Tiles[m.Index(1, 0)].Tilled = true
	m.Tiles[m.Index(2, 0)].Tilled = true
	m.Tiles[m.Index(2, 0)].Grown = true
	m.Tiles[m.Index(3, 1)].WallHeight = 3

	tests := []struct {
		name string
		cols int
		want string
	}{
		{"full width", 0, "2░♣0\n000#\n"},
		{"clipped", 2, "2░\n00\n"},
		{"too wide", 9, "2░♣0\n000#\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Preview(tt.cols); got != tt.want {
				t.Errorf("Preview(%d) = %q, expected %q", tt.cols, got, tt.want)
			}
		})
	}
}
