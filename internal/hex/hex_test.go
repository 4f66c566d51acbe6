package hex

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

var testLayout = Layout{FloorWidth: 36, FloorVertStep: 28, HalfTile: 18}

func TestLayoutSizes(t *testing.T) {
	if got, want := testLayout.SizeX(), 36/math.Sqrt(3); math.Abs(got-want) > 1e-12 {
		t.Errorf("SizeX() = %v, expected %v", got, want)
	}
	if got, want := testLayout.SizeY(), 28/1.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("SizeY() = %v, expected %v", got, want)
	}
}

func TestPixelToHexRawKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		pixel  core.Vec2
		mapPos core.Vec2
		height float64
		q, r   float64
	}{
		{"origin centre", core.V2(18, 18), core.V2(0, 0), 0, 0, 0},
		{"one column right", core.V2(54, 18), core.V2(0, 0), 0, 1, 0},
		{"one row down", core.V2(36, 46), core.V2(0, 0), 0, 0, 1},
		{"scrolled map", core.V2(18, 98), core.V2(0, 80), 0, 0, 0},
		{"height offset looks one row lower", core.V2(36, 18), core.V2(0, 0), 28, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := PixelToHexRaw(testLayout, tt.pixel, tt.mapPos, tt.height)
			if math.Abs(q-tt.q) > 1e-9 || math.Abs(r-tt.r) > 1e-9 {
				t.Errorf("PixelToHexRaw() = (%v, %v), expected (%v, %v)", q, r, tt.q, tt.r)
			}
		})
	}
}

func TestAxialToPixel(t *testing.T) {
	x, y := AxialToPixel(testLayout, 2, 3, core.V2(-10, 80))
	// 36q + 18r + half tile + map x, 28r + half tile + map y
	if math.Abs(x-(72+54+18-10)) > 1e-9 || math.Abs(y-(84+18+80)) > 1e-9 {
		t.Errorf("AxialToPixel(2, 3) = (%v, %v)", x, y)
	}
}

func TestRoundTrip(t *testing.T) {
	positions := []core.Vec2{core.V2(0, 0), core.V2(0, 80), core.V2(-1234, 80)}

	for _, pos := range positions {
		for q := -20; q <= 20; q++ {
			for r := -20; r <= 20; r++ {
				x, y := AxialToPixel(testLayout, q, r, pos)
				fq, fr := PixelToHexRaw(testLayout, core.V2(x, y), pos, 0)
				gq, gr, gs := CubeRound(fq, fr, -fq-fr)
				if gq != q || gr != r || gs != -q-r {
					t.Fatalf("round trip (%d, %d) at %v = (%d, %d, %d)", q, r, pos, gq, gr, gs)
				}
			}
		}
	}
}

func TestCubeRoundSumsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		q := (rng.Float64() - 0.5) * 200
		r := (rng.Float64() - 0.5) * 200
		s := -q - r
		a, b, c := CubeRound(q, r, s)
		if a+b+c != 0 {
			t.Fatalf("CubeRound(%v, %v, %v) = (%d, %d, %d), sum %d", q, r, s, a, b, c, a+b+c)
		}
	}
}

func TestCubeRoundTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		q, r, s float64
		want    [3]int
	}{
		{"q largest error is corrected", 0.6, -0.3, -0.3, [3]int{0, 0, 0}},
		{"q ties r, r is corrected", 0.5, 0.5, -1, [3]int{1, 0, -1}},
		{"q ties s, s is corrected", 0.5, -1, 0.5, [3]int{1, -1, 0}},
		{"exact hex stays", 3, -5, 2, [3]int{3, -5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := CubeRound(tt.q, tt.r, tt.s)
			if got := [3]int{a, b, c}; got != tt.want {
				t.Errorf("CubeRound(%v, %v, %v) = %v, expected %v", tt.q, tt.r, tt.s, got, tt.want)
			}
		})
	}
}

func TestOffsetConversion(t *testing.T) {
	tests := []struct {
		q, r     int
		col, row int
	}{
		{0, 0, 0, 0},
		{-1, 3, 0, 3},
		{2, 2, 3, 2},
		{1, -1, 0, -1},
	}

	for _, tt := range tests {
		col, row := CubeToOffset(tt.q, tt.r)
		if col != tt.col || row != tt.row {
			t.Errorf("CubeToOffset(%d, %d) = (%d, %d), expected (%d, %d)", tt.q, tt.r, col, row, tt.col, tt.row)
		}
	}

	for col := -10; col <= 10; col++ {
		for row := -10; row <= 10; row++ {
			q, r, s := OffsetToCube(col, row)
			if q+r+s != 0 {
				t.Fatalf("OffsetToCube(%d, %d) does not sum to zero", col, row)
			}
			c2, r2 := CubeToOffset(q, r)
			if c2 != col || r2 != row {
				t.Fatalf("offset round trip (%d, %d) = (%d, %d)", col, row, c2, r2)
			}
		}
	}
}

func TestNeighborhood(t *testing.T) {
	if Neighborhood[0] != (Axial{}) {
		t.Errorf("first neighbour should be the centre, got %v", Neighborhood[0])
	}
	seen := make(map[Axial]bool)
	for _, n := range Neighborhood[1:] {
		if seen[n] {
			t.Errorf("duplicate neighbour %v", n)
		}
		seen[n] = true
		// Every neighbour is one step away in cube distance.
		s := -n.Q - n.R
		d := (abs(n.Q) + abs(n.R) + abs(s)) / 2
		if d != 1 {
			t.Errorf("neighbour %v has distance %d", n, d)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
