package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

func flatMap(w, h int) *hexmap.Map {
	tiles := make([]hexmap.Tile, w*h)
	return &hexmap.Map{Tiles: tiles, Width: w, Height: h, Geom: hexmap.DefaultGeometry()}
}

func TestCountdownPeriod(t *testing.T) {
	c := NewCountdown(70)
	fired := []int{}
	for tick := 1; tick <= 150; tick++ {
		if c.Step() {
			fired = append(fired, tick)
		}
	}
	want := []int{71, 142}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("firing %d on tick %d, want %d", i, fired[i], want[i])
		}
	}
}

func TestCountdownZeroFiresEveryTick(t *testing.T) {
	c := NewCountdown(0)
	for i := 0; i < 5; i++ {
		if !c.Step() {
			t.Fatalf("tick %d did not fire", i+1)
		}
	}
}

func TestScroller(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		interval int
		ticks    int
		wantX    float64
	}{
		{"every tick", 4, 0, 3, -12},
		{"fractional rate", 0.5, 0, 3, -1},
		{"fractional rate even", 0.5, 0, 4, -2},
		{"idle ticks", 4, 1, 4, -8},
		{"no ticks", 4, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := flatMap(2, 2)
			s := NewScroller(tt.rate, tt.interval)
			for i := 0; i < tt.ticks; i++ {
				s.Step(m)
			}
			if m.Position.X != tt.wantX {
				t.Errorf("Position.X = %v, want %v", m.Position.X, tt.wantX)
			}
			if m.Position.Y != 0 {
				t.Errorf("Position.Y = %v, want 0", m.Position.Y)
			}
		})
	}
}

func TestPlayerStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Player

	tests := []struct {
		name    string
		actions []core.Action
		want    core.Vec2
	}{
		{"idle", nil, core.V2(0, 0)},
		{"climb", []core.Action{core.ActionUp}, core.V2(-3, -10)},
		{"dive", []core.Action{core.ActionDown}, core.V2(2, 10)},
		{"brake", []core.Action{core.ActionLeft}, core.V2(-5, 0)},
		{"drift", []core.Action{core.ActionRight}, core.V2(1, 0)},
		{"climb wins over brake", []core.Action{core.ActionUp, core.ActionLeft}, core.V2(-3, -10)},
		{"dive wins over drift", []core.Action{core.ActionDown, core.ActionRight}, core.V2(2, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			if got := PlayerStep(in, cfg); got != tt.want {
				t.Errorf("PlayerStep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampPlayer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		in, want core.Vec2
	}{
		{core.V2(200, 360), core.V2(200, 360)},
		{core.V2(0, 0), core.V2(60, 54)},
		{core.V2(5000, 5000), core.V2(1220, 666)},
		{core.V2(-10, 700), core.V2(60, 666)},
	}

	for _, tt := range tests {
		if got := ClampPlayer(tt.in, cfg.Player, cfg.Screen); got != tt.want {
			t.Errorf("ClampPlayer(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlaneVelocity(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	down := PlaneVelocity(ecs.DirDown, cfg.Planes, cfg.Map.ScrollRate)
	if down != core.V2(-8, 4) {
		t.Errorf("down velocity = %v, want (-8, 4)", down)
	}
	up := PlaneVelocity(ecs.DirUp, cfg.Planes, cfg.Map.ScrollRate)
	if up != core.V2(-8, -4) {
		t.Errorf("up velocity = %v, want (-8, -4)", up)
	}
}

func TestNextAltitude(t *testing.T) {
	tests := []struct {
		name       string
		height     float64
		hit        bool
		wantHeight float64
		wantPhase  Phase
	}{
		{"sinks", 5, false, 4.99, PhaseAlive},
		{"plane lifts", 0.5, true, 5, PhaseAlive},
		{"plane lifts at the last moment", 0.01, true, 5, PhaseAlive},
		{"lands", 0.01, false, 0, PhaseDead},
		{"already below ground", -1, false, -1.01, PhaseDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, phase := NextAltitude(tt.height, 0.01, 5, tt.hit)
			if math.Abs(h-tt.wantHeight) > 1e-9 {
				t.Errorf("height = %v, want %v", h, tt.wantHeight)
			}
			if phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", phase, tt.wantPhase)
			}
		})
	}
}

func TestGrowAtPaysOnce(t *testing.T) {
	m := flatMap(5, 5)
	for _, xy := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {4, 4}} {
		tile, _ := m.Tile(xy[0], xy[1])
		tile.Tilled = true
	}

	// Centre of hex (2, 2).
	px, py := m.AxialToPixel(2, 2)
	canvas := core.V2(px, py)

	if got := GrowAt(m, canvas, 10); got != 30 {
		t.Errorf("first pass earned %d, want 30", got)
	}
	if got := GrowAt(m, canvas, 10); got != 0 {
		t.Errorf("second pass earned %d, want 0", got)
	}
	if got := m.GrownCount(); got != 3 {
		t.Errorf("GrownCount() = %d, want 3", got)
	}
	far, _ := m.Tile(4, 4)
	if far.Grown {
		t.Error("tile outside the neighbourhood grew")
	}
}

func TestGrowAtOffMap(t *testing.T) {
	m := flatMap(3, 3)
	if got := GrowAt(m, core.V2(-500, -500), 10); got != 0 {
		t.Errorf("GrowAt off the map earned %d", got)
	}
}

func TestEditAt(t *testing.T) {
	m := flatMap(5, 5)
	px, py := m.AxialToPixel(2, 2)

	if EditAt(m, core.Pointer{X: px, Y: py}) {
		t.Error("pointer without buttons edited the map")
	}
	if EditAt(m, core.Pointer{X: -500, Y: -500, Left: true}) {
		t.Error("pointer off the map edited the map")
	}

	if !EditAt(m, core.Pointer{X: px, Y: py, Right: true}) {
		t.Fatal("right click on (2, 2) was not applied")
	}
	tile, _ := m.Tile(2, 2)
	if tile.WallHeight != 1 || tile.GroundHeight != 0 {
		t.Errorf("after raise tile = %+v, want wall 1 ground 0", *tile)
	}
	if m.Tallest != 1 {
		t.Errorf("Tallest = %d, want 1", m.Tallest)
	}
}

func TestVisualScale(t *testing.T) {
	tests := []struct {
		height, want float64
	}{
		{5, 3},
		{2.5, 2.25},
		{0, 1.5},
	}
	for _, tt := range tests {
		if got := VisualScale(tt.height, 5, 3); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("VisualScale(%v) = %v, want %v", tt.height, got, tt.want)
		}
	}
	if got := VisualScale(1, 0, 3); got != 3 {
		t.Errorf("VisualScale with zero start = %v, want 3", got)
	}
}
