package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
	"github.com/vovakirdan/guacamole-runner/internal/render"
)

// quietConfig is the default configuration with planes pushed out of reach.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Planes.SpawnInterval = 1_000_000
	return cfg
}

func tickN(s *Session, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		s.Tick(in)
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1, nil)

	if s.Map.Width != 1000 || s.Map.Height != 10 {
		t.Errorf("map size = %dx%d, want 1000x10", s.Map.Width, s.Map.Height)
	}
	if s.Map.Position != core.V2(0, 80) {
		t.Errorf("map position = %v, want (0, 80)", s.Map.Position)
	}

	p, ok := s.World.Player()
	if !ok {
		t.Fatal("no player spawned")
	}
	if p.Transform.Pos != core.V2(200, 360) {
		t.Errorf("player at %v, want (200, 360)", p.Transform.Pos)
	}
	if p.Height.Value != 5 {
		t.Errorf("player height = %v, want 5", p.Height.Value)
	}
	if s.Phase != PhaseAlive || s.Points != 0 || s.Ticks != 0 {
		t.Errorf("fresh session = phase %v points %d ticks %d", s.Phase, s.Points, s.Ticks)
	}
}

func TestSessionLandsAfterFiveHundredTicks(t *testing.T) {
	s := NewSession(quietConfig(), 1, nil)

	tickN(s, 499)
	if s.Phase != PhaseAlive {
		t.Fatalf("landed after %d ticks, altitude %v", s.Ticks, s.Altitude())
	}
	if math.Abs(s.Altitude()-0.01) > 1e-9 {
		t.Errorf("altitude after 499 ticks = %v, want 0.01", s.Altitude())
	}

	tickN(s, 1)
	if s.Phase != PhaseDead {
		t.Fatalf("still flying after 500 ticks, altitude %v", s.Altitude())
	}

	// A landed session is frozen.
	tickN(s, 10)
	if s.Ticks != 500 {
		t.Errorf("Ticks = %d after landing, want 500", s.Ticks)
	}
}

func TestSessionAltitudeDecay(t *testing.T) {
	s := NewSession(quietConfig(), 1, nil)
	for n := 1; n <= 100; n++ {
		tickN(s, 1)
		want := 5 - float64(n)*0.01
		if math.Abs(s.Altitude()-want) > 1e-9 {
			t.Fatalf("tick %d: altitude %v, want %v", n, s.Altitude(), want)
		}
	}
}

func TestSessionSpawnsFirstPlane(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 7, nil)

	tickN(s, 70)
	if n := s.World.PlaneCount(); n != 0 {
		t.Fatalf("%d planes after 70 ticks, want 0", n)
	}
	tickN(s, 1)
	if n := s.World.PlaneCount(); n != 1 {
		t.Fatalf("%d planes after 71 ticks, want 1", n)
	}

	s.World.EachPlane(func(_ ecs.Entity, tr *ecs.Transform, _ *core.Collider, dir ecs.Direction) {
		// Spawned and moved once in the same tick.
		x := tr.Pos.X + 8
		if x < 800 || x >= 1280 {
			t.Errorf("plane spawned at x = %v, want [800, 1280)", x)
		}
		wantY := -48.0 + 4
		if dir == ecs.DirUp {
			wantY = 720 + 48 - 4
		}
		if tr.Pos.Y != wantY {
			t.Errorf("%v plane at y = %v, want %v", dir, tr.Pos.Y, wantY)
		}
	})
}

func TestSessionPlaneLiftsPlayer(t *testing.T) {
	s := NewSession(quietConfig(), 1, nil)
	tickN(s, 10)

	cfg := s.Config()
	s.World.SpawnPlane(core.V2(200, 360), cfg.Planes.ColliderDown, ecs.DirDown)
	tickN(s, 1)

	if s.Altitude() != cfg.Player.StartHeight {
		t.Errorf("altitude after touch = %v, want %v", s.Altitude(), cfg.Player.StartHeight)
	}
	if s.PlaneTouches() != 1 {
		t.Errorf("PlaneTouches() = %d, want 1", s.PlaneTouches())
	}
}

func TestSessionDespawnsLostPlanes(t *testing.T) {
	s := NewSession(quietConfig(), 1, nil)
	cfg := s.Config()

	s.World.SpawnPlane(core.V2(-500, 100), cfg.Planes.ColliderDown, ecs.DirDown)
	s.World.SpawnPlane(core.V2(600, 1100), cfg.Planes.ColliderDown, ecs.DirDown)
	s.World.SpawnPlane(core.V2(900, 300), cfg.Planes.ColliderUp, ecs.DirUp)
	tickN(s, 1)

	if n := s.World.PlaneCount(); n != 1 {
		t.Errorf("%d planes left, want 1", n)
	}
}

func TestSessionScrollsAndMoves(t *testing.T) {
	s := NewSession(quietConfig(), 1, nil)

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	s.Tick(up)

	if s.Map.Position.X != -4 {
		t.Errorf("map x after one tick = %v, want -4", s.Map.Position.X)
	}
	p, _ := s.World.Player()
	if p.Transform.Pos != core.V2(197, 350) {
		t.Errorf("player at %v, want (197, 350)", p.Transform.Pos)
	}

	tickN(s, 35)
	if got := s.Distance(); got != 4 {
		t.Errorf("Distance() = %d after 144 px, want 4", got)
	}
}

func TestSessionEditorNeedsFlag(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		wantEdits int
		wantWall  uint8
	}{
		{"disabled", false, 0, 0},
		{"enabled", true, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Editor.Enabled = tt.enabled
			s := NewSession(cfg, 1, nil)
			for i := range s.Map.Tiles {
				s.Map.Tiles[i].GroundHeight = 0
				s.Map.Tiles[i].WallHeight = 0
			}
			s.Map.Tallest = 0

			// The map scrolls 4 px before the click lands, still inside the hex.
			px, py := s.Map.AxialToPixel(3, 5)
			in := core.NewInputFrame()
			in.Pointer = &core.Pointer{X: px, Y: py, Right: true}
			s.Tick(in)

			if s.Edits() != tt.wantEdits {
				t.Errorf("Edits() = %d, want %d", s.Edits(), tt.wantEdits)
			}
			tile, _ := s.Map.Tile(3, 5)
			if tile.WallHeight != tt.wantWall {
				t.Errorf("wall height = %d, want %d", tile.WallHeight, tt.wantWall)
			}
		})
	}
}

func TestSessionDeterministicWithSeed(t *testing.T) {
	run := func() (int, int, int) {
		s := NewSession(config.DefaultRunnerConfig(), 99, nil)
		in := core.NewInputFrame()
		for i := 0; i < 400 && s.Phase == PhaseAlive; i++ {
			in.Clear()
			if i%40 < 20 {
				in.Set(core.ActionDown)
			} else {
				in.Set(core.ActionUp)
			}
			s.Tick(in)
		}
		return s.Points, s.Ticks, s.World.PlaneCount()
	}

	p1, t1, n1 := run()
	p2, t2, n2 := run()
	if p1 != p2 || t1 != t2 || n1 != n2 {
		t.Errorf("runs differ: (%d, %d, %d) vs (%d, %d, %d)", p1, t1, n1, p2, t2, n2)
	}
}

func TestSessionPlan(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1, nil)
	buf := render.NewBuffer()
	s.Plan(buf)

	pools := buf.Pools()
	if len(pools) != 2 {
		t.Fatalf("%d pools, want terrain and entities", len(pools))
	}
	if pools[0].Sorted || !pools[1].Sorted {
		t.Errorf("pool sorting = %v, %v; want false, true", pools[0].Sorted, pools[1].Sorted)
	}
	if buf.Count(render.TexturePlayer) != 1 {
		t.Errorf("player commands = %d, want 1", buf.Count(render.TexturePlayer))
	}
	if buf.Count(render.TextureMarker) != 0 {
		t.Error("markers drawn without the editor")
	}

	var player render.DrawCommand
	for _, cmd := range pools[1].Commands {
		if cmd.Texture == render.TexturePlayer {
			player = cmd
		}
	}
	if player.Pos.X != 100 || player.Pos.Y != 180 {
		t.Errorf("player drawn at (%v, %v), want canvas (100, 180)", player.Pos.X, player.Pos.Y)
	}
	if player.Scale.X != 1.5 {
		t.Errorf("player scale = %v, want 1.5", player.Scale.X)
	}
}
