// Package ecs is the runner's entity store: the player and the planes,
// kept in an ark world behind typed views so systems never query by
// reflection.
package ecs

import (
	ark "github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

// Entity is an entity handle.
type Entity = ark.Entity

// Transform is an entity's world position in screen pixels.
type Transform struct {
	Pos core.Vec2
}

// Player tags the glider.
type Player struct{}

// Plane tags an aircraft.
type Plane struct{}

// Height is the player's altitude.
type Height struct {
	Value float64
}

// Direction is the vertical heading a plane is spawned with.
type Direction uint8

const (
	DirDown Direction = iota // Enters from the top edge
	DirUp                    // Enters from the bottom edge
)

func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// PlayerRef points at the player's components. It stays valid until the
// next structural change to the world.
type PlayerRef struct {
	Entity    Entity
	Transform *Transform
	Collider  *core.Collider
	Height    *Height
}

// World owns all entities of one session.
type World struct {
	world *ark.World

	playerMapper *ark.Map4[Transform, core.Collider, Height, Player]
	planeMapper  *ark.Map4[Transform, core.Collider, Direction, Plane]
	playerTags   *ark.Map[Player]

	playerFilter   *ark.Filter4[Transform, core.Collider, Height, Player]
	planeFilter    *ark.Filter4[Transform, core.Collider, Direction, Plane]
	colliderFilter *ark.Filter2[Transform, core.Collider]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := ark.NewWorld()
	return &World{
		world:          w,
		playerMapper:   ark.NewMap4[Transform, core.Collider, Height, Player](w),
		planeMapper:    ark.NewMap4[Transform, core.Collider, Direction, Plane](w),
		playerTags:     ark.NewMap[Player](w),
		playerFilter:   ark.NewFilter4[Transform, core.Collider, Height, Player](w),
		planeFilter:    ark.NewFilter4[Transform, core.Collider, Direction, Plane](w),
		colliderFilter: ark.NewFilter2[Transform, core.Collider](w),
	}
}

// SpawnPlayer creates the glider.
func (w *World) SpawnPlayer(pos core.Vec2, col core.Collider, height float64) Entity {
	return w.playerMapper.NewEntity(
		&Transform{Pos: pos},
		&col,
		&Height{Value: height},
		&Player{},
	)
}

// SpawnPlane creates an aircraft heading in dir.
func (w *World) SpawnPlane(pos core.Vec2, col core.Collider, dir Direction) Entity {
	return w.planeMapper.NewEntity(
		&Transform{Pos: pos},
		&col,
		&dir,
		&Plane{},
	)
}

// Player returns the first player entity, if any.
func (w *World) Player() (PlayerRef, bool) {
	var ref PlayerRef
	found := false

	query := w.playerFilter.Query()
	for query.Next() {
		if found {
			continue
		}
		t, c, h, _ := query.Get()
		ref = PlayerRef{Entity: query.Entity(), Transform: t, Collider: c, Height: h}
		found = true
	}
	return ref, found
}

// EachPlane calls fn for every plane.
func (w *World) EachPlane(fn func(e Entity, t *Transform, c *core.Collider, dir Direction)) {
	query := w.planeFilter.Query()
	for query.Next() {
		t, c, d, _ := query.Get()
		fn(query.Entity(), t, c, *d)
	}
}

// EachObstacle calls fn for every collider that does not belong to a player.
func (w *World) EachObstacle(fn func(e Entity, t *Transform, c *core.Collider)) {
	query := w.colliderFilter.Query()
	for query.Next() {
		e := query.Entity()
		if w.playerTags.Has(e) {
			continue
		}
		t, c := query.Get()
		fn(e, t, c)
	}
}

// RemovePlanes deletes every plane for which drop returns true and
// reports how many were removed.
func (w *World) RemovePlanes(drop func(t Transform) bool) int {
	var doomed []Entity

	query := w.planeFilter.Query()
	for query.Next() {
		t, _, _, _ := query.Get()
		if drop(*t) {
			doomed = append(doomed, query.Entity())
		}
	}

	for _, e := range doomed {
		w.world.RemoveEntity(e)
	}
	return len(doomed)
}

// PlaneCount returns the number of planes.
func (w *World) PlaneCount() int {
	n := 0
	query := w.planeFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
