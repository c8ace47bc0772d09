package crawler

import (
	"fmt"

	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

// Depth tiers of the boss roster.
const (
	dragonMaxDepth    = 10
	demonLordMaxDepth = 20
)

// baseEnemies is the roster size of the first level.
const baseEnemies = 3

func (g *Game) isBossLevel(depth int) bool {
	return depth > 0 && depth%g.tunables.Enemies.BossEvery == 0
}

// bossFor returns the boss archetype guarding depth.
func bossFor(depth int) entity.Archetype {
	switch {
	case depth <= dragonMaxDepth:
		return entity.Dragon
	case depth <= demonLordMaxDepth:
		return entity.DemonLord
	default:
		return entity.LichKing
	}
}

// enemyCount returns how many enemies a normal level at depth spawns.
func (g *Game) enemyCount(depth int) int {
	n := baseEnemies + (depth-1)/2 + g.settings.Difficulty().EnemyAdjustment()
	return core.Clamp(n, 1, g.tunables.Enemies.Max)
}

// rollArchetype picks a normal enemy type for depth from a [0, 100) roll.
func rollArchetype(depth, roll int) entity.Archetype {
	switch {
	case depth <= 1:
		switch {
		case roll < 70:
			return entity.Goblin
		case roll < 90:
			return entity.Skeleton
		default:
			return entity.Orc
		}
	case depth <= 3:
		switch {
		case roll < 40:
			return entity.Goblin
		case roll < 70:
			return entity.Skeleton
		case roll < 95:
			return entity.Orc
		default:
			return entity.Troll
		}
	default:
		switch {
		case roll < 20:
			return entity.Goblin
		case roll < 40:
			return entity.Skeleton
		case roll < 70:
			return entity.Orc
		default:
			return entity.Troll
		}
	}
}

// populateLevel replaces the enemy arena with the roster of the current depth.
// The player must already be placed.
func (g *Game) populateLevel() {
	g.enemies = make([]entity.Enemy, 0, g.tunables.Enemies.Max)

	if g.isBossLevel(g.depth) {
		g.spawnBoss()
		return
	}

	n := g.enemyCount(g.depth)
	for i := 0; i < n; i++ {
		a := rollArchetype(g.depth, g.rng.Intn(100))
		pos, ok := g.findEnemySpot()
		if !ok {
			g.logger.Debug("enemy dropped", "depth", g.depth, "archetype", a, "index", i)
			continue
		}

		e := entity.NewEnemy(g.takeID(), a)
		e.Name = fmt.Sprintf("%s %d", e.Name, i+1)
		e.Pos = pos
		g.enemies = append(g.enemies, e)
	}
}

// spawnBoss places the depth's boss at the center of the largest room.
// When that center is the player's spawn, the largest other room is used,
// and a single-room level falls back to a random free spot.
func (g *Game) spawnBoss() {
	pos, ok := g.bossSpot()
	if !ok {
		g.logger.Warn("no room for boss", "depth", g.depth, "rooms", g.level.RoomCount())
		return
	}

	e := entity.NewEnemy(g.takeID(), bossFor(g.depth))
	e.Name = fmt.Sprintf("%s (Lv.%d Boss)", e.Name, g.depth)
	e.Pos = pos
	g.enemies = append(g.enemies, e)
}

func (g *Game) bossSpot() (core.Point, bool) {
	room, ok := g.level.LargestRoom()
	if !ok {
		return core.Point{}, false
	}
	if c := room.Center(); c != g.player.Pos {
		return c, true
	}

	found := false
	var best core.Rect
	for _, r := range g.level.Rooms {
		if r.Center() == g.player.Pos {
			continue
		}
		if !found || r.Area() > best.Area() {
			best = r
			found = true
		}
	}
	if found {
		return best.Center(), true
	}
	return g.findEnemySpot()
}

// findEnemySpot samples random room interiors until it finds a tile free of
// the player and already placed enemies, giving up after the placement budget.
func (g *Game) findEnemySpot() (core.Point, bool) {
	rooms := g.level.Rooms
	if len(rooms) == 0 {
		return core.Point{}, false
	}

	for attempt := 0; attempt < g.tunables.Enemies.PlacementAttempts; attempt++ {
		r := rooms[g.rng.Intn(len(rooms))]
		p := core.Point{
			X: g.rng.Range(r.X+1, r.Right()-2),
			Y: g.rng.Range(r.Y+1, r.Bottom()-2),
		}
		if p == g.player.Pos || g.enemyAt(p) >= 0 {
			continue
		}
		return p, true
	}
	return core.Point{}, false
}

func (g *Game) takeID() int {
	id := g.nextID
	g.nextID++
	return id
}
