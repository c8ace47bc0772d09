package crawler

import (
	"testing"

	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultSettings(), config.DefaultTunables(), nil)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// installLevel replaces the current level with hand-carved rooms and an
// empty enemy arena.
func installLevel(g *Game, w, h int, rooms ...core.Rect) {
	l := dungeon.NewLevel(w, h)
	for _, r := range rooms {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				l.Set(x, y, dungeon.TileFloor)
			}
		}
	}
	l.Rooms = rooms
	g.level = l
	g.enemies = make([]entity.Enemy, 0, g.tunables.Enemies.Max)
	g.waitingForStairs = false
}

func addEnemy(g *Game, a entity.Archetype, x, y int) *entity.Enemy {
	e := entity.NewEnemy(g.takeID(), a)
	e.Pos = core.Point{X: x, Y: y}
	g.enemies = append(g.enemies, e)
	return &g.enemies[len(g.enemies)-1]
}

func stairsTiles(l *dungeon.Level) []core.Point {
	var out []core.Point
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.At(x, y) == dungeon.TileStairsDown {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}
