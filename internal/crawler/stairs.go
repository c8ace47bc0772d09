package crawler

import (
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
)

// placeStairs puts the down stairs at the center of the last room. If that
// tile is occupied it searches the last room, then earlier rooms in reverse,
// row by row, for a free floor tile. ok is false when nothing is free.
func (g *Game) placeStairs() (core.Point, bool) {
	last, ok := g.level.LastRoom()
	if !ok {
		return core.Point{}, false
	}

	if c := last.Center(); g.stairsFree(c) {
		g.level.Set(c.X, c.Y, dungeon.TileStairsDown)
		return c, true
	}

	for i := len(g.level.Rooms) - 1; i >= 0; i-- {
		r := g.level.Rooms[i]
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				p := core.Point{X: x, Y: y}
				if g.stairsFree(p) {
					g.level.Set(x, y, dungeon.TileStairsDown)
					return p, true
				}
			}
		}
	}
	return core.Point{}, false
}

func (g *Game) stairsFree(p core.Point) bool {
	return g.level.At(p.X, p.Y) == dungeon.TileFloor &&
		p != g.player.Pos &&
		g.enemyAt(p) < 0
}
