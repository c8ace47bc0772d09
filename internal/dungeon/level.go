package dungeon

import (
	"github.com/vovakirdan/castle-crawler/internal/core"
)

// Level is one dungeon floor: a tile grid and the rooms carved into it.
// Rooms keep generation order; the first room is the entry room and the
// last room holds the stairs.
type Level struct {
	Width  int
	Height int
	Rooms  []core.Rect

	tiles []Tile
}

// NewLevel creates a wall-filled level of the given size.
func NewLevel(width, height int) *Level {
	return &Level{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as walls.
func (l *Level) At(x, y int) Tile {
	if !l.InBounds(x, y) {
		return TileWall
	}
	return l.tiles[y*l.Width+x]
}

// Set changes the tile at (x, y). Out-of-bounds writes are ignored.
func (l *Level) Set(x, y int, t Tile) {
	if !l.InBounds(x, y) {
		return
	}
	l.tiles[y*l.Width+x] = t
}

// Walkable reports whether (x, y) is in bounds and not a wall.
func (l *Level) Walkable(x, y int) bool {
	return l.InBounds(x, y) && l.At(x, y).Walkable()
}

// Fill sets every tile to t.
func (l *Level) Fill(t Tile) {
	for i := range l.tiles {
		l.tiles[i] = t
	}
}

// RoomCount returns the number of generated rooms.
func (l *Level) RoomCount() int {
	return len(l.Rooms)
}

// SpawnPoint returns the center of the first room, or the map center
// when generation produced no rooms.
func (l *Level) SpawnPoint() core.Point {
	if len(l.Rooms) == 0 {
		return core.Point{X: l.Width / 2, Y: l.Height / 2}
	}
	return l.Rooms[0].Center()
}

// LargestRoom returns the room with the greatest area.
// Ties go to the room generated first.
func (l *Level) LargestRoom() (core.Rect, bool) {
	if len(l.Rooms) == 0 {
		return core.Rect{}, false
	}
	best := l.Rooms[0]
	for _, r := range l.Rooms[1:] {
		if r.Area() > best.Area() {
			best = r
		}
	}
	return best, true
}

// LastRoom returns the most recently generated room.
func (l *Level) LastRoom() (core.Rect, bool) {
	if len(l.Rooms) == 0 {
		return core.Rect{}, false
	}
	return l.Rooms[len(l.Rooms)-1], true
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := &Level{
		Width:  l.Width,
		Height: l.Height,
		Rooms:  make([]core.Rect, len(l.Rooms)),
		tiles:  make([]Tile, len(l.tiles)),
	}
	copy(c.Rooms, l.Rooms)
	copy(c.tiles, l.tiles)
	return c
}

// Count returns how many tiles of type t the level holds.
func (l *Level) Count(t Tile) int {
	n := 0
	for _, v := range l.tiles {
		if v == t {
			n++
		}
	}
	return n
}
