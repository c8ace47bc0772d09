package dungeon

import (
	"github.com/vovakirdan/castle-crawler/internal/core"
)

// Params controls room generation.
type Params struct {
	MinRoomSize int
	MaxRoomSize int
	MaxRooms    int
	Attempts    int
}

// DefaultParams returns the classic generation parameters.
func DefaultParams() Params {
	return Params{
		MinRoomSize: 4,
		MaxRoomSize: 10,
		MaxRooms:    8,
		Attempts:    30,
	}
}

// GenerateResult describes how a generation pass went.
type GenerateResult struct {
	Attempts int // Attempts consumed
	Rejected int // Candidates dropped for overlap or not fitting the map
	Rooms    int
}

// Degenerate reports whether the pass produced no rooms.
func (r GenerateResult) Degenerate() bool {
	return r.Rooms == 0
}

// Generate rebuilds level in place: it fills the grid with walls and carves
// up to p.MaxRooms non-overlapping rooms within p.Attempts tries, joining
// each new room to the previous one with an L-shaped corridor.
//
// Zero rooms is a valid outcome; callers fall back to Level.SpawnPoint.
func Generate(level *Level, p Params, rng *core.RNG) GenerateResult {
	level.Fill(TileWall)
	level.Rooms = nil

	var res GenerateResult
	for res.Attempts < p.Attempts && len(level.Rooms) < p.MaxRooms {
		res.Attempts++

		room, ok := candidateRoom(level, p, rng)
		if !ok || overlapsAny(room, level.Rooms) {
			res.Rejected++
			continue
		}

		carveRoom(level, room)
		if prev, ok := level.LastRoom(); ok {
			from, to := prev.Center(), room.Center()
			carveCorridor(level, from.X, from.Y, to.X, to.Y)
		}
		level.Rooms = append(level.Rooms, room)
	}

	res.Rooms = len(level.Rooms)
	return res
}

// candidateRoom samples a room that leaves a one-tile wall border.
// ok is false if a room of the sampled size cannot fit the map.
func candidateRoom(level *Level, p Params, rng *core.RNG) (core.Rect, bool) {
	w := rng.Range(p.MinRoomSize, p.MaxRoomSize)
	h := rng.Range(p.MinRoomSize, p.MaxRoomSize)

	maxX := level.Width - w - 1
	maxY := level.Height - h - 1
	if maxX < 1 || maxY < 1 {
		return core.Rect{}, false
	}

	x := rng.Range(1, maxX)
	y := rng.Range(1, maxY)
	return core.NewRect(x, y, w, h), true
}

func overlapsAny(r core.Rect, rooms []core.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(level *Level, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			level.Set(x, y, TileFloor)
		}
	}
}

// carveCorridor runs horizontally along y1 from x1 to x2, then vertically
// along x2 from y1 to y2.
func carveCorridor(level *Level, x1, y1, x2, y2 int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		level.Set(x, y1, TileFloor)
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		level.Set(x2, y, TileFloor)
	}
}
