// Package dungeon builds grid-based dungeon levels out of rectangular rooms
// joined by L-shaped corridors.
package dungeon

// Tile is the type of a single map cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileStairsDown
)

// Glyphs used when a level is drawn.
const (
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphStairs = '>'
)

// Rune returns the glyph of the tile.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return GlyphFloor
	case TileStairsDown:
		return GlyphStairs
	default:
		return GlyphWall
	}
}

// Walkable reports whether an actor may stand on the tile.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileStairsDown:
		return "stairs"
	default:
		return "unknown"
	}
}
