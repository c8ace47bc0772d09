package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles of the dungeon palette.
const (
	ColorWall   = ColorWhite
	ColorFloor  = ColorYellow
	ColorPlayer = ColorGreen
	ColorEnemy  = ColorRed
	ColorText   = ColorCyan
	ColorStairs = ColorBrightWhite
	ColorBoss   = ColorBrightMagenta
)
