package core

// HUD space reserved around the map viewport.
const (
	viewportMarginW = 2 // borders
	viewportMarginH = 8 // status lines below the map
	minViewport     = 10
)

// ViewportSize returns how much of a worldW x worldH map fits into a terminal of
// termW x termH cells. The result never exceeds the world and is at least 10x10.
func ViewportSize(termW, termH, worldW, worldH int) (int, int) {
	w := min(termW-viewportMarginW, worldW)
	h := min(termH-viewportMarginH, worldH)
	return max(w, minViewport), max(h, minViewport)
}

// RecomputeCamera returns the top-left world coordinate of a viewW x viewH
// viewport centered on (focusX, focusY) and clamped to the world bounds.
// A viewport larger than the world is anchored at the origin.
func RecomputeCamera(worldW, worldH, viewW, viewH, focusX, focusY int) (int, int) {
	x := clampAxis(focusX-viewW/2, worldW, viewW)
	y := clampAxis(focusY-viewH/2, worldH, viewH)
	return x, y
}

func clampAxis(origin, world, view int) int {
	if view >= world {
		return 0
	}
	return Clamp(origin, 0, world-view)
}
