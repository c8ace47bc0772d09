package crawler

import (
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

// Snapshot is a read-only copy of the session, used by renderers and for
// determinism testing. Mutating it does not affect the game.
type Snapshot struct {
	State            core.State
	Depth            int
	Turns            int
	Kills            int
	WaitingForStairs bool
	Stairs           core.Point // Valid while WaitingForStairs
	PendingQuit      bool
	Overlay          Overlay
	NextID           int

	Level   *dungeon.Level
	Player  entity.Player
	Enemies []entity.Enemy

	LastDefeated string
	Banner       Banner
	Messages     []string
}

// Snapshot returns a deep copy of the current session.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:            g.state,
		Depth:            g.depth,
		Turns:            g.turns,
		Kills:            g.kills,
		WaitingForStairs: g.waitingForStairs,
		Stairs:           g.stairs,
		PendingQuit:      g.pendingQuit,
		Overlay:          g.overlay,
		NextID:           g.nextID,
		LastDefeated:     g.lastDefeated,
		Banner:           g.banner,
		Enemies:          make([]entity.Enemy, len(g.enemies)),
		Messages:         make([]string, len(g.messages)),
	}
	copy(s.Enemies, g.enemies)
	copy(s.Messages, g.messages)
	if g.level != nil {
		s.Level = g.level.Clone()
	}
	if g.player != nil {
		s.Player = *g.player
	}
	return s
}

// ActiveEnemies returns the living enemies in slot order.
func (s Snapshot) ActiveEnemies() []entity.Enemy {
	var out []entity.Enemy
	for _, e := range s.Enemies {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}
