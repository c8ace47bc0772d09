package crawler

import (
	"github.com/vovakirdan/castle-crawler/internal/combat"
	"github.com/vovakirdan/castle-crawler/internal/core"
)

// enemyTurn moves every active enemy one step toward the player in slot
// order. An enemy whose step lands on the player attacks instead. Blocked
// enemies wait. Nothing acts once the player is down.
func (g *Game) enemyTurn(res *TurnResult) {
	for i := range g.enemies {
		if g.state != core.StatePlaying {
			return
		}
		e := &g.enemies[i]
		if !e.Active {
			continue
		}

		dx := core.Sign(g.player.Pos.X - e.Pos.X)
		dy := core.Sign(g.player.Pos.Y - e.Pos.Y)
		target := e.Pos.Add(dx, dy)

		if target == g.player.Pos {
			out := combat.ResolveAttack(&e.Stats, &g.player.Stats, g.rng)
			res.add(Event{Kind: EventPlayerHit, Actor: e.Name, Amount: out.Damage})
			if out.Defeated {
				g.state = core.StateGameOver
				res.add(Event{Kind: EventPlayerDefeated, Actor: e.Name})
				g.logger.Info("player defeated", "by", e.Name, "depth", g.depth,
					"turns", g.turns, "kills", g.kills)
			}
			continue
		}

		if g.level.Walkable(target.X, target.Y) && g.enemyAt(target) < 0 {
			e.Pos = target
		}
	}
}
