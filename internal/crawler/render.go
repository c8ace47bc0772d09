package crawler

import (
	"fmt"

	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

// hudLines is the number of status rows below the map box.
const hudLines = 6

// Render draws the current frame into screen: a bordered viewport centered
// on the player, then the HUD. Overlays replace the map.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	if g.player == nil {
		return
	}

	switch g.overlay {
	case OverlayInventory:
		g.renderInventory(screen)
		return
	case OverlayHelp:
		g.renderHelp(screen)
		return
	}

	vw, vh := core.ViewportSize(screen.Width(), screen.Height(), g.level.Width, g.level.Height)
	camX, camY := core.RecomputeCamera(g.level.Width, g.level.Height, vw, vh, g.player.Pos.X, g.player.Pos.Y)

	screen.DrawBox(core.NewRect(0, 0, vw+2, vh+2), core.ColorWall)
	g.renderMap(screen, camX, camY, vw, vh)
	g.renderHUD(screen, vh+2)
}

func (g *Game) renderMap(screen *core.Screen, camX, camY, vw, vh int) {
	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			wx, wy := camX+x, camY+y
			if !g.level.InBounds(wx, wy) {
				continue
			}
			t := g.level.At(wx, wy)
			screen.SetColored(x+1, y+1, t.Rune(), tileColor(t))
		}
	}

	visible := func(p core.Point) (int, int, bool) {
		sx, sy := p.X-camX, p.Y-camY
		return sx + 1, sy + 1, sx >= 0 && sx < vw && sy >= 0 && sy < vh
	}

	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		if sx, sy, ok := visible(e.Pos); ok {
			screen.SetColored(sx, sy, e.Symbol, enemyColor(e.Archetype))
		}
	}
	if sx, sy, ok := visible(g.player.Pos); ok {
		screen.SetColored(sx, sy, g.player.Symbol, core.ColorPlayer)
	}
}

func (g *Game) renderHUD(screen *core.Screen, top int) {
	p := g.player
	screen.DrawTextColored(0, top, fmt.Sprintf("%s  HP: %d/%d  Lv: %d  XP: %d/%d  Atk: %d  Def: %d",
		p.Name, p.Stats.HP, p.Stats.MaxHP, p.Level, p.XP, p.XPToNext, p.Stats.Attack, p.Stats.Defense), core.ColorText)
	screen.DrawTextColored(0, top+1, fmt.Sprintf("Depth: %d  Turn: %d  Kills: %d  Enemies: %d",
		g.depth, g.turns, g.kills, g.activeEnemies()), core.ColorText)

	switch {
	case g.lastDefeated != "":
		screen.DrawTextColored(0, top+2, fmt.Sprintf("Defeated %s!", g.lastDefeated), core.ColorYellow)
	case g.banner.Text != "":
		c := core.ColorBrightYellow
		if g.banner.Boss {
			c = core.ColorBoss
		}
		screen.DrawTextColored(0, top+2, g.banner.Text, c)
	case g.waitingForStairs:
		screen.DrawTextColored(0, top+2, "Find the stairs (>) to descend.", core.ColorStairs)
	}

	msgs := g.messages
	if len(msgs) > 2 {
		msgs = msgs[len(msgs)-2:]
	}
	for i, m := range msgs {
		screen.DrawTextColored(0, top+3+i, m, core.ColorGray)
	}

	last := top + hudLines - 1
	switch {
	case g.pendingQuit:
		screen.DrawTextColored(0, last, "Really quit? (y/n)", core.ColorBrightRed)
	case g.state == core.StateGameOver:
		screen.DrawTextColored(0, last, fmt.Sprintf("You have been defeated! Press r to restart, %c to quit.",
			g.settings.QuitKey), core.ColorBrightRed)
	case g.settings.ShowTutorialTips:
		screen.DrawTextColored(0, last, fmt.Sprintf("Tip: walk into enemies to attack. i inventory, %c help, %c quit",
			g.settings.HelpKey, g.settings.QuitKey), core.ColorGray)
	}
}

func (g *Game) renderInventory(screen *core.Screen) {
	p := g.player
	screen.DrawTextColored(2, 2, "=== INVENTORY ===", core.ColorText)
	screen.DrawTextColored(2, 4, "Equipped Weapon:", core.ColorPlayer)
	if p.HasWeapon() {
		screen.DrawText(4, 5, fmt.Sprintf("[E] %s - Attack +%d", p.Weapon.Name, p.Weapon.AttackBonus))
	} else {
		screen.DrawText(4, 5, "[E] None equipped")
	}

	bonus := 0
	if p.HasWeapon() {
		bonus = p.Weapon.AttackBonus
	}
	screen.DrawTextColored(2, 7, "Total Stats:", core.ColorText)
	screen.DrawTextColored(4, 8, fmt.Sprintf("Attack: %d (%d base + %d weapon)", p.Stats.Attack, p.BaseAttack, bonus), core.ColorText)
	screen.DrawTextColored(4, 9, fmt.Sprintf("Defense: %d", p.Stats.Defense), core.ColorText)
	screen.DrawTextColored(4, 10, fmt.Sprintf("HP: %d/%d", p.Stats.HP, p.Stats.MaxHP), core.ColorText)
	screen.DrawTextColored(2, 12, "Press any key to return to game...", core.ColorText)
}

func (g *Game) renderHelp(screen *core.Screen) {
	lines := []string{
		"=== HELP ===",
		"",
		"Move:        arrows, wasd or hjkl",
		"Diagonals:   y u b n",
		"Wait:        .",
		"Inventory:   i",
		fmt.Sprintf("Help:        %c", g.settings.HelpKey),
		fmt.Sprintf("Quit:        %c (confirm with y)", g.settings.QuitKey),
		"",
		"Walk into an enemy to attack it. Clear a level to reveal the stairs (>).",
		fmt.Sprintf("A boss guards every level divisible by %d.", g.tunables.Enemies.BossEvery),
		"",
		"Press any key to return to game...",
	}
	for i, l := range lines {
		screen.DrawTextColored(2, 2+i, l, core.ColorText)
	}
}

func tileColor(t dungeon.Tile) core.Color {
	switch t {
	case dungeon.TileFloor:
		return core.ColorFloor
	case dungeon.TileStairsDown:
		return core.ColorStairs
	default:
		return core.ColorWall
	}
}

func enemyColor(a entity.Archetype) core.Color {
	switch a {
	case entity.Orc:
		return core.ColorText
	case entity.Skeleton:
		return core.ColorFloor
	case entity.Troll:
		return core.ColorWall
	case entity.Goblin:
		return core.ColorEnemy
	}
	if a.IsBoss() {
		return core.ColorBoss
	}
	return core.ColorEnemy
}
