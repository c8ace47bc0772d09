// Package crawler runs the dungeon crawl: it populates levels, resolves the
// player's action and every enemy's response each turn, and moves the
// session between levels.
package crawler

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/castle-crawler/internal/combat"
	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
	"github.com/vovakirdan/castle-crawler/internal/entity"
	"github.com/vovakirdan/castle-crawler/internal/logging"
)

// maxMessages is how many log lines the HUD keeps.
const maxMessages = 4

// Overlay is a full-screen panel drawn over the map.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayInventory
	OverlayHelp
)

// Game is one crawl session. All state is owned here; nothing is shared
// between sessions.
type Game struct {
	settings config.Settings
	tunables config.Tunables
	params   dungeon.Params
	logger   *log.Logger

	rng    *core.RNG
	nextID int // Next enemy ID; strictly increasing for the session

	level   *dungeon.Level
	player  *entity.Player
	enemies []entity.Enemy // Arena of at most Enemies.Max slots

	state            core.State
	depth            int
	turns            int
	kills            int
	waitingForStairs bool
	stairs           core.Point

	pendingQuit  bool
	overlay      Overlay
	lastDefeated string
	banner       Banner
	messages     []string
	lastTurn     TurnResult
}

// New creates a game in the menu state. Call Reset to start playing.
// A nil logger discards output.
func New(settings config.Settings, tunables config.Tunables, logger *log.Logger) *Game {
	settings.Normalize()
	tunables.Normalize()
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		settings: settings,
		tunables: tunables,
		params: dungeon.Params{
			MinRoomSize: tunables.Rooms.MinSize,
			MaxRoomSize: tunables.Rooms.MaxSize,
			MaxRooms:    tunables.Rooms.Max,
			Attempts:    tunables.Rooms.Attempts,
		},
		logger: logger,
		state:  core.StateMenu,
	}
}

// Reset seeds the session RNG and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = core.NewRNG(cfg.Seed)
	g.nextID = 1
	g.newGame()
	g.logger.Info("game started", "seed", cfg.Seed, "player", g.settings.PlayerName,
		"difficulty", g.settings.Difficulty())
}

// newGame builds a fresh player and the first level from the current RNG.
func (g *Game) newGame() {
	g.player = entity.NewPlayer(g.settings.PlayerName, g.settings.StartingHP)
	g.level = dungeon.NewLevel(g.tunables.Map.Width, g.tunables.Map.Height)
	g.state = core.StatePlaying
	g.turns = 0
	g.kills = 0
	g.pendingQuit = false
	g.overlay = OverlayNone
	g.lastDefeated = ""
	g.messages = nil
	g.lastTurn = TurnResult{}

	g.enterLevel(1)
	g.banner = Banner{Text: levelBanner(1, false)}
}

// enterLevel regenerates the dungeon at depth, places the player at the
// level's spawn point and populates it.
func (g *Game) enterLevel(depth int) {
	g.depth = depth
	g.waitingForStairs = false

	res := dungeon.Generate(g.level, g.params, g.rng)
	if res.Degenerate() {
		g.logger.Warn("generated level has no rooms", "depth", depth, "attempts", res.Attempts)
	}

	g.player.Pos = g.level.SpawnPoint()
	g.populateLevel()

	g.logger.Debug("level generated", "depth", depth, "rooms", res.Rooms,
		"rejected", res.Rejected, "enemies", len(g.enemies), "boss", g.isBossLevel(depth))
}

// Step processes one input and returns the updated state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastTurn = TurnResult{}
	action := primaryAction(in)

	switch {
	case g.state == core.StateQuit || g.state == core.StateMenu:
	case g.pendingQuit:
		g.pendingQuit = false
		if action == core.ActionConfirm {
			g.state = core.StateQuit
			g.logger.Info("player quit", "depth", g.depth, "turns", g.turns, "kills", g.kills)
		}
	case action == core.ActionQuit:
		g.pendingQuit = true
	case g.state == core.StateGameOver:
		if action == core.ActionRestart {
			g.logger.Info("game restarted")
			g.newGame()
		}
	case g.overlay != OverlayNone:
		g.toggleOverlay(action)
	case action == core.ActionInventory || action == core.ActionHelp:
		g.toggleOverlay(action)
	case action == core.ActionWait:
		g.Wait()
	default:
		if dx, dy, ok := action.Delta(); ok {
			g.MovePlayer(dx, dy)
		}
	}

	return core.StepResult{
		State:     g.State(),
		TurnTaken: g.lastTurn.Taken,
	}
}

// actionPriority orders intents when a frame holds several.
var actionPriority = []core.Action{
	core.ActionConfirm,
	core.ActionQuit,
	core.ActionCancel,
	core.ActionRestart,
	core.ActionInventory,
	core.ActionHelp,
	core.ActionWait,
	core.ActionMoveN,
	core.ActionMoveS,
	core.ActionMoveW,
	core.ActionMoveE,
	core.ActionMoveNW,
	core.ActionMoveNE,
	core.ActionMoveSW,
	core.ActionMoveSE,
}

func primaryAction(in core.InputFrame) core.Action {
	for _, a := range actionPriority {
		if in.Has(a) {
			return a
		}
	}
	return core.ActionNone
}

func (g *Game) toggleOverlay(action core.Action) {
	want := OverlayNone
	switch action {
	case core.ActionInventory:
		want = OverlayInventory
	case core.ActionHelp:
		want = OverlayHelp
	}
	if g.overlay == want {
		want = OverlayNone
	}
	g.overlay = want
}

// MovePlayer attempts to move the player by (dx, dy). Moving into a wall or
// off the map does nothing and consumes no turn. Moving into a living enemy
// attacks it; the player advances only if the enemy dies.
func (g *Game) MovePlayer(dx, dy int) TurnResult {
	var res TurnResult
	if g.state != core.StatePlaying {
		return res
	}

	target := g.player.Pos.Add(dx, dy)
	if !g.level.Walkable(target.X, target.Y) {
		return res
	}

	g.turns++
	res.Taken = true

	if idx := g.enemyAt(target); idx >= 0 {
		g.attackEnemy(idx, &res)
	} else {
		g.player.Pos = target
		g.lastDefeated = ""
		if g.level.At(target.X, target.Y) == dungeon.TileStairsDown && g.waitingForStairs {
			g.descend(&res)
		}
	}

	g.finishTurn(&res)
	return res
}

// Wait passes a turn in place.
func (g *Game) Wait() TurnResult {
	var res TurnResult
	if g.state != core.StatePlaying {
		return res
	}
	g.turns++
	res.Taken = true
	g.finishTurn(&res)
	return res
}

// finishTurn lets every enemy act, then checks whether the level is clear.
func (g *Game) finishTurn(res *TurnResult) {
	g.enemyTurn(res)

	if g.state == core.StatePlaying && !g.waitingForStairs && g.activeEnemies() == 0 {
		if p, ok := g.placeStairs(); ok {
			g.waitingForStairs = true
			g.stairs = p
			res.add(Event{Kind: EventStairsAppeared, Depth: g.depth})
			g.logger.Debug("stairs placed", "depth", g.depth, "x", p.X, "y", p.Y)
		}
	}

	for _, e := range res.Events {
		g.pushMessage(e.Message())
	}
	g.lastTurn = *res
}

func (g *Game) attackEnemy(idx int, res *TurnResult) {
	e := &g.enemies[idx]
	out := combat.ResolveAttack(&g.player.Stats, &e.Stats, g.rng)
	res.add(Event{Kind: EventAttack, Actor: g.player.Name, Target: e.Name, Amount: out.Damage})

	if !out.Defeated {
		return
	}

	e.Active = false
	g.kills++
	g.lastDefeated = e.Name
	g.banner = Banner{}
	g.player.Pos = e.Pos
	res.add(Event{Kind: EventKill, Target: e.Name, Amount: e.XP})

	if gained := entity.GainExperience(g.player, e.XP); gained > 0 {
		res.add(Event{Kind: EventLevelUp, Amount: g.player.Level})
		g.logger.Info("player leveled up", "level", g.player.Level, "attack", g.player.Stats.Attack,
			"defense", g.player.Stats.Defense, "max_hp", g.player.Stats.MaxHP)
	}
}

func (g *Game) descend(res *TurnResult) {
	depth := g.depth + 1
	g.enterLevel(depth)

	boss := g.isBossLevel(depth)
	g.banner = Banner{Text: levelBanner(depth, boss), Boss: boss}
	g.lastDefeated = ""
	res.add(Event{Kind: EventDescended, Depth: depth, Boss: boss})
	g.logger.Info("descended", "depth", depth, "boss", boss, "turns", g.turns)
}

func (g *Game) pushMessage(msg string) {
	if msg == "" {
		return
	}
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// enemyAt returns the slot of the active enemy at p, or -1.
func (g *Game) enemyAt(p core.Point) int {
	for i := range g.enemies {
		if g.enemies[i].Active && g.enemies[i].Pos == p {
			return i
		}
	}
	return -1
}

func (g *Game) activeEnemies() int {
	n := 0
	for i := range g.enemies {
		if g.enemies[i].Active {
			n++
		}
	}
	return n
}

// State returns the session summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		State:    g.state,
		Depth:    g.depth,
		Kills:    g.kills,
		Turns:    g.turns,
		GameOver: g.state == core.StateGameOver,
		Quit:     g.state == core.StateQuit,
	}
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// PendingQuit reports whether the quit confirmation is open.
func (g *Game) PendingQuit() bool {
	return g.pendingQuit
}

// LastTurn returns the result of the most recent step.
func (g *Game) LastTurn() TurnResult {
	return g.lastTurn
}
