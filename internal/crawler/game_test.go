package crawler

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/dungeon"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	moves := []core.Action{
		core.ActionMoveE, core.ActionMoveE, core.ActionMoveS, core.ActionWait,
		core.ActionMoveNE, core.ActionMoveW, core.ActionMoveN, core.ActionMoveSW,
	}
	for i := 0; i < 200; i++ {
		in := core.FrameOf(moves[i%len(moves)])
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ after identical input:\n%+v\n%+v", s1, s2)
	}
}

func TestResetStartsFirstLevel(t *testing.T) {
	g := newTestGame(t, 7)
	s := g.Snapshot()

	if s.State != core.StatePlaying || s.Depth != 1 || s.Turns != 0 || s.Kills != 0 {
		t.Errorf("unexpected start state: %+v", g.State())
	}
	if s.Player.Pos != s.Level.SpawnPoint() {
		t.Errorf("player at %+v, expected spawn %+v", s.Player.Pos, s.Level.SpawnPoint())
	}
	if s.Banner.Text != "Dungeon Level 1!" {
		t.Errorf("Banner = %q", s.Banner.Text)
	}
	if s.Player.Stats.Attack != 12 || s.Player.Name != "Hero" {
		t.Errorf("player = %+v", s.Player)
	}
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := New(config.DefaultSettings(), config.DefaultTunables(), nil)
	if g.State().State != core.StateMenu {
		t.Errorf("State = %s, expected menu", g.State().State)
	}
	res := g.Step(core.FrameOf(core.ActionMoveE))
	if res.TurnTaken {
		t.Error("menu state should ignore input")
	}
}

func TestMoveIntoWallIsNoOp(t *testing.T) {
	g := newTestGame(t, 1)
	installLevel(g, 20, 10, core.NewRect(1, 1, 6, 6))
	g.player.Pos = core.Point{X: 1, Y: 1}
	e := addEnemy(g, entity.Goblin, 5, 5)
	before := e.Pos

	for _, d := range [][2]int{{-1, 0}, {0, -1}, {-1, -1}} {
		res := g.MovePlayer(d[0], d[1])
		if res.Taken {
			t.Errorf("move %v into a wall consumed a turn", d)
		}
	}

	if g.player.Pos != (core.Point{X: 1, Y: 1}) {
		t.Errorf("player moved to %+v", g.player.Pos)
	}
	if g.turns != 0 {
		t.Errorf("turns = %d, expected 0", g.turns)
	}
	if g.enemies[0].Pos != before {
		t.Error("enemies should not act after a rejected move")
	}
}

func TestMoveOutOfBoundsIsNoOp(t *testing.T) {
	g := newTestGame(t, 1)
	installLevel(g, 10, 10, core.NewRect(0, 0, 4, 4))
	g.player.Pos = core.Point{X: 0, Y: 0}

	if res := g.MovePlayer(-1, 0); res.Taken {
		t.Error("moving off the map consumed a turn")
	}
	if res := g.MovePlayer(0, -1); res.Taken {
		t.Error("moving off the map consumed a turn")
	}
	if g.player.Pos != (core.Point{}) || g.turns != 0 {
		t.Errorf("player %+v turns %d, expected unchanged", g.player.Pos, g.turns)
	}
}

func TestMoveOntoFloor(t *testing.T) {
	g := newTestGame(t, 1)
	installLevel(g, 20, 10, core.NewRect(1, 1, 8, 8))
	g.player.Pos = core.Point{X: 3, Y: 3}

	res := g.MovePlayer(1, 1)
	if !res.Taken || g.turns != 1 {
		t.Errorf("move should consume one turn, got taken=%v turns=%d", res.Taken, g.turns)
	}
	if g.player.Pos != (core.Point{X: 4, Y: 4}) {
		t.Errorf("player at %+v, expected (4, 4)", g.player.Pos)
	}
}

func TestPlayerKillsGoblinInTwoHits(t *testing.T) {
	g := newTestGame(t, 99)
	installLevel(g, 30, 12, core.NewRect(1, 1, 20, 10))
	g.player.Pos = core.Point{X: 5, Y: 5}
	addEnemy(g, entity.Goblin, 6, 5)

	first := g.MovePlayer(1, 0)
	goblin := g.enemies[0]

	if !first.Taken || g.turns != 1 {
		t.Fatalf("attack should consume a turn, turns = %d", g.turns)
	}
	if len(first.Events) == 0 || first.Events[0].Kind != EventAttack {
		t.Fatalf("first event = %+v, expected an attack", first.Events)
	}
	if dmg := first.Events[0].Amount; dmg < 9 || dmg > 13 {
		t.Errorf("damage %d outside [9, 13]", dmg)
	}
	if !goblin.Active || goblin.Stats.HP != 15-first.Events[0].Amount {
		t.Errorf("goblin after one hit = %+v", goblin)
	}
	if g.player.Pos != (core.Point{X: 5, Y: 5}) {
		t.Errorf("player should attack in place, moved to %+v", g.player.Pos)
	}
	if !first.Has(EventPlayerHit) {
		t.Error("surviving adjacent goblin should strike back")
	}
	if g.kills != 0 {
		t.Errorf("kills = %d, expected 0", g.kills)
	}

	second := g.MovePlayer(1, 0)
	goblin = g.enemies[0]

	if goblin.Active {
		t.Fatal("goblin should be defeated by the second hit")
	}
	if !second.Has(EventKill) {
		t.Errorf("expected a kill event, got %+v", second.Events)
	}
	if g.kills != 1 || g.turns != 2 {
		t.Errorf("kills/turns = %d/%d, expected 1/2", g.kills, g.turns)
	}
	if g.player.Pos != (core.Point{X: 6, Y: 5}) {
		t.Errorf("player at %+v, expected to step onto (6, 5)", g.player.Pos)
	}
	if g.player.XP != 10 {
		t.Errorf("XP = %d, expected 10", g.player.XP)
	}
	if g.lastDefeated != goblin.Name {
		t.Errorf("lastDefeated = %q, expected %q", g.lastDefeated, goblin.Name)
	}
}

func TestKillTriggersLevelUp(t *testing.T) {
	g := newTestGame(t, 5)
	installLevel(g, 30, 12, core.NewRect(1, 1, 20, 10))
	g.player.Pos = core.Point{X: 5, Y: 5}
	g.player.XP = 95
	e := addEnemy(g, entity.Goblin, 6, 5)
	e.Stats.HP = 1
	g.player.Stats.HP = 50

	res := g.MovePlayer(1, 0)

	if !res.Has(EventLevelUp) {
		t.Fatalf("expected a level up, got %+v", res.Events)
	}
	if g.player.Level != 2 || g.player.Stats.HP != 110 {
		t.Errorf("level %d HP %d, expected level 2 at full 110", g.player.Level, g.player.Stats.HP)
	}
}

func TestEnemyPursuesPlayer(t *testing.T) {
	g := newTestGame(t, 3)
	installLevel(g, 30, 20, core.NewRect(1, 1, 20, 15))
	g.player.Pos = core.Point{X: 10, Y: 10}
	addEnemy(g, entity.Orc, 4, 3)

	g.Wait()
	if got := g.enemies[0].Pos; got != (core.Point{X: 5, Y: 4}) {
		t.Errorf("enemy moved to %+v, expected diagonal step to (5, 4)", got)
	}
}

func TestEnemyBlockedByWallWaits(t *testing.T) {
	g := newTestGame(t, 3)
	installLevel(g, 30, 12, core.NewRect(1, 1, 5, 5), core.NewRect(10, 1, 5, 5))
	g.player.Pos = core.Point{X: 12, Y: 3}
	addEnemy(g, entity.Skeleton, 5, 3)

	g.Wait()
	if got := g.enemies[0].Pos; got != (core.Point{X: 5, Y: 3}) {
		t.Errorf("enemy walked through a wall to %+v", got)
	}
}

func TestEnemySlotOrderClaimsContestedTile(t *testing.T) {
	g := newTestGame(t, 3)
	installLevel(g, 30, 20, core.NewRect(1, 1, 20, 15))
	g.player.Pos = core.Point{X: 10, Y: 5}
	addEnemy(g, entity.Goblin, 8, 4)
	addEnemy(g, entity.Goblin, 8, 6)

	g.Wait()
	if got := g.enemies[0].Pos; got != (core.Point{X: 9, Y: 5}) {
		t.Errorf("first slot at %+v, expected (9, 5)", got)
	}
	if got := g.enemies[1].Pos; got != (core.Point{X: 8, Y: 6}) {
		t.Errorf("second slot at %+v, expected to stay at (8, 6)", got)
	}
}

func TestInactiveEnemiesAreIgnored(t *testing.T) {
	g := newTestGame(t, 3)
	installLevel(g, 30, 12, core.NewRect(1, 1, 20, 10))
	g.player.Pos = core.Point{X: 5, Y: 5}
	dead := addEnemy(g, entity.Troll, 6, 5)
	dead.Active = false
	addEnemy(g, entity.Goblin, 15, 8)

	res := g.MovePlayer(1, 0)
	if res.Has(EventAttack) {
		t.Error("inactive enemy should not be attacked")
	}
	if g.player.Pos != (core.Point{X: 6, Y: 5}) {
		t.Errorf("inactive enemy should not block, player at %+v", g.player.Pos)
	}
	if g.enemies[0].Pos != (core.Point{X: 6, Y: 5}) {
		t.Error("inactive enemy should not move")
	}
}

func TestPlayerDefeatEndsGame(t *testing.T) {
	g := newTestGame(t, 11)
	installLevel(g, 30, 12, core.NewRect(1, 1, 20, 10))
	g.player.Pos = core.Point{X: 5, Y: 5}
	g.player.Stats.HP = 1
	addEnemy(g, entity.Troll, 6, 5)
	addEnemy(g, entity.Goblin, 9, 5)

	res := g.Wait()

	if !res.Has(EventPlayerDefeated) {
		t.Fatalf("expected defeat, got %+v", res.Events)
	}
	st := g.State()
	if st.State != core.StateGameOver || !st.GameOver {
		t.Errorf("state = %+v, expected game over", st)
	}
	if g.enemies[0].Pos != (core.Point{X: 6, Y: 5}) {
		t.Error("attacking enemy should not move onto the player")
	}
	if g.enemies[1].Pos != (core.Point{X: 9, Y: 5}) {
		t.Error("enemies after the killing blow should not act")
	}
	if g.player.Stats.HP != 0 {
		t.Errorf("HP = %d, expected 0", g.player.Stats.HP)
	}

	if res := g.MovePlayer(1, 0); res.Taken {
		t.Error("moves after game over should be ignored")
	}

	step := g.Step(core.FrameOf(core.ActionRestart))
	if step.State.State != core.StatePlaying || step.State.Depth != 1 {
		t.Errorf("restart state = %+v", step.State)
	}
	if g.player.Stats.HP != g.player.Stats.MaxHP {
		t.Error("restart should create a fresh player")
	}
}

func TestStairsAppearOnceWhenCleared(t *testing.T) {
	g := newTestGame(t, 21)
	installLevel(g, 40, 20, core.NewRect(1, 1, 6, 6), core.NewRect(20, 5, 8, 6))
	g.player.Pos = core.Point{X: 3, Y: 3}
	e := addEnemy(g, entity.Goblin, 25, 8)
	e.Active = false

	res := g.Wait()
	if !res.Has(EventStairsAppeared) {
		t.Fatalf("expected stairs event, got %+v", res.Events)
	}
	if !g.waitingForStairs {
		t.Error("waiting flag should be set")
	}
	want := core.NewRect(20, 5, 8, 6).Center()
	if tiles := stairsTiles(g.level); len(tiles) != 1 || tiles[0] != want {
		t.Errorf("stairs at %v, expected only %+v", tiles, want)
	}

	for i := 0; i < 3; i++ {
		res := g.Wait()
		if res.Has(EventStairsAppeared) {
			t.Fatal("stairs should be placed only once")
		}
	}
	if tiles := stairsTiles(g.level); len(tiles) != 1 {
		t.Errorf("found %d stairs tiles, expected 1", len(tiles))
	}
}

func TestStairsFallbackWhenCenterBlocked(t *testing.T) {
	g := newTestGame(t, 21)
	last := core.NewRect(20, 5, 8, 6)
	installLevel(g, 40, 20, core.NewRect(1, 1, 6, 6), last)
	g.player.Pos = last.Center()

	g.Wait()

	tiles := stairsTiles(g.level)
	if len(tiles) != 1 {
		t.Fatalf("found %d stairs tiles, expected 1", len(tiles))
	}
	if tiles[0] == g.player.Pos {
		t.Error("stairs placed under the player")
	}
	if !last.Contains(tiles[0].X, tiles[0].Y) {
		t.Errorf("stairs at %+v, expected inside the last room", tiles[0])
	}
	if tiles[0] != (core.Point{X: 20, Y: 5}) {
		t.Errorf("stairs at %+v, expected first free tile (20, 5)", tiles[0])
	}
}

func TestDescendViaStairs(t *testing.T) {
	g := newTestGame(t, 33)
	installLevel(g, 60, 30, core.NewRect(1, 1, 6, 6), core.NewRect(20, 5, 8, 6))
	g.player.Pos = core.Point{X: 3, Y: 3}
	g.Wait()
	if !g.waitingForStairs {
		t.Fatal("stairs should be placed on an empty level")
	}

	g.player.Pos = g.stairs.Add(-1, 0)
	res := g.MovePlayer(1, 0)

	if !res.Has(EventDescended) {
		t.Fatalf("expected descent, got %+v", res.Events)
	}
	if g.depth != 2 || g.waitingForStairs {
		t.Errorf("depth %d waiting %v, expected 2 and false", g.depth, g.waitingForStairs)
	}
	if g.banner.Text != "Dungeon Level 2!" || g.banner.Boss {
		t.Errorf("banner = %+v", g.banner)
	}
	if len(stairsTiles(g.level)) != 0 {
		t.Error("new level should not have stairs yet")
	}
	if g.player.Pos != g.level.SpawnPoint() {
		t.Errorf("player at %+v, expected new spawn %+v", g.player.Pos, g.level.SpawnPoint())
	}
}

func TestStairsIgnoredUntilLevelCleared(t *testing.T) {
	g := newTestGame(t, 33)
	installLevel(g, 30, 12, core.NewRect(1, 1, 20, 10))
	g.player.Pos = core.Point{X: 3, Y: 3}
	g.level.Set(4, 3, dungeon.TileStairsDown)
	addEnemy(g, entity.Goblin, 18, 9)

	res := g.MovePlayer(1, 0)
	if res.Has(EventDescended) || g.depth != 1 {
		t.Error("stairs should not work while enemies remain")
	}
	if g.player.Pos != (core.Point{X: 4, Y: 3}) {
		t.Errorf("player should stand on the stairs tile, at %+v", g.player.Pos)
	}
}

func TestBossBannerOnBossLevel(t *testing.T) {
	g := newTestGame(t, 33)
	g.depth = 4
	installLevel(g, 60, 30, core.NewRect(1, 1, 6, 6), core.NewRect(20, 5, 8, 6))
	g.player.Pos = core.Point{X: 3, Y: 3}
	g.Wait()

	g.player.Pos = g.stairs.Add(-1, 0)
	res := g.MovePlayer(1, 0)

	if g.depth != 5 {
		t.Fatalf("depth = %d, expected 5", g.depth)
	}
	if !g.banner.Boss || g.banner.Text != "BOSS LEVEL 5 - Prepare for Battle!" {
		t.Errorf("banner = %+v", g.banner)
	}
	for _, e := range res.Events {
		if e.Kind == EventDescended && !strings.HasPrefix(e.Message(), "BOSS LEVEL 5") {
			t.Errorf("descent message = %q", e.Message())
		}
	}
}

func TestQuitNeedsConfirmation(t *testing.T) {
	g := newTestGame(t, 2)

	res := g.Step(core.FrameOf(core.ActionQuit))
	if !g.PendingQuit() || res.TurnTaken || res.State.Quit {
		t.Fatalf("quit should open the prompt, got %+v", res)
	}

	turns := g.turns
	pos := g.player.Pos
	res = g.Step(core.FrameOf(core.ActionMoveE))
	if g.PendingQuit() || res.State.Quit {
		t.Error("any other key should cancel the prompt")
	}
	if g.turns != turns || g.player.Pos != pos {
		t.Error("the cancelling key should not act")
	}

	g.Step(core.FrameOf(core.ActionQuit))
	res = g.Step(core.FrameOf(core.ActionConfirm))
	if !res.State.Quit || res.State.State != core.StateQuit {
		t.Errorf("confirm should quit, got %+v", res.State)
	}

	if res := g.Step(core.FrameOf(core.ActionWait)); res.TurnTaken {
		t.Error("quit session should ignore input")
	}
}

func TestOverlaysDoNotConsumeTurns(t *testing.T) {
	g := newTestGame(t, 2)

	res := g.Step(core.FrameOf(core.ActionInventory))
	if res.TurnTaken || g.overlay != OverlayInventory {
		t.Fatalf("inventory should open without a turn, overlay=%v", g.overlay)
	}

	pos := g.player.Pos
	g.Step(core.FrameOf(core.ActionMoveE))
	if g.overlay != OverlayNone || g.player.Pos != pos || g.turns != 0 {
		t.Error("a key in an overlay should only close it")
	}

	g.Step(core.FrameOf(core.ActionHelp))
	if g.overlay != OverlayHelp {
		t.Fatal("help should open")
	}
	g.Step(core.FrameOf(core.ActionHelp))
	if g.overlay != OverlayNone {
		t.Error("help key should toggle the overlay closed")
	}
}

func TestWaitConsumesTurn(t *testing.T) {
	g := newTestGame(t, 2)
	pos := g.player.Pos

	res := g.Step(core.FrameOf(core.ActionWait))
	if !res.TurnTaken || res.State.Turns != 1 {
		t.Errorf("wait should take a turn, got %+v", res)
	}
	if g.player.Pos != pos {
		t.Error("wait should not move the player")
	}
}

func TestMessagesAreCapped(t *testing.T) {
	g := newTestGame(t, 2)
	for i := 0; i < 10; i++ {
		g.pushMessage("line")
	}
	g.pushMessage("")
	if len(g.messages) != maxMessages {
		t.Errorf("kept %d messages, expected %d", len(g.messages), maxMessages)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, 8)
	s := g.Snapshot()

	s.Player.Stats.HP = -50
	if len(s.Enemies) > 0 {
		s.Enemies[0].Active = false
	}
	s.Level.Set(s.Player.Pos.X, s.Player.Pos.Y, dungeon.TileWall)

	if g.player.Stats.HP == -50 {
		t.Error("snapshot shares the player")
	}
	if len(g.enemies) > 0 && !g.enemies[0].Active {
		t.Error("snapshot shares the enemy arena")
	}
	if g.level.At(g.player.Pos.X, g.player.Pos.Y) == dungeon.TileWall {
		t.Error("snapshot shares the level")
	}
}
