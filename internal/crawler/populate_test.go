package crawler

import (
	"strings"
	"testing"

	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

func TestBossFor(t *testing.T) {
	tests := []struct {
		depth int
		want  entity.Archetype
	}{
		{5, entity.Dragon},
		{10, entity.Dragon},
		{15, entity.DemonLord},
		{20, entity.DemonLord},
		{25, entity.LichKing},
		{50, entity.LichKing},
	}
	for _, tt := range tests {
		if got := bossFor(tt.depth); got != tt.want {
			t.Errorf("bossFor(%d) = %s, expected %s", tt.depth, got, tt.want)
		}
	}
}

func TestIsBossLevel(t *testing.T) {
	g := newTestGame(t, 1)
	for depth, want := range map[int]bool{1: false, 4: false, 5: true, 6: false, 10: true, 15: true} {
		if got := g.isBossLevel(depth); got != want {
			t.Errorf("isBossLevel(%d) = %v, expected %v", depth, got, want)
		}
	}
}

func TestEnemyCount(t *testing.T) {
	tests := []struct {
		name  string
		rate  int
		depth int
		want  int
	}{
		{"normal first level", 4, 1, 3},
		{"normal second level", 4, 2, 3},
		{"normal third level", 4, 3, 4},
		{"normal depth six", 4, 6, 5},
		{"easy first level", 2, 1, 2},
		{"hard first level", 8, 1, 4},
		{"hard deep level capped", 8, 20, 10},
		{"lowest spawn rate", 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			s.EnemySpawnRate = tt.rate
			g := New(s, config.DefaultTunables(), nil)
			if got := g.enemyCount(tt.depth); got != tt.want {
				t.Errorf("enemyCount(%d) = %d, expected %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestEnemyCountRespectsArenaCap(t *testing.T) {
	tun := config.DefaultTunables()
	tun.Enemies.Max = 2
	g := New(config.DefaultSettings(), tun, nil)
	if got := g.enemyCount(9); got != 2 {
		t.Errorf("enemyCount = %d, expected cap 2", got)
	}
}

func TestRollArchetype(t *testing.T) {
	tests := []struct {
		depth, roll int
		want        entity.Archetype
	}{
		{1, 0, entity.Goblin},
		{1, 69, entity.Goblin},
		{1, 70, entity.Skeleton},
		{1, 89, entity.Skeleton},
		{1, 90, entity.Orc},
		{1, 99, entity.Orc},
		{2, 39, entity.Goblin},
		{2, 40, entity.Skeleton},
		{3, 69, entity.Skeleton},
		{3, 70, entity.Orc},
		{3, 94, entity.Orc},
		{3, 95, entity.Troll},
		{4, 19, entity.Goblin},
		{4, 20, entity.Skeleton},
		{7, 40, entity.Orc},
		{7, 69, entity.Orc},
		{9, 70, entity.Troll},
		{9, 99, entity.Troll},
	}
	for _, tt := range tests {
		if got := rollArchetype(tt.depth, tt.roll); got != tt.want {
			t.Errorf("rollArchetype(%d, %d) = %s, expected %s", tt.depth, tt.roll, got, tt.want)
		}
	}
}

func TestPopulatePlacesEnemiesInRoomInteriors(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGame(t, seed)

		if len(g.enemies) > g.enemyCount(1) {
			t.Fatalf("seed %d: %d enemies, expected at most %d", seed, len(g.enemies), g.enemyCount(1))
		}
		seen := make(map[core.Point]bool)
		for i, e := range g.enemies {
			if !e.Active || e.Archetype.IsBoss() {
				t.Errorf("seed %d: enemy %+v should be an active normal enemy", seed, e)
			}
			if !g.level.Walkable(e.Pos.X, e.Pos.Y) {
				t.Errorf("seed %d: enemy on non-walkable tile %+v", seed, e.Pos)
			}
			if e.Pos == g.player.Pos {
				t.Errorf("seed %d: enemy spawned on the player", seed)
			}
			if seen[e.Pos] {
				t.Errorf("seed %d: two enemies share %+v", seed, e.Pos)
			}
			seen[e.Pos] = true
			if base := entity.TemplateOf(e.Archetype).Name; !strings.HasPrefix(e.Name, base+" ") {
				t.Errorf("seed %d: enemy name %q lacks a spawn index", seed, e.Name)
			}
			if i > 0 && e.ID != g.enemies[i-1].ID+1 {
				t.Errorf("seed %d: IDs %d then %d", seed, g.enemies[i-1].ID, e.ID)
			}
		}
	}
}

func TestBossLevelSpawnsSingleBoss(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newTestGame(t, seed)
		g.enterLevel(5)

		if g.level.RoomCount() == 0 {
			continue
		}
		if len(g.enemies) != 1 {
			t.Fatalf("seed %d: boss level has %d enemies, expected 1", seed, len(g.enemies))
		}
		boss := g.enemies[0]
		if boss.Archetype != entity.Dragon || boss.Name != "Ancient Dragon (Lv.5 Boss)" {
			t.Errorf("seed %d: boss = %s %q", seed, boss.Archetype, boss.Name)
		}
		if boss.Pos == g.player.Pos {
			t.Errorf("seed %d: boss spawned on the player", seed)
		}

		largest, _ := g.level.LargestRoom()
		if largest.Center() != g.player.Pos && boss.Pos != largest.Center() {
			t.Errorf("seed %d: boss at %+v, expected largest room center %+v", seed, boss.Pos, largest.Center())
		}
	}
}

func TestBossAvoidsPlayerInLargestRoom(t *testing.T) {
	g := newTestGame(t, 4)
	big := core.NewRect(2, 2, 12, 8)
	small := core.NewRect(30, 4, 6, 5)
	installLevel(g, 60, 30, big, small)
	g.player.Pos = big.Center()
	g.depth = 5

	g.populateLevel()

	if len(g.enemies) != 1 || g.enemies[0].Pos != small.Center() {
		t.Errorf("boss = %+v, expected at %+v", g.enemies, small.Center())
	}
}

func TestBossInSingleRoomFallsBackToRandomSpot(t *testing.T) {
	g := newTestGame(t, 4)
	only := core.NewRect(2, 2, 12, 8)
	installLevel(g, 60, 30, only)
	g.player.Pos = only.Center()
	g.depth = 10

	g.populateLevel()

	if len(g.enemies) != 1 {
		t.Fatalf("expected one boss, got %d enemies", len(g.enemies))
	}
	boss := g.enemies[0]
	if boss.Pos == g.player.Pos || !only.Contains(boss.Pos.X, boss.Pos.Y) {
		t.Errorf("boss at %+v, expected a free tile inside %+v", boss.Pos, only)
	}
	if boss.Name != "Ancient Dragon (Lv.10 Boss)" {
		t.Errorf("boss name = %q", boss.Name)
	}
}

func TestEnemyIDsStrictlyIncrease(t *testing.T) {
	g := newTestGame(t, 77)
	last := 0
	for depth := 1; depth <= 8; depth++ {
		if depth > 1 {
			g.enterLevel(depth)
		}
		for _, e := range g.enemies {
			if e.ID <= last {
				t.Fatalf("depth %d: enemy ID %d not above %d", depth, e.ID, last)
			}
			last = e.ID
		}
	}
	if g.nextID != last+1 {
		t.Errorf("nextID = %d, expected %d", g.nextID, last+1)
	}
}

func TestDegenerateLevelHasNoRoomsOrEnemies(t *testing.T) {
	tun := config.DefaultTunables()
	tun.Map.Width, tun.Map.Height = 8, 8
	tun.Rooms.MinSize, tun.Rooms.MaxSize = 10, 10

	g := New(config.DefaultSettings(), tun, nil)
	g.Reset(core.RuntimeConfig{Seed: 3})

	if g.level.RoomCount() != 0 || len(g.enemies) != 0 {
		t.Fatalf("rooms %d enemies %d, expected none", g.level.RoomCount(), len(g.enemies))
	}
	if g.player.Pos != (core.Point{X: 4, Y: 4}) {
		t.Errorf("player at %+v, expected map center", g.player.Pos)
	}

	res := g.Wait()
	if !res.Taken || res.Has(EventStairsAppeared) || g.waitingForStairs {
		t.Error("a level without rooms cannot place stairs")
	}
	if res := g.MovePlayer(1, 0); res.Taken {
		t.Error("player should be walled in")
	}
}

