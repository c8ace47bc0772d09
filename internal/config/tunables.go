// Package config provides the player settings file, YAML dungeon tunables
// and difficulty presets for the crawler.
package config

// Tunables holds the dungeon generation and population parameters.
type Tunables struct {
	Map     MapConfig     `yaml:"map"`
	Rooms   RoomConfig    `yaml:"rooms"`
	Enemies EnemiesConfig `yaml:"enemies"`
}

// MapConfig defines the dungeon grid size.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomConfig defines room generation limits.
type RoomConfig struct {
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
	Max      int `yaml:"max"`
	Attempts int `yaml:"attempts"` // Placement tries per level
}

// EnemiesConfig defines population limits.
type EnemiesConfig struct {
	Max               int `yaml:"max"`                // Arena capacity
	PlacementAttempts int `yaml:"placement_attempts"` // Tries per enemy before it is dropped
	BossEvery         int `yaml:"boss_every"`         // Depth cadence of boss levels
}

// DefaultTunables returns the classic 60x30 dungeon parameters.
func DefaultTunables() Tunables {
	return Tunables{
		Map: MapConfig{
			Width:  60,
			Height: 30,
		},
		Rooms: RoomConfig{
			MinSize:  4,
			MaxSize:  10,
			Max:      8,
			Attempts: 30,
		},
		Enemies: EnemiesConfig{
			Max:               10,
			PlacementAttempts: 50,
			BossEvery:         5,
		},
	}
}

// Normalize replaces zero or negative fields with their defaults and orders
// the room size bounds.
func (t *Tunables) Normalize() {
	d := DefaultTunables()
	orDefault(&t.Map.Width, d.Map.Width)
	orDefault(&t.Map.Height, d.Map.Height)
	orDefault(&t.Rooms.MinSize, d.Rooms.MinSize)
	orDefault(&t.Rooms.MaxSize, d.Rooms.MaxSize)
	orDefault(&t.Rooms.Max, d.Rooms.Max)
	orDefault(&t.Rooms.Attempts, d.Rooms.Attempts)
	orDefault(&t.Enemies.Max, d.Enemies.Max)
	orDefault(&t.Enemies.PlacementAttempts, d.Enemies.PlacementAttempts)
	orDefault(&t.Enemies.BossEvery, d.Enemies.BossEvery)

	if t.Rooms.MinSize > t.Rooms.MaxSize {
		t.Rooms.MinSize, t.Rooms.MaxSize = t.Rooms.MaxSize, t.Rooms.MinSize
	}
	t.Rooms.MinSize = max(t.Rooms.MinSize, minRoomSize)
	t.Rooms.MaxSize = max(t.Rooms.MaxSize, t.Rooms.MinSize)
}

// minRoomSize is the smallest room with a one-tile interior.
const minRoomSize = 3

func orDefault(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}
