package entity

import "github.com/vovakirdan/castle-crawler/internal/core"

// Enemy is one slot of a level's enemy roster.
// Defeated enemies stay in their slot with Active cleared.
type Enemy struct {
	ID        int
	Pos       core.Point
	Symbol    rune
	Name      string
	Active    bool
	Archetype Archetype
	Stats     Stats
	XP        int // Experience awarded on defeat
}

// NewEnemy builds an active enemy of archetype a at full health.
func NewEnemy(id int, a Archetype) Enemy {
	t := TemplateOf(a)
	if _, ok := templates[a]; !ok {
		a = Goblin
	}
	return Enemy{
		ID:        id,
		Symbol:    t.Symbol,
		Name:      t.Name,
		Active:    true,
		Archetype: a,
		Stats: Stats{
			MaxHP:   t.HP,
			HP:      t.HP,
			Attack:  t.Attack,
			Defense: t.Defense,
		},
		XP: t.XP,
	}
}
