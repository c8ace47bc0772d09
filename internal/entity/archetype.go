// Package entity defines the player, enemy archetypes and items, and the
// experience curve that grows the player between fights.
package entity

// Archetype identifies an enemy template.
type Archetype int

const (
	Goblin Archetype = iota
	Orc
	Skeleton
	Troll
	Dragon
	DemonLord
	LichKing
)

// Template is the fixed stat block of an archetype.
type Template struct {
	Symbol  rune
	Name    string
	HP      int
	Attack  int
	Defense int
	XP      int
	Boss    bool
}

var templates = map[Archetype]Template{
	Goblin:    {Symbol: 'G', Name: "Goblin", HP: 15, Attack: 4, Defense: 1, XP: 10},
	Orc:       {Symbol: 'O', Name: "Orc", HP: 25, Attack: 7, Defense: 2, XP: 20},
	Skeleton:  {Symbol: 'S', Name: "Skeleton", HP: 20, Attack: 6, Defense: 0, XP: 15},
	Troll:     {Symbol: 'T', Name: "Troll", HP: 40, Attack: 10, Defense: 4, XP: 30},
	Dragon:    {Symbol: 'D', Name: "Ancient Dragon", HP: 120, Attack: 18, Defense: 8, XP: 200, Boss: true},
	DemonLord: {Symbol: 'L', Name: "Demon Lord", HP: 180, Attack: 25, Defense: 12, XP: 400, Boss: true},
	LichKing:  {Symbol: 'K', Name: "Lich King", HP: 250, Attack: 35, Defense: 15, XP: 600, Boss: true},
}

// TemplateOf returns the template for a. Unknown archetypes get goblin stats.
func TemplateOf(a Archetype) Template {
	if t, ok := templates[a]; ok {
		return t
	}
	return templates[Goblin]
}

// IsBoss reports whether a is a boss archetype.
func (a Archetype) IsBoss() bool {
	return TemplateOf(a).Boss
}

// String returns the archetype name.
func (a Archetype) String() string {
	switch a {
	case Goblin:
		return "goblin"
	case Orc:
		return "orc"
	case Skeleton:
		return "skeleton"
	case Troll:
		return "troll"
	case Dragon:
		return "dragon"
	case DemonLord:
		return "demon_lord"
	case LichKing:
		return "lich_king"
	default:
		return "unknown"
	}
}
