package entity

import "github.com/vovakirdan/castle-crawler/internal/core"

// Player defaults for a new game.
const (
	PlayerSymbol       = 'C'
	DefaultPlayerHP    = 100
	DefaultBaseAttack  = 10
	DefaultBaseDefense = 2
)

// Player is the hero. Stats.Attack and Stats.Defense are derived from the
// base values and the equipped weapon; call RecalculateStats after changing
// either.
type Player struct {
	Pos    core.Point
	Symbol rune
	Name   string

	Level    int
	XP       int
	XPToNext int

	BaseAttack  int
	BaseDefense int
	Stats       Stats

	Weapon Item
}

// NewPlayer creates a level 1 player wielding the starter weapon.
// maxHP <= 0 selects DefaultPlayerHP.
func NewPlayer(name string, maxHP int) *Player {
	if maxHP <= 0 {
		maxHP = DefaultPlayerHP
	}
	p := &Player{
		Symbol:      PlayerSymbol,
		Name:        name,
		Level:       1,
		XPToNext:    XPForLevel(1),
		BaseAttack:  DefaultBaseAttack,
		BaseDefense: DefaultBaseDefense,
		Stats: Stats{
			MaxHP: maxHP,
			HP:    maxHP,
		},
	}
	p.EquipWeapon(NewWeapon(StarterWeaponName, StarterWeaponBonus))
	return p
}

// EquipWeapon replaces the weapon slot with w.
func (p *Player) EquipWeapon(w Item) {
	w.Equipped = true
	p.Weapon = w
	p.RecalculateStats()
}

// HasWeapon reports whether a weapon is equipped.
func (p *Player) HasWeapon() bool {
	return p.Weapon.Equipped
}

// RecalculateStats derives attack and defense from base values and equipment.
func (p *Player) RecalculateStats() {
	p.Stats.Attack = p.BaseAttack
	if p.HasWeapon() {
		p.Stats.Attack += p.Weapon.AttackBonus
	}
	p.Stats.Defense = p.BaseDefense
}

// Defeated reports whether the player has run out of HP.
func (p *Player) Defeated() bool {
	return p.Stats.HP <= 0
}
