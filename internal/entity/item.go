package entity

// ItemType tags what kind of item an Item is.
type ItemType int

const (
	ItemWeapon ItemType = iota
)

// Starting equipment.
const (
	StarterWeaponName  = "Rusty Sword"
	StarterWeaponBonus = 2
)

// Item is a piece of equipment.
type Item struct {
	Name         string
	Type         ItemType
	AttackBonus  int
	DefenseBonus int // Reserved; always 0 for weapons
	Equipped     bool
}

// NewWeapon returns an unequipped weapon.
func NewWeapon(name string, attackBonus int) Item {
	return Item{
		Name:        name,
		Type:        ItemWeapon,
		AttackBonus: attackBonus,
	}
}
