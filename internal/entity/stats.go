package entity

// Stats is the combat block shared by the player and enemies.
type Stats struct {
	MaxHP   int
	HP      int
	Attack  int
	Defense int
}

// Alive reports whether HP is above zero.
func (s Stats) Alive() bool {
	return s.HP > 0
}
