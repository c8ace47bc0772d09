package entity

// MaxLevel is the player level cap.
const MaxLevel = 18

// Stat growth per level.
const (
	levelAttackGain  = 2
	levelDefenseGain = 1
	levelHPGain      = 10
)

// XPForLevel returns the experience needed to advance past level.
// It is 0 at MaxLevel, meaning no further advancement.
func XPForLevel(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return level * 100
}

// GainExperience awards amount XP and applies every level-up it pays for.
// Each level raises base attack, base defense and max HP, and fully heals.
// Returns the number of levels gained. XP beyond the cap is retained.
func GainExperience(p *Player, amount int) int {
	p.XP += amount

	gained := 0
	for p.Level < MaxLevel && p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		gained++

		p.BaseAttack += levelAttackGain
		p.BaseDefense += levelDefenseGain
		p.Stats.MaxHP += levelHPGain
		p.Stats.HP = p.Stats.MaxHP
		p.XPToNext = XPForLevel(p.Level)
	}

	if gained > 0 {
		p.RecalculateStats()
	}
	return gained
}
