// Package combat resolves attacks between two stat blocks.
package combat

import (
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/entity"
)

// Outcome is the result of one attack.
type Outcome struct {
	Damage   int
	Defeated bool // Defender HP reached zero
}

// CalculateDamage returns attack minus defense (at least 1) with up to a
// quarter of it added or removed at random, floored at 1 again.
func CalculateDamage(attack, defense int, rng *core.RNG) int {
	base := max(attack-defense, 1)
	variation := max(base/4, 1)
	return max(base+rng.Range(-variation, variation), 1)
}

// DamageRange returns the bounds CalculateDamage can produce.
func DamageRange(attack, defense int) (lo, hi int) {
	base := max(attack-defense, 1)
	variation := max(base/4, 1)
	return max(base-variation, 1), base + variation
}

// ResolveAttack applies one attack from attacker to defender.
// The defender's HP does not drop below zero.
func ResolveAttack(attacker, defender *entity.Stats, rng *core.RNG) Outcome {
	dmg := CalculateDamage(attacker.Attack, defender.Defense, rng)
	defender.HP = max(defender.HP-dmg, 0)
	return Outcome{
		Damage:   dmg,
		Defeated: defender.HP <= 0,
	}
}
