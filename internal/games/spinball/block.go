package spinball

// HitOutcome is the result of a ball touching a block.
type HitOutcome int

const (
	HitNone        HitOutcome = iota // No contact
	HitPassThrough                   // Ghost block let the ball through untouched
	HitAbsorbed                      // Shield took the hit without damage
	HitDamaged                       // Health dropped, block survives
	HitDestroyed                     // Health reached zero
)

// String returns the name of the outcome.
func (o HitOutcome) String() string {
	switch o {
	case HitNone:
		return "none"
	case HitPassThrough:
		return "pass-through"
	case HitAbsorbed:
		return "absorbed"
	case HitDamaged:
		return "damaged"
	case HitDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Contact reports whether the ball physically hit the block.
// A ghost pass-through is not a hit.
func (o HitOutcome) Contact() bool {
	return o != HitNone && o != HitPassThrough
}

// Modifiers are the round's power-up effects as seen by the resolver.
// They are passed by value so the resolver can never change game state.
type Modifiers struct {
	DoubleDamage bool
	DoubleSpeed  bool
	SpeedScale   float64 // Survival scale; 0 means 1
}

// SpeedMultiplier is the integration multiplier for one tick.
func (m Modifiers) SpeedMultiplier() float64 {
	mult := 1.0
	if m.DoubleSpeed {
		mult = 2.0
	}
	if m.SpeedScale > 0 {
		mult *= m.SpeedScale
	}
	return mult
}

// Damage is the health removed by one qualifying hit.
func (m Modifiers) Damage() int {
	if m.DoubleDamage {
		return 2
	}
	return 1
}

// HitRules are the per-type tunables used by Block.Hit.
type HitRules struct {
	GhostPassChance float64
	ShieldHits      int // Hit number that finally damages a shield
}

// Hit applies one ball hit to the block.
//
// Ghost blocks roll against GhostPassChance and let the ball through on
// success. Shield blocks count every hit and only take damage from hit
// number ShieldHits onward, whatever the damage amount.
func (b *Block) Hit(mods Modifiers, rng Random, rules HitRules) HitOutcome {
	if !b.Active {
		return HitNone
	}

	switch b.Type {
	case BlockGhost:
		if rng.Float64() < rules.GhostPassChance {
			return HitPassThrough
		}
	case BlockShield:
		b.ShieldHitsTaken++
		if b.ShieldHitsTaken < rules.ShieldHits {
			return HitAbsorbed
		}
	}

	b.Health = max(b.Health-mods.Damage(), 0)
	if b.Health == 0 {
		b.Active = false
		return HitDestroyed
	}
	return HitDamaged
}
