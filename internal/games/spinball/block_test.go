package spinball

import "testing"

var testRules = HitRules{GhostPassChance: 0.3, ShieldHits: 3}

func TestBlockHit(t *testing.T) {
	tests := []struct {
		name       string
		typ        BlockType
		health     int
		mods       Modifiers
		rolls      []float64
		want       HitOutcome
		wantHealth int
	}{
		{"normal damaged", BlockNormal, 3, Modifiers{}, nil, HitDamaged, 2},
		{"normal destroyed", BlockNormal, 1, Modifiers{}, nil, HitDestroyed, 0},
		{"double damage", BlockNormal, 3, Modifiers{DoubleDamage: true}, nil, HitDamaged, 1},
		{"double damage floors at zero", BlockNormal, 1, Modifiers{DoubleDamage: true}, nil, HitDestroyed, 0},
		{"ghost passes", BlockGhost, 2, Modifiers{}, []float64{0.1}, HitPassThrough, 2},
		{"ghost caught", BlockGhost, 2, Modifiers{}, []float64{0.5}, HitDamaged, 1},
		{"shield absorbs first hit", BlockShield, 2, Modifiers{}, nil, HitAbsorbed, 2},
		{"bomb damaged", BlockBomb, 2, Modifiers{}, nil, HitDamaged, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBlock(0, 0, 56, tc.health, tc.typ)
			got := b.Hit(tc.mods, &scriptedRNG{floats: tc.rolls}, testRules)
			if got != tc.want {
				t.Errorf("Hit() = %v, expected %v", got, tc.want)
			}
			if b.Health != tc.wantHealth {
				t.Errorf("health = %d, expected %d", b.Health, tc.wantHealth)
			}
			if b.Active != (tc.wantHealth > 0) {
				t.Errorf("active = %v with health %d", b.Active, b.Health)
			}
		})
	}
}

func TestShieldGate(t *testing.T) {
	for _, mods := range []Modifiers{{}, {DoubleDamage: true}} {
		b := NewBlock(0, 0, 56, 5, BlockShield)
		rng := &scriptedRNG{}

		for i := range 2 {
			if got := b.Hit(mods, rng, testRules); got != HitAbsorbed {
				t.Fatalf("hit %d = %v, expected absorbed (double damage %v)", i+1, got, mods.DoubleDamage)
			}
			if b.Health != 5 {
				t.Fatalf("shield lost health on absorbed hit %d", i+1)
			}
		}

		if got := b.Hit(mods, rng, testRules); got != HitDamaged {
			t.Errorf("third hit = %v, expected damaged", got)
		}
		if want := 5 - mods.Damage(); b.Health != want {
			t.Errorf("health after third hit = %d, expected %d", b.Health, want)
		}
		if b.ShieldHitsTaken != 3 {
			t.Errorf("shield hits taken = %d", b.ShieldHitsTaken)
		}
	}
}

func TestHealthNeverIncreases(t *testing.T) {
	rng := NewSimpleRNG(99)
	for _, typ := range []BlockType{BlockNormal, BlockBomb, BlockShield, BlockGhost} {
		b := NewBlock(0, 0, 56, 12, typ)
		prev := b.Health
		for i := range 40 {
			mods := Modifiers{DoubleDamage: i%3 == 0}
			b.Hit(mods, rng, testRules)
			if b.Health > prev {
				t.Fatalf("%v health rose from %d to %d", typ, prev, b.Health)
			}
			prev = b.Health
		}
		if b.Active {
			t.Errorf("%v should be destroyed after 40 hits", typ)
		}
		if b.Hit(Modifiers{}, rng, testRules) != HitNone {
			t.Errorf("%v: hitting a destroyed block should report none", typ)
		}
	}
}

func TestHitOutcomeContact(t *testing.T) {
	tests := map[HitOutcome]bool{
		HitNone:        false,
		HitPassThrough: false,
		HitAbsorbed:    true,
		HitDamaged:     true,
		HitDestroyed:   true,
	}
	for outcome, want := range tests {
		if outcome.Contact() != want {
			t.Errorf("%v.Contact() = %v, expected %v", outcome, !want, want)
		}
	}
}

func TestModifiersSpeedMultiplier(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want float64
	}{
		{Modifiers{}, 1},
		{Modifiers{DoubleSpeed: true}, 2},
		{Modifiers{SpeedScale: 1.5}, 1.5},
		{Modifiers{DoubleSpeed: true, SpeedScale: 1.5}, 3},
		{Modifiers{SpeedScale: -1}, 1},
	}
	for _, tc := range tests {
		if got := tc.mods.SpeedMultiplier(); got != tc.want {
			t.Errorf("%+v.SpeedMultiplier() = %v, expected %v", tc.mods, got, tc.want)
		}
	}
}
