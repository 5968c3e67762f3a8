package spinball

import (
	"errors"
	"slices"

	"github.com/vovakirdan/spinball/internal/config"
)

// Shop purchase errors.
var (
	ErrShopClosed        = errors.New("spinball: shop is closed")
	ErrUnknownItem       = errors.New("spinball: unknown shop item")
	ErrInsufficientScore = errors.New("spinball: not enough score")
	ErrAlreadyOwned      = errors.New("spinball: power-up already owned")
)

// PowerupEffect identifies a shop item.
type PowerupEffect int

const (
	EffectDoubleDamage PowerupEffect = iota
	EffectDoubleSpeed
	EffectClearOnLastBall
	EffectClearBoard
)

// String returns the locale key of the effect's display name.
func (e PowerupEffect) String() string {
	switch e {
	case EffectDoubleDamage:
		return "double_damage"
	case EffectDoubleSpeed:
		return "double_speed"
	case EffectClearOnLastBall:
		return "clear_last_ball"
	case EffectClearBoard:
		return "clear_board"
	default:
		return "unknown"
	}
}

// Powerups are the flags active for the current round.
type Powerups struct {
	DoubleDamage    bool
	DoubleSpeed     bool
	ClearOnLastBall bool
}

// Has reports whether a flag effect is set. ClearBoard is never held.
func (p Powerups) Has(e PowerupEffect) bool {
	switch e {
	case EffectDoubleDamage:
		return p.DoubleDamage
	case EffectDoubleSpeed:
		return p.DoubleSpeed
	case EffectClearOnLastBall:
		return p.ClearOnLastBall
	default:
		return false
	}
}

// ShopItem is one purchasable entry, in slot order.
type ShopItem struct {
	Effect PowerupEffect
	Price  int
}

// Shop sells power-ups between rounds. Purchases are queued and applied
// by the game on the next simulation tick.
type Shop struct {
	items   []ShopItem
	pending []PowerupEffect
	open    bool
}

// NewShop creates a closed shop with prices from cfg.
func NewShop(cfg config.SpinballShop) *Shop {
	return &Shop{
		items: []ShopItem{
			{Effect: EffectDoubleDamage, Price: cfg.DoubleDamage},
			{Effect: EffectDoubleSpeed, Price: cfg.DoubleSpeed},
			{Effect: EffectClearOnLastBall, Price: cfg.ClearOnLastBall},
			{Effect: EffectClearBoard, Price: cfg.ClearBoard},
		},
	}
}

// Items returns the catalogue in slot order.
func (s *Shop) Items() []ShopItem {
	return slices.Clone(s.items)
}

// ItemAt returns the item in a 0-based slot.
func (s *Shop) ItemAt(slot int) (ShopItem, bool) {
	if slot < 0 || slot >= len(s.items) {
		return ShopItem{}, false
	}
	return s.items[slot], true
}

// Open makes the shop accept purchases.
func (s *Shop) Open() { s.open = true }

// Close stops purchases. Pending effects stay queued.
func (s *Shop) Close() { s.open = false }

// IsOpen reports whether the shop accepts purchases.
func (s *Shop) IsOpen() bool { return s.open }

// Pending reports whether effect is queued.
func (s *Shop) Pending(effect PowerupEffect) bool {
	return slices.Contains(s.pending, effect)
}

// Buy charges score for effect and queues it. On error score is unchanged.
func (s *Shop) Buy(effect PowerupEffect, score *int, owned Powerups) error {
	if !s.open {
		return ErrShopClosed
	}
	idx := slices.IndexFunc(s.items, func(it ShopItem) bool { return it.Effect == effect })
	if idx < 0 {
		return ErrUnknownItem
	}
	item := s.items[idx]
	if *score < item.Price {
		return ErrInsufficientScore
	}
	if s.Pending(effect) || owned.Has(effect) {
		return ErrAlreadyOwned
	}

	*score -= item.Price
	s.pending = append(s.pending, effect)
	return nil
}

// Apply drains the queue into p. Reports true when a board clear was bought;
// the caller performs the clear.
func (s *Shop) Apply(p *Powerups) (clearBoard bool) {
	for _, e := range s.pending {
		switch e {
		case EffectDoubleDamage:
			p.DoubleDamage = true
		case EffectDoubleSpeed:
			p.DoubleSpeed = true
		case EffectClearOnLastBall:
			p.ClearOnLastBall = true
		case EffectClearBoard:
			clearBoard = true
		}
	}
	s.pending = s.pending[:0]
	return clearBoard
}

// Reset closes the shop and drops queued purchases.
func (s *Shop) Reset() {
	s.open = false
	s.pending = s.pending[:0]
}
