package config

import "math"

// Ramp turns survival progress into a ball speed scale. The level starts
// at the preset's initial level and climbs linearly to 1 once the round
// (or score) reaches MaxAt.
type Ramp struct {
	cfg  DifficultyConfig
	base float64
}

// NewRamp creates a ramp from the difficulty section.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg, base: unit(cfg.InitialLevel)}
}

// Rebase moves the starting level; values outside [0, 1] are clamped.
func (r *Ramp) Rebase(level float64) {
	r.base = unit(level)
}

// Active reports whether the level moves at all.
func (r *Ramp) Active() bool {
	switch r.cfg.Progression.Type {
	case "round", "score":
		return r.cfg.Enabled
	}
	return false
}

// progress is how far along the ramp a run is, in [0, 1].
func (r *Ramp) progress(round, score int) float64 {
	span := math.Max(1, float64(r.cfg.Progression.MaxAt))
	if r.cfg.Progression.Type == "score" {
		return unit(float64(score) / span)
	}
	// round 1 is the start line
	return unit(float64(round-1) / span)
}

// Level returns the difficulty level for a run at round with score.
func (r *Ramp) Level(round, score int) float64 {
	if !r.Active() {
		return r.base
	}
	return r.base + (1-r.base)*r.progress(round, score)
}

// SpeedScale returns 1 at level 0 and 1+speed_multiplier at level 1.
func (r *Ramp) SpeedScale(round, score int) float64 {
	return 1 + r.cfg.Scaling.SpeedMultiplier*r.Level(round, score)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
