// Package stats computes display values derived from raw entity fields.
package stats

import "github.com/lixenwraith/lurkdash/game"

// Derived holds the stat proportions shown by the gauges
type Derived struct {
	AttackPct  uint8
	DefensePct uint8
	RegenPct   uint8
	Total      uint32
}

// Derive computes each combat stat as a rounded share of the stat total
// A zero total yields all-zero percentages
func Derive(p game.Entity) Derived {
	total := uint32(p.Attack) + uint32(p.Defense) + uint32(p.Regen)

	denom := total
	if denom == 0 {
		denom = 1
	}

	return Derived{
		AttackPct:  percent(p.Attack, denom),
		DefensePct: percent(p.Defense, denom),
		RegenPct:   percent(p.Regen, denom),
		Total:      total,
	}
}

// percent rounds half up in integer arithmetic: (200*v + d) / (2*d)
func percent(v uint16, denom uint32) uint8 {
	p := (200*uint64(v) + uint64(denom)) / (2 * uint64(denom))
	if p > 100 {
		p = 100
	}
	return uint8(p)
}
