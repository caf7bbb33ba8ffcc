// Package conception rolls whether an encounter results in pregnancy.
package conception

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/cycle"
	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
	"github.com/talgya/reprotrack/internal/pregnancy"
)

// Reason explains a roll that did not run.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonAlreadyPregnant Reason = "already_pregnant"
)

// Input is the state a roll reads.
type Input struct {
	Pregnant      bool
	CycleDay      int
	CycleLength   int
	Contraception contraception.State
}

// History is the append-only log of every roll that ran.
type History []Result

// Clone returns a copy sharing no slices with h.
func (h History) Clone() History {
	out := slices.Clone(h)
	for i := range out {
		out[i].Methods = slices.Clone(out[i].Methods)
		out[i].FetusSex = slices.Clone(out[i].FetusSex)
	}
	return out
}

// Counters tracks roll statistics.
type Counters struct {
	Checks      int `json:"total_checks"`
	Conceptions int `json:"total_conceptions"`
}

// Result is the ephemeral outcome of a roll. It is kept in the history log.
type Result struct {
	ID                  string                 `json:"id"`
	At                  time.Time              `json:"at"`
	Skipped             bool                   `json:"skipped,omitempty"`
	Reason              Reason                 `json:"reason,omitempty"`
	Roll                int                    `json:"roll"`
	Chance              float64                `json:"chance"`
	CycleDay            int                    `json:"cycle_day"`
	Phase               cycle.Phase            `json:"phase"`
	FertilityModifier   float64                `json:"fertility_modifier"`
	Methods             []contraception.Method `json:"methods,omitempty"`
	Protection          float64                `json:"protection"`
	ContraceptionFailed bool                   `json:"contraception_failed"`
	Success             bool                   `json:"success"`
	FetusCount          int                    `json:"fetus_count,omitempty"`
	FetusSex            []pregnancy.Sex        `json:"fetus_sex,omitempty"`
	MultiplesRoll       float64                `json:"multiples_roll,omitempty"`
}

// Engine rolls conception.
type Engine struct {
	Odds odds.Table
	Fair entropy.Source
}

// Chance returns the clamped percent chance for the inputs, rounded the way
// it is displayed: the cycle-scaled base first, then contraception.
func (e *Engine) Chance(modifier, multiplier float64) float64 {
	c := e.Odds.Conception
	base := math.Round(c.BaseFertility * modifier * c.GlobalMultiplier)
	return math.Round(odds.Clamp(base*multiplier, c.MinChance, c.MaxChance))
}

// Roll performs one conception check. While pregnant it returns a skipped
// result and rolls nothing.
func (e *Engine) Roll(in Input, now time.Time) Result {
	if in.Pregnant {
		return Result{At: now, Skipped: true, Reason: ReasonAlreadyPregnant, CycleDay: in.CycleDay}
	}

	phase := cycle.GetPhase(in.CycleDay, in.CycleLength, e.Odds.Cycle)
	composer := contraception.Composer{Odds: e.Odds.Contraception, Fair: e.Fair}
	prot := composer.Compose(in.Contraception)

	r := Result{
		ID:                  uuid.NewString(),
		At:                  now,
		CycleDay:            in.CycleDay,
		Phase:               phase.Phase,
		FertilityModifier:   phase.FertilityModifier,
		Methods:             in.Contraception.List(),
		Protection:          prot.Percent,
		ContraceptionFailed: prot.CondomBroke,
		Chance:              e.Chance(phase.FertilityModifier, prot.Multiplier),
	}
	r.Roll = entropy.RollUniform(e.Fair, 100)
	r.Success = float64(r.Roll) <= r.Chance

	if r.Success {
		r.FetusCount, r.MultiplesRoll = e.RollFetusCount()
		r.FetusSex = e.RollSexes(r.FetusCount)
	}
	return r
}

// Check is the full conception step: it guards against an existing
// pregnancy, rolls, appends the result to the history and, on success,
// starts the pregnancy. A skipped check touches nothing.
func (e *Engine) Check(p *pregnancy.State, c *cycle.State, prot contraception.State, h *History, n *Counters, now time.Time) Result {
	r := e.Roll(Input{
		Pregnant:      p.Pregnant,
		CycleDay:      c.Day,
		CycleLength:   c.Length,
		Contraception: prot,
	}, now)
	if r.Skipped {
		return r
	}
	*h = append(*h, r)
	n.Checks++
	if r.Success {
		n.Conceptions++
		p.Begin(now, c.Day, r.FetusCount, r.FetusSex)
	}
	return r
}

// RollFetusCount rolls at 0.1% resolution so sub-percent tiers are reachable.
func (e *Engine) RollFetusCount() (int, float64) {
	roll := float64(entropy.RollUniform(e.Fair, 1000)) / 10
	switch {
	case roll <= e.Odds.Conception.TripletsPercent:
		return 3, roll
	case roll <= e.Odds.Conception.TwinsPercent:
		return 2, roll
	default:
		return 1, roll
	}
}

// RollSexes flips a fair coin per fetus.
func (e *Engine) RollSexes(n int) []pregnancy.Sex {
	out := make([]pregnancy.Sex, n)
	for i := range out {
		if entropy.RollUniform(e.Fair, 2) == 1 {
			out[i] = pregnancy.SexMale
		} else {
			out[i] = pregnancy.SexFemale
		}
	}
	return out
}
