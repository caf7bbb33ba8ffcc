// Package contraception composes the active methods into one protection
// percentage for a single encounter.
package contraception

import (
	"errors"
	"maps"
	"sort"
	"strings"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

// Method is a contraception method.
type Method string

const (
	Condom     Method = "condom"
	Pill       Method = "pill"
	IUD        Method = "iud"
	Implant    Method = "implant"
	Withdrawal Method = "withdrawal"
)

// Methods lists every known method in display order.
var Methods = []Method{Condom, Pill, IUD, Implant, Withdrawal}

// ErrUnknownMethod is returned for a method name that is not recognized.
var ErrUnknownMethod = errors.New("unknown contraception method")

// ParseMethod resolves a method name, case-insensitively.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", ErrUnknownMethod
}

// State holds the active methods. Pill additionally counts consecutive
// days taken for its ramp-up.
type State struct {
	Active        map[Method]bool `json:"active"`
	PillDaysTaken int             `json:"pill_days_taken"`
}

// Enabled reports whether m is active.
func (s *State) Enabled(m Method) bool {
	return s.Active[m]
}

// Set turns a method on or off. Starting the pill restarts its ramp-up.
func (s *State) Set(m Method, on bool) {
	if s.Active == nil {
		s.Active = make(map[Method]bool)
	}
	if m == Pill && on && !s.Active[Pill] {
		s.PillDaysTaken = 0
	}
	if on {
		s.Active[m] = true
	} else {
		delete(s.Active, m)
	}
}

// Toggle flips a method and returns its new state.
func (s *State) Toggle(m Method) bool {
	on := !s.Enabled(m)
	s.Set(m, on)
	return on
}

// TakePill advances the pill ramp-up by days while the pill is active.
func (s *State) TakePill(days int) {
	if s.Enabled(Pill) && days > 0 {
		s.PillDaysTaken += days
	}
}

// List returns active methods in display order.
func (s *State) List() []Method {
	var out []Method
	for _, m := range Methods {
		if s.Active[m] {
			out = append(out, m)
		}
	}
	return out
}

// Contribution is one method's share of a composition.
type Contribution struct {
	Method        Method  `json:"method"`
	Effectiveness float64 `json:"effectiveness"`
	Voided        bool    `json:"voided,omitempty"`
}

// Protection is the outcome of composing the active methods.
type Protection struct {
	Percent       float64        `json:"percent"`
	Multiplier    float64        `json:"multiplier"`
	CondomBroke   bool           `json:"condom_broke"`
	BreakRoll     int            `json:"break_roll,omitempty"`
	Best          Method         `json:"best,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Composer combines methods using the odds table.
type Composer struct {
	Odds odds.Contraception
	Fair entropy.Source
}

// Effectiveness returns a method's effectiveness before any per-encounter roll.
func (c *Composer) Effectiveness(m Method, pillDays int) float64 {
	switch m {
	case Condom:
		return c.Odds.Condom
	case Pill:
		switch {
		case pillDays < c.Odds.PillEarlyDays:
			return c.Odds.Pill * c.Odds.PillEarlyFactor
		case pillDays < c.Odds.PillFullDays:
			return c.Odds.Pill * c.Odds.PillMidFactor
		default:
			return c.Odds.Pill
		}
	case IUD:
		return c.Odds.IUD
	case Implant:
		return c.Odds.Implant
	case Withdrawal:
		return c.Odds.Withdrawal
	}
	return 0
}

// Compose returns the protection for one encounter. Methods do not stack:
// the best single method wins. A condom is rolled for breakage first and
// contributes nothing when it breaks, but the other methods still apply.
func (c *Composer) Compose(s State) Protection {
	var p Protection
	for _, m := range s.List() {
		eff := c.Effectiveness(m, s.PillDaysTaken)
		contrib := Contribution{Method: m, Effectiveness: eff}
		if m == Condom {
			p.BreakRoll = entropy.RollUniform(c.Fair, 1000)
			if float64(p.BreakRoll) <= c.Odds.CondomBreak*10 {
				p.CondomBroke = true
				contrib.Voided = true
			}
		}
		p.Contributions = append(p.Contributions, contrib)
		if !contrib.Voided && eff > p.Percent {
			p.Percent = eff
			p.Best = m
		}
	}
	sort.SliceStable(p.Contributions, func(i, j int) bool {
		return p.Contributions[i].Effectiveness > p.Contributions[j].Effectiveness
	})
	p.Percent = odds.Clamp(p.Percent, 0, 100)
	p.Multiplier = (100 - p.Percent) / 100
	return p
}

// Ceiling returns the best protection the active methods offer without
// rolling, for display.
func (c *Composer) Ceiling(s State) (float64, Method) {
	var (
		best float64
		m    Method
	)
	for _, have := range s.List() {
		if eff := c.Effectiveness(have, s.PillDaysTaken); eff > best {
			best, m = eff, have
		}
	}
	return best, m
}

// Clone returns a copy with its own method set.
func (s State) Clone() State {
	s.Active = maps.Clone(s.Active)
	return s
}
