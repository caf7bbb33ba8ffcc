// Package sti generates partner infection profiles and rolls transmission
// per encounter. Only acquisition is modeled.
package sti

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

// Profile is a partner's generated-once risk profile.
type Profile struct {
	Partner   string    `json:"partner"`
	Risk      Risk      `json:"risk"`
	Infected  []Kind    `json:"infected"`
	Generated bool      `json:"generated"`
	RiskRoll  int       `json:"risk_roll"`
	CreatedAt time.Time `json:"created_at"`
}

// Carries reports whether the partner carries k.
func (p *Profile) Carries(k Kind) bool {
	for _, have := range p.Infected {
		if have == k {
			return true
		}
	}
	return false
}

// Acquisition is one entry of the user's infection history.
type Acquisition struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Date           time.Time `json:"date"`
	Source         string    `json:"source"`
	IncubationDays int       `json:"incubation_days"`
	Symptomatic    bool      `json:"symptomatic"`
}

// UserStatus is the character's infection state.
type UserStatus struct {
	Infected []Kind        `json:"infected"`
	History  []Acquisition `json:"history"`
}

// Has reports whether the character already has k.
func (u *UserStatus) Has(k Kind) bool {
	for _, have := range u.Infected {
		if have == k {
			return true
		}
	}
	return false
}

// State is the per-session STI record. Profiles are keyed by normalized
// partner name, so two characters sharing a display name share a profile.
type State struct {
	Profiles map[string]*Profile `json:"profiles"`
	User     UserStatus          `json:"user"`
}

// Clone returns a copy with its own profiles and history.
func (s State) Clone() State {
	if s.Profiles != nil {
		profiles := make(map[string]*Profile, len(s.Profiles))
		for key, p := range s.Profiles {
			if p == nil {
				profiles[key] = nil
				continue
			}
			cp := *p
			cp.Infected = slices.Clone(p.Infected)
			profiles[key] = &cp
		}
		s.Profiles = profiles
	}
	s.User.Infected = slices.Clone(s.User.Infected)
	s.User.History = slices.Clone(s.User.History)
	return s
}

// PartnerKey normalizes a partner identifier.
func PartnerKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Attempt is the transmission roll for one carried infection.
type Attempt struct {
	Kind            Kind    `json:"kind"`
	Chance          float64 `json:"chance"`
	Roll            int     `json:"roll,omitempty"`
	Transmitted     bool    `json:"transmitted"`
	AlreadyInfected bool    `json:"already_infected,omitempty"`
}

// CheckResult is the outcome of one encounter.
type CheckResult struct {
	Partner    string        `json:"partner"`
	Profile    Profile       `json:"profile"`
	CondomUsed bool          `json:"condom_used"`
	Attempts   []Attempt     `json:"attempts"`
	Acquired   []Acquisition `json:"acquired"`
}

// Engine rolls partner profiles and transmission.
type Engine struct {
	Odds   odds.STI
	Fair   entropy.Source
	Female bool // sex of the receiving character
}

// AssessPartnerRisk returns the partner's profile, generating and storing
// it on first contact. Later calls return the stored profile unchanged.
func (e *Engine) AssessPartnerRisk(s *State, partner string, now time.Time) *Profile {
	key := PartnerKey(partner)
	if s.Profiles == nil {
		s.Profiles = make(map[string]*Profile)
	}
	if p, ok := s.Profiles[key]; ok && p.Generated {
		return p
	}

	p := &Profile{Partner: strings.TrimSpace(partner), Generated: true, CreatedAt: now, Infected: []Kind{}}
	p.RiskRoll = entropy.RollUniform(e.Fair, 100)
	p.Risk = e.tier(p.RiskRoll)

	if carrier := e.carrierChance(p.Risk); carrier > 0 && entropy.RollUniform(e.Fair, 100) <= carrier {
		pool := append([]Kind(nil), pools[p.Risk]...)
		for len(pool) > 0 {
			i := entropy.RollUniform(e.Fair, len(pool)) - 1
			p.Infected = append(p.Infected, pool[i])
			pool = append(pool[:i], pool[i+1:]...)
			if len(pool) == 0 || entropy.RollUniform(e.Fair, 100) > e.Odds.ExtraInfection {
				break
			}
		}
		sort.Slice(p.Infected, func(i, j int) bool { return p.Infected[i] < p.Infected[j] })
	}

	s.Profiles[key] = p
	return p
}

func (e *Engine) tier(roll int) Risk {
	switch {
	case roll <= e.Odds.SafeUpTo:
		return RiskSafe
	case roll <= e.Odds.LowUpTo:
		return RiskLow
	case roll <= e.Odds.MediumUpTo:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func (e *Engine) carrierChance(r Risk) int {
	switch r {
	case RiskLow:
		return e.Odds.CarrierLow
	case RiskMedium:
		return e.Odds.CarrierMedium
	case RiskHigh:
		return e.Odds.CarrierHigh
	}
	return 0
}

// TransmissionChance returns the percent chance for one kind.
func (e *Engine) TransmissionChance(k Kind, condom bool) float64 {
	info, ok := Catalog[k]
	if !ok {
		return 0
	}
	chance := info.ToMale
	if e.Female {
		chance = info.ToFemale
	}
	if condom {
		chance *= info.CondomFactor
	}
	return chance
}

// CheckTransmission rolls each infection the partner carries that the
// character does not already have. Acquired infections are permanent.
func (e *Engine) CheckTransmission(s *State, partner string, condom bool, now time.Time) CheckResult {
	p := e.AssessPartnerRisk(s, partner, now)
	res := CheckResult{Partner: p.Partner, CondomUsed: condom}

	for _, k := range p.Infected {
		a := Attempt{Kind: k, Chance: e.TransmissionChance(k, condom)}
		if s.User.Has(k) {
			a.AlreadyInfected = true
			res.Attempts = append(res.Attempts, a)
			continue
		}
		a.Roll = entropy.RollUniform(e.Fair, 100)
		a.Transmitted = float64(a.Roll) <= a.Chance
		res.Attempts = append(res.Attempts, a)
		if !a.Transmitted {
			continue
		}

		info := Catalog[k]
		acq := Acquisition{
			ID:             uuid.NewString(),
			Kind:           k,
			Date:           now,
			Source:         p.Partner,
			IncubationDays: info.IncubationMin + entropy.RollUniform(e.Fair, info.IncubationMax-info.IncubationMin+1) - 1,
			Symptomatic:    entropy.RollUniform(e.Fair, 100) <= info.SymptomaticRate,
		}
		s.User.Infected = append(s.User.Infected, k)
		s.User.History = append(s.User.History, acq)
		res.Acquired = append(res.Acquired, acq)
	}
	res.Profile = *p
	return res
}
