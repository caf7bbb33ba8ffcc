// Package pregnancy tracks an active pregnancy: gestational week, stage
// text, complications and the end of the pregnancy.
package pregnancy

import (
	"slices"
	"time"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

// Sex of a fetus.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Health is the persistent health flag. It only rises until reset.
type Health string

const (
	HealthNormal   Health = "normal"
	HealthWarning  Health = "warning"
	HealthCritical Health = "critical"
)

func (h Health) rank() int {
	switch h {
	case HealthWarning:
		return 1
	case HealthCritical:
		return 2
	}
	return 0
}

// Outcome kinds.
const (
	OutcomeBirth  = "birth"
	OutcomeReset  = "reset"
	OutcomeManual = "manual"
)

// Week bounds.
const (
	MaxWeek     = 45
	TermWeek    = 36 // earliest week a birth mention ends the pregnancy
	DueWeek     = 40
	MaxFetuses  = 3
	daysPerWeek = 7
	hoursPerDay = 24
)

// Outcome records how a pregnancy ended.
type Outcome struct {
	Kind       string    `json:"kind"`
	At         time.Time `json:"at"`
	Week       int       `json:"week"`
	FetusCount int       `json:"fetus_count"`
	FetusSex   []Sex     `json:"fetus_sex,omitempty"`
}

// State is the per-session pregnancy record.
type State struct {
	Pregnant           bool           `json:"pregnant"`
	ConceptionDate     time.Time      `json:"conception_date"`
	ConceptionCycleDay int            `json:"conception_cycle_day"`
	WeekOverride       *int           `json:"week_override,omitempty"`
	CurrentWeek        int            `json:"current_week"`
	FetusCount         int            `json:"fetus_count"`
	FetusSex           []Sex          `json:"fetus_sex"`
	Complications      []Complication `json:"complications"`
	Health             Health         `json:"health"`
	LastCheck          time.Time      `json:"last_complication_check"`
	Outcomes           []Outcome      `json:"outcomes,omitempty"`
}

// Clone returns a copy sharing no slices or pointers with s.
func (s State) Clone() State {
	if s.WeekOverride != nil {
		w := *s.WeekOverride
		s.WeekOverride = &w
	}
	s.FetusSex = slices.Clone(s.FetusSex)
	s.Complications = slices.Clone(s.Complications)
	s.Outcomes = slices.Clone(s.Outcomes)
	for i := range s.Outcomes {
		s.Outcomes[i].FetusSex = slices.Clone(s.Outcomes[i].FetusSex)
	}
	return s
}

// NewState returns the non-pregnant defaults.
func NewState() State {
	return State{FetusCount: 1, FetusSex: []Sex{}, Complications: []Complication{}, Health: HealthNormal}
}

// Begin starts a pregnancy.
func (s *State) Begin(conceived time.Time, cycleDay, fetuses int, sexes []Sex) {
	outcomes := s.Outcomes
	*s = NewState()
	s.Outcomes = outcomes
	s.Pregnant = true
	s.ConceptionDate = conceived
	s.ConceptionCycleDay = cycleDay
	s.LastCheck = conceived // first complication check a week in
	s.FetusCount = odds.Clamp(fetuses, 1, MaxFetuses)
	s.FetusSex = append([]Sex{}, sexes...)
}

// End records an outcome when pregnant and restores the defaults. The
// outcome log survives.
func (s *State) End(kind string, now time.Time) (Outcome, bool) {
	var (
		o   Outcome
		had = s.Pregnant
	)
	if had {
		o = Outcome{Kind: kind, At: now, Week: s.Week(now), FetusCount: s.FetusCount, FetusSex: s.FetusSex}
		s.Outcomes = append(s.Outcomes, o)
	}
	outcomes := s.Outcomes
	*s = NewState()
	s.Outcomes = outcomes
	return o, had
}

// DaysElapsed returns whole calendar days from conception to now.
func (s *State) DaysElapsed(now time.Time) int {
	if s.ConceptionDate.IsZero() {
		return 0
	}
	from := truncateDay(s.ConceptionDate)
	to := truncateDay(now)
	days := int(to.Sub(from).Hours() / hoursPerDay)
	if days < 0 {
		return 0
	}
	return days
}

// Week returns the gestational week. An explicit override wins; otherwise
// it is whole elapsed days divided by seven.
func (s *State) Week(now time.Time) int {
	if !s.Pregnant {
		return 0
	}
	if s.WeekOverride != nil {
		return odds.Clamp(*s.WeekOverride, 0, MaxWeek)
	}
	return min(s.DaysElapsed(now)/daysPerWeek, MaxWeek)
}

// Refresh recomputes the cached current week.
func (s *State) Refresh(now time.Time) int {
	s.CurrentWeek = s.Week(now)
	return s.CurrentWeek
}

// DueDate returns the expected delivery date.
func (s *State) DueDate() time.Time {
	if s.ConceptionDate.IsZero() {
		return time.Time{}
	}
	return s.ConceptionDate.AddDate(0, 0, DueWeek*daysPerWeek-14)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Trimester maps a week to 1, 2 or 3.
func Trimester(week int) int {
	switch {
	case week <= 12:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}

// Engine applies rolls and manual overrides to pregnancy state.
type Engine struct {
	Odds odds.Table
	Fair entropy.Source
}

// SetWeek pins the gestational week, bypassing elapsed-time derivation.
func (e *Engine) SetWeek(s *State, week int) {
	w := odds.Clamp(week, 0, MaxWeek)
	s.WeekOverride = &w
	s.CurrentWeek = w
}

// SetConceptionDate moves the reference date and clears any week override.
func (e *Engine) SetConceptionDate(s *State, date, now time.Time) {
	s.ConceptionDate = date
	s.WeekOverride = nil
	s.Refresh(now)
}

// StartAt begins a pregnancy without a conception roll, for stories that
// are already pregnant. Fetus sexes are rolled and the first complication
// check comes a week after now.
func (e *Engine) StartAt(s *State, conceived, now time.Time, cycleDay, fetuses int) {
	s.Begin(conceived, cycleDay, 1, nil)
	e.SetFetusCount(s, fetuses)
	s.LastCheck = now
	s.Refresh(now)
}

// ConceivedWeeksAgo returns the conception date that puts now at the start
// of the given week.
func ConceivedWeeksAgo(now time.Time, week int) time.Time {
	return truncateDay(now).AddDate(0, 0, -daysPerWeek*odds.Clamp(week, 0, MaxWeek))
}

// SetFetusCount changes the number of fetuses, rolling sexes for new ones
// and dropping the extras when lowered.
func (e *Engine) SetFetusCount(s *State, n int) {
	n = odds.Clamp(n, 1, MaxFetuses)
	for len(s.FetusSex) < n {
		if entropy.RollUniform(e.Fair, 2) == 1 {
			s.FetusSex = append(s.FetusSex, SexMale)
		} else {
			s.FetusSex = append(s.FetusSex, SexFemale)
		}
	}
	s.FetusSex = s.FetusSex[:n]
	s.FetusCount = n
}

// DetectBirth ends the pregnancy when the narrative describes a birth and
// the pregnancy has reached term. It reports whether the state was reset.
func (e *Engine) DetectBirth(s *State, mentioned bool, now time.Time) (Outcome, bool) {
	if !mentioned || !s.Pregnant || s.Week(now) < TermWeek {
		return Outcome{}, false
	}
	return s.End(OutcomeBirth, now)
}
