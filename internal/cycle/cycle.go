// Package cycle tracks the menstrual cycle: day, phase, fertility modifier,
// period and PMS status.
package cycle

import (
	"math"
	"slices"
	"time"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

// Phase is a segment of the cycle.
type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

// Intensity is the flow level on a period day.
type Intensity string

const (
	IntensityNone   Intensity = ""
	IntensityLight  Intensity = "light"
	IntensityNormal Intensity = "normal"
	IntensityHeavy  Intensity = "heavy"
)

// Length bounds accepted for a cycle.
const (
	MinLength = 20
	MaxLength = 45
)

// State is the persisted cycle position.
type State struct {
	Day             int          `json:"day"`
	Length          int          `json:"length"`
	OvulationWindow [2]int       `json:"ovulation_window"`
	LastUpdate      time.Time    `json:"last_update"`
	Menstruation    Menstruation `json:"menstruation"`
	Periods         []Period     `json:"periods,omitempty"`
}

// Clone returns a copy sharing no slices with s.
func (s State) Clone() State {
	s.Periods = slices.Clone(s.Periods)
	s.Menstruation.Symptoms = slices.Clone(s.Menstruation.Symptoms)
	return s
}

// Menstruation is derived from the cycle day each time it changes.
type Menstruation struct {
	Active            bool      `json:"active"`
	StartDay          int       `json:"start_day"`
	Duration          int       `json:"duration"`
	EffectiveDuration int       `json:"effective_duration"` // after irregularity jitter
	Intensity         Intensity `json:"intensity"`
	PMS               bool      `json:"pms"`
	PMSStartDay       int       `json:"pms_start_day"`
	PMSDuration       int       `json:"pms_duration"`
	Irregularity      int       `json:"irregularity"` // percent chance of jitter per cycle
	Symptoms          []string  `json:"symptoms"`
	LastPeriodDate    time.Time `json:"last_period_date"`
}

// Period records one observed period start.
type Period struct {
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
}

// PhaseInfo is the phase of a day and its fertility modifier.
type PhaseInfo struct {
	Phase             Phase   `json:"phase"`
	FertilityModifier float64 `json:"fertility_modifier"`
}

// NewState returns a cycle at its default day (mid-cycle, as the host
// usually starts a story without period data).
func NewState(t odds.Table) State {
	length := odds.Clamp(t.CycleLength, MinLength, MaxLength)
	s := State{
		Day:    14 * length / 28,
		Length: length,
		Menstruation: Menstruation{
			StartDay:          1,
			Duration:          t.Menstruation.Duration,
			EffectiveDuration: t.Menstruation.Duration,
			PMSDuration:       t.Menstruation.PMSDuration,
			Irregularity:      t.Menstruation.Irregularity,
		},
	}
	s.OvulationWindow = OvulationWindow(length)
	return s
}

// Boundaries returns the last day of the menstrual, follicular and
// ovulatory phases, scaled from the 28-day reference (5, 11, 16).
func Boundaries(length int) (menstrualEnd, follicularEnd, ovulatoryEnd int) {
	if length < 1 {
		length = 28
	}
	scale := func(d int) int {
		return int(math.Round(float64(d) * float64(length) / 28))
	}
	menstrualEnd = max(1, scale(5))
	follicularEnd = max(menstrualEnd, scale(11))
	ovulatoryEnd = max(follicularEnd+1, scale(16))
	return menstrualEnd, follicularEnd, min(ovulatoryEnd, length)
}

// OvulationWindow returns the first and last ovulatory day.
func OvulationWindow(length int) [2]int {
	_, f, o := Boundaries(length)
	return [2]int{f + 1, o}
}

// GetPhase returns the phase of day in a cycle of the given length.
func GetPhase(day, length int, mods odds.CycleModifiers) PhaseInfo {
	m, f, o := Boundaries(length)
	switch {
	case day <= m:
		return PhaseInfo{Phase: PhaseMenstrual, FertilityModifier: mods.Menstrual}
	case day <= f:
		return PhaseInfo{Phase: PhaseFollicular, FertilityModifier: mods.Follicular}
	case day <= o:
		return PhaseInfo{Phase: PhaseOvulatory, FertilityModifier: mods.Ovulatory}
	default:
		return PhaseInfo{Phase: PhaseLuteal, FertilityModifier: mods.Luteal}
	}
}

// Wrap maps any integer day onto [1, length].
func Wrap(day, length int) int {
	if length < 1 {
		return 1
	}
	return ((day-1)%length+length)%length + 1
}

// PeriodDay returns the 1-based day within the current period, or 0 when
// no period is active.
func (s *State) PeriodDay() int {
	if !s.Menstruation.Active || s.Length < 1 {
		return 0
	}
	return s.offset() + 1
}

// DaysUntilPeriod returns whole days until the next period starts.
func (s *State) DaysUntilPeriod() int {
	if s.Length < 1 {
		return 0
	}
	return (s.Length - s.offset()) % s.Length
}

func (s *State) offset() int {
	return ((s.Day-s.Menstruation.StartDay)%s.Length + s.Length) % s.Length
}

// Engine mutates cycle state.
type Engine struct {
	Odds odds.Table
	Fair entropy.Source // irregularity rolls
	Fast entropy.Source // symptom shuffles
}

// Phase returns the phase of the state's current day.
func (e *Engine) Phase(s *State) PhaseInfo {
	return GetPhase(s.Day, s.Length, e.Odds.Cycle)
}

// SetDay moves to an explicit day, clamped to [1, Length].
func (e *Engine) SetDay(s *State, day int, now time.Time) {
	e.normalize(s)
	s.Day = odds.Clamp(day, 1, s.Length)
	e.Update(s, now)
}

// SetLength changes the cycle length, clamped to the supported range.
func (e *Engine) SetLength(s *State, length int, now time.Time) {
	s.Length = odds.Clamp(length, MinLength, MaxLength)
	s.OvulationWindow = OvulationWindow(s.Length)
	s.Day = odds.Clamp(s.Day, 1, s.Length)
	e.Update(s, now)
}

// Advance moves the cycle forward by days, one day at a time so every
// period start on the way is recorded. It is a no-op while pregnant and
// returns the number of days actually advanced.
func (e *Engine) Advance(s *State, days int, pregnant bool, now time.Time) int {
	if pregnant || days <= 0 {
		return 0
	}
	e.normalize(s)
	for i := 1; i <= days; i++ {
		s.Day = Wrap(s.Day+1, s.Length)
		e.Update(s, now.AddDate(0, 0, i-days))
	}
	return days
}

// Update recomputes menstruation and PMS status from the current day.
func (e *Engine) Update(s *State, now time.Time) {
	e.normalize(s)
	m := &s.Menstruation
	wasActive := m.Active

	duration := m.EffectiveDuration
	if duration <= 0 {
		duration = m.Duration
	}
	offset := s.offset()
	m.Active = offset < duration

	m.PMSStartDay = Wrap(m.StartDay-m.PMSDuration, s.Length)
	untilStart := (s.Length - offset) % s.Length
	m.PMS = !m.Active && untilStart >= 1 && untilStart <= m.PMSDuration

	m.Intensity = IntensityNone
	if m.Active {
		m.Intensity = intensityFor(offset+1, duration)
	}

	switch {
	case m.Active && !wasActive:
		m.LastPeriodDate = now
		s.Periods = append(s.Periods, Period{Date: now, Duration: duration})
	case !m.Active && wasActive:
		m.EffectiveDuration = e.rollDuration(m)
	}

	m.Symptoms = e.pickSymptoms(s)
	s.LastUpdate = now
}

// rollDuration applies the irregularity roll for the next period.
func (e *Engine) rollDuration(m *Menstruation) int {
	mo := e.Odds.Menstruation
	d := m.Duration
	if m.Irregularity > 0 && entropy.RollUniform(e.Fair, 100) <= m.Irregularity {
		d += entropy.RollUniform(e.Fair, 2*mo.Jitter+1) - mo.Jitter - 1
	}
	return odds.Clamp(d, mo.MinDuration, mo.MaxDuration)
}

func intensityFor(position, duration int) Intensity {
	switch {
	case position == 1:
		return IntensityNormal
	case position <= (duration+1)/2:
		return IntensityHeavy
	default:
		return IntensityLight
	}
}

func (e *Engine) normalize(s *State) {
	if s.Length == 0 {
		s.Length = e.Odds.CycleLength
	}
	s.Length = odds.Clamp(s.Length, MinLength, MaxLength)
	if s.OvulationWindow == [2]int{} {
		s.OvulationWindow = OvulationWindow(s.Length)
	}
	if s.Day < 1 || s.Day > s.Length {
		s.Day = odds.Clamp(s.Day, 1, s.Length)
	}
	m := &s.Menstruation
	if m.StartDay < 1 || m.StartDay > s.Length {
		m.StartDay = 1
	}
	if m.Duration <= 0 {
		m.Duration = e.Odds.Menstruation.Duration
	}
	if m.PMSDuration <= 0 {
		m.PMSDuration = e.Odds.Menstruation.PMSDuration
	}
}
