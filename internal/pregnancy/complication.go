package pregnancy

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/reprotrack/internal/entropy"
)

// Severity of a complication.
type Severity string

const (
	SeverityNone     Severity = ""
	SeverityMild     Severity = "mild"
	SeveritySerious  Severity = "serious"
	SeverityCritical Severity = "critical"
)

// Skip reasons for a complication check.
const (
	SkipNotPregnant = "not_pregnant"
	SkipTooSoon     = "too_soon"
)

// Complication is one entry of the append-only complication log.
type Complication struct {
	ID          string    `json:"id"`
	At          time.Time `json:"at"`
	Week        int       `json:"week"`
	Trimester   int       `json:"trimester"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Roll        int       `json:"roll"`
}

// CheckResult is the outcome of one complication roll.
type CheckResult struct {
	Skipped      bool          `json:"skipped,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	Week         int           `json:"week"`
	Trimester    int           `json:"trimester"`
	Roll         int           `json:"roll"`
	Chance       int           `json:"chance"`
	Severity     Severity      `json:"severity"`
	Complication *Complication `json:"complication,omitempty"`
	Health       Health        `json:"health"`
	NextCheck    time.Time     `json:"next_check"`
}

var complicationPool = map[int]map[Severity][]string{
	1: {
		SeverityCritical: {"miscarriage_threat", "ectopic_suspicion"},
		SeveritySerious:  {"first_trimester_bleeding", "subchorionic_hematoma"},
		SeverityMild:     {"hyperemesis", "anemia"},
	},
	2: {
		SeverityCritical: {"cervical_insufficiency", "placental_abruption"},
		SeveritySerious:  {"gestational_diabetes", "preeclampsia_signs"},
		SeverityMild:     {"anemia", "uterine_hypertonus"},
	},
	3: {
		SeverityCritical: {"placental_abruption", "preterm_labor"},
		SeveritySerious:  {"preeclampsia", "placenta_previa_bleeding"},
		SeverityMild:     {"heavy_edema", "severe_back_pain"},
	},
}

// Chance returns the percent chance of any complication in a trimester.
// Multiples add on top of the trimester base: twins add the twin bonus and
// triplets add both bonuses.
func (e *Engine) Chance(trimester, fetuses int) int {
	c := e.Odds.Complications
	var chance int
	switch trimester {
	case 1:
		chance = c.FirstTrimester
	case 2:
		chance = c.SecondTrimester
	default:
		chance = c.ThirdTrimester
	}
	if fetuses >= 2 {
		chance += c.TwinsBonus
	}
	if fetuses >= 3 {
		chance += c.TripletsBonus
	}
	return chance
}

// RollComplication rolls the trimester's complication check. It runs at
// most once per interval unless force is set, and only while pregnant.
// A roll at or under the chance is a complication; its severity comes from
// placing the roll on the severity scale.
func (e *Engine) RollComplication(s *State, now time.Time, force bool) CheckResult {
	interval := time.Duration(e.Odds.Complications.IntervalDays) * hoursPerDay * time.Hour
	if !s.Pregnant {
		return CheckResult{Skipped: true, Reason: SkipNotPregnant, Health: HealthNormal}
	}
	week := s.Refresh(now)
	res := CheckResult{Week: week, Trimester: Trimester(week), Health: s.Health}
	if !force && !s.LastCheck.IsZero() && now.Sub(s.LastCheck) < interval {
		res.Skipped = true
		res.Reason = SkipTooSoon
		res.NextCheck = s.LastCheck.Add(interval)
		return res
	}

	res.Chance = e.Chance(res.Trimester, s.FetusCount)
	res.Roll = entropy.RollUniform(e.Fair, 100)
	s.LastCheck = now
	res.NextCheck = now.Add(interval)

	res.Severity = e.severity(res.Roll, res.Chance)
	if res.Severity == SeverityNone {
		return res
	}

	pool := complicationPool[res.Trimester][res.Severity]
	c := Complication{
		ID:          uuid.NewString(),
		At:          now,
		Week:        week,
		Trimester:   res.Trimester,
		Severity:    res.Severity,
		Description: pool[entropy.RollUniform(e.Fair, len(pool))-1],
		Roll:        res.Roll,
	}
	s.Complications = append(s.Complications, c)
	res.Complication = &c

	switch res.Severity {
	case SeverityCritical:
		s.escalate(HealthCritical)
	case SeveritySerious:
		s.escalate(HealthWarning)
	}
	res.Health = s.Health
	return res
}

func (e *Engine) severity(roll, chance int) Severity {
	c := e.Odds.Complications
	if chance <= 0 || roll > chance {
		return SeverityNone
	}
	point := int(math.Ceil(float64(roll) * float64(c.SeverityScale) / float64(chance)))
	switch {
	case point <= c.Critical:
		return SeverityCritical
	case point <= c.Serious:
		return SeveritySerious
	case point <= c.Mild:
		return SeverityMild
	}
	return SeverityNone
}

func (s *State) escalate(h Health) {
	if h.rank() > s.Health.rank() {
		s.Health = h
	}
}
