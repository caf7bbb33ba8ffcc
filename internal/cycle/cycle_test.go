package cycle

import (
	"testing"
	"time"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newEngine(rolls ...int) *Engine {
	return &Engine{
		Odds: odds.Default(),
		Fair: entropy.NewScript(rolls...),
		Fast: entropy.NewFast(1),
	}
}

func TestGetPhase_Bands(t *testing.T) {
	mods := odds.Default().Cycle
	tests := []struct {
		from, to int
		phase    Phase
		modifier float64
	}{
		{1, 5, PhaseMenstrual, 0.25},
		{6, 11, PhaseFollicular, 0.5},
		{12, 16, PhaseOvulatory, 1.65},
		{17, 28, PhaseLuteal, 0.25},
	}
	covered := make(map[int]int)
	for _, tt := range tests {
		for day := tt.from; day <= tt.to; day++ {
			got := GetPhase(day, 28, mods)
			if got.Phase != tt.phase {
				t.Errorf("day %d: phase = %s, want %s", day, got.Phase, tt.phase)
			}
			if got.FertilityModifier != tt.modifier {
				t.Errorf("day %d: modifier = %v, want %v", day, got.FertilityModifier, tt.modifier)
			}
			covered[day]++
		}
	}
	for day := 1; day <= 28; day++ {
		if covered[day] != 1 {
			t.Errorf("day %d covered %d times", day, covered[day])
		}
	}
}

func TestGetPhase_Boundaries(t *testing.T) {
	mods := odds.Default().Cycle
	pairs := [][2]int{{5, 6}, {11, 12}, {16, 17}}
	for _, p := range pairs {
		a := GetPhase(p[0], 28, mods).Phase
		b := GetPhase(p[1], 28, mods).Phase
		if a == b {
			t.Errorf("days %d and %d share phase %s", p[0], p[1], a)
		}
	}
}

func TestGetPhase_ScaledLength(t *testing.T) {
	mods := odds.Default().Cycle
	tests := []struct {
		length int
		day    int
		want   Phase
	}{
		{35, 6, PhaseMenstrual},
		{35, 7, PhaseFollicular},
		{35, 15, PhaseOvulatory},
		{35, 20, PhaseOvulatory},
		{35, 21, PhaseLuteal},
		{21, 4, PhaseMenstrual},
		{21, 9, PhaseOvulatory},
		{21, 21, PhaseLuteal},
	}
	for _, tt := range tests {
		if got := GetPhase(tt.day, tt.length, mods).Phase; got != tt.want {
			t.Errorf("GetPhase(%d, %d) = %s, want %s", tt.day, tt.length, got, tt.want)
		}
	}
}

func TestOvulationWindow(t *testing.T) {
	if got := OvulationWindow(28); got != [2]int{12, 16} {
		t.Errorf("OvulationWindow(28) = %v, want [12 16]", got)
	}
}

func TestAdvance_Wraps(t *testing.T) {
	e := newEngine()
	s := NewState(e.Odds)
	s.Day = 10
	if n := e.Advance(&s, 40, false, now); n != 40 {
		t.Fatalf("Advance returned %d, want 40", n)
	}
	if s.Day != 22 {
		t.Errorf("Day = %d, want 22", s.Day)
	}
}

func TestAdvance_NoOpWhilePregnant(t *testing.T) {
	e := newEngine()
	s := NewState(e.Odds)
	s.Day = 10
	if n := e.Advance(&s, 5, true, now); n != 0 {
		t.Errorf("Advance returned %d, want 0", n)
	}
	if s.Day != 10 {
		t.Errorf("Day = %d, want 10", s.Day)
	}
}

func TestAdvance_RecordsEachPeriodStartOnce(t *testing.T) {
	e := newEngine()
	e.Odds.Menstruation.Irregularity = 0
	s := NewState(e.Odds)
	s.Menstruation.Irregularity = 0
	s.Day = 20
	e.Update(&s, now)

	e.Advance(&s, 9, false, now) // 20 -> 1
	if !s.Menstruation.Active {
		t.Fatal("expected period active on day 1")
	}
	if len(s.Periods) != 1 {
		t.Fatalf("Periods = %d, want 1", len(s.Periods))
	}

	e.Advance(&s, 3, false, now) // still within the period
	if len(s.Periods) != 1 {
		t.Errorf("Periods = %d after staying in period, want 1", len(s.Periods))
	}

	e.Advance(&s, 28, false, now) // one full wrap
	if len(s.Periods) != 2 {
		t.Errorf("Periods = %d after a full wrap, want 2", len(s.Periods))
	}
}

func TestUpdate_PMSWindowWraps(t *testing.T) {
	e := newEngine()
	s := NewState(e.Odds)
	for day := 1; day <= 28; day++ {
		e.SetDay(&s, day, now)
		wantPMS := day >= 24
		if s.Menstruation.PMS != wantPMS {
			t.Errorf("day %d: PMS = %v, want %v", day, s.Menstruation.PMS, wantPMS)
		}
		if s.Menstruation.PMS && s.Menstruation.Active {
			t.Errorf("day %d: PMS and period both active", day)
		}
	}
	if s.Menstruation.PMSStartDay != 24 {
		t.Errorf("PMSStartDay = %d, want 24", s.Menstruation.PMSStartDay)
	}

	// A period starting on day 3 puts PMS across the wrap.
	s.Menstruation.StartDay = 3
	e.SetDay(&s, 28, now)
	if !s.Menstruation.PMS {
		t.Error("day 28 should be PMS when the period starts on day 3")
	}
	e.SetDay(&s, 1, now)
	if !s.Menstruation.PMS {
		t.Error("day 1 should be PMS when the period starts on day 3")
	}
}

func TestUpdate_Intensity(t *testing.T) {
	e := newEngine()
	s := NewState(e.Odds)
	want := []Intensity{IntensityNormal, IntensityHeavy, IntensityHeavy, IntensityLight, IntensityLight, IntensityNone}
	for i, w := range want {
		e.SetDay(&s, i+1, now)
		if s.Menstruation.Intensity != w {
			t.Errorf("day %d: intensity = %q, want %q", i+1, s.Menstruation.Intensity, w)
		}
	}
}

func TestRollDuration_ClampedJitter(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		rolls    []int
		want     int
	}{
		{"no irregularity hit", 5, []int{90}, 5},
		{"plus two", 5, []int{1, 5}, 7},
		{"minus two", 5, []int{1, 1}, 3},
		{"clamped high", 7, []int{1, 5}, 8},
		{"clamped low", 3, []int{1, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(tt.rolls...)
			m := &Menstruation{Duration: tt.duration, Irregularity: 20}
			if got := e.rollDuration(m); got != tt.want {
				t.Errorf("rollDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetDay_Clamps(t *testing.T) {
	e := newEngine()
	s := NewState(e.Odds)
	e.SetDay(&s, 0, now)
	if s.Day != 1 {
		t.Errorf("SetDay(0) -> %d, want 1", s.Day)
	}
	e.SetDay(&s, 99, now)
	if s.Day != 28 {
		t.Errorf("SetDay(99) -> %d, want 28", s.Day)
	}
}

func TestUpdate_ZeroStateGetsDefaults(t *testing.T) {
	e := newEngine()
	var s State
	e.Update(&s, now)
	if s.Length != 28 || s.Day != 1 {
		t.Errorf("zero state normalized to day %d/%d, want 1/28", s.Day, s.Length)
	}
	if !s.Menstruation.Active {
		t.Error("day 1 should be a period day")
	}
	if len(s.Menstruation.Symptoms) == 0 {
		t.Error("expected period symptoms")
	}
}

func TestPeriodPosition(t *testing.T) {
	e := newEngine()
	e.Odds.Menstruation.Irregularity = 0
	s := NewState(e.Odds)
	tests := []struct {
		day, periodDay, until int
	}{
		{1, 1, 0}, {3, 3, 26}, {5, 5, 24}, {6, 0, 23}, {28, 0, 1},
	}
	for _, tt := range tests {
		e.SetDay(&s, tt.day, now)
		if got := s.PeriodDay(); got != tt.periodDay {
			t.Errorf("day %d: PeriodDay = %d, want %d", tt.day, got, tt.periodDay)
		}
		if got := s.DaysUntilPeriod(); got != tt.until {
			t.Errorf("day %d: DaysUntilPeriod = %d, want %d", tt.day, got, tt.until)
		}
	}
}
