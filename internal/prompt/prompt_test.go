package prompt

import (
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/talgya/reprotrack/internal/conception"
	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/cycle"
	"github.com/talgya/reprotrack/internal/odds"
	"github.com/talgya/reprotrack/internal/pregnancy"
	"github.com/talgya/reprotrack/internal/sti"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.Russian},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"en", language.English},
		{"en-GB,en;q=0.8", language.English},
		{"de", language.Russian},
		{"!!", language.Russian},
	}
	for _, tt := range tests {
		if got := Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func cycleAt(day int) (cycle.State, cycle.PhaseInfo) {
	t := odds.Default()
	s := cycle.NewState(t)
	s.Day = day
	return s, cycle.GetPhase(day, s.Length, t.Cycle)
}

func TestStanding_Cycle(t *testing.T) {
	c, ph := cycleAt(14)
	v := Standing{Cycle: c, Phase: ph, Counters: conception.Counters{Checks: 3, Conceptions: 1}}

	en := New("en").Standing(v)
	for _, want := range []string{"CYCLE: day 14 of 28", "OVULATION", "HIGH", "NOT USED", "[CYCLE_DAY:<day>][CONCEPTION_CHECK]", "Checks: 3 | Conceptions: 1"} {
		if !strings.Contains(en, want) {
			t.Errorf("english block missing %q:\n%s", want, en)
		}
	}
	ru := New("ru").Standing(v)
	for _, want := range []string{"ЦИКЛ: день 14 из 28", "ОВУЛЯЦИЯ", "[CONCEPTION_CHECK]"} {
		if !strings.Contains(ru, want) {
			t.Errorf("russian block missing %q:\n%s", want, ru)
		}
	}
	if !strings.HasPrefix(en, "[OOC:") || !strings.HasSuffix(en, "]") {
		t.Error("block is not wrapped in OOC brackets")
	}
}

func TestStanding_ContraceptionAndStoryDate(t *testing.T) {
	c, ph := cycleAt(3)
	v := Standing{
		Cycle: c, Phase: ph,
		Methods:    []contraception.Method{contraception.Condom, contraception.Pill},
		Protection: 85,
		StoryDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	got := New("en").Standing(v)
	for _, want := range []string{"condom, pill", "best protection 85%", "Story date: March 15, 2024"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestStanding_Pregnant(t *testing.T) {
	conceived := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	p := pregnancy.NewState()
	p.Begin(conceived, 14, 2, []pregnancy.Sex{pregnancy.SexMale, pregnancy.SexFemale})
	st := p.GetStatus(conceived.AddDate(0, 0, 20*7))

	got := New("en").Standing(Standing{Pregnancy: st, Infected: []sti.Kind{sti.HPV}})
	for _, want := range []string{"PREGNANCY: ACTIVE", "20th week | Trimester 2", "first movements", "twins", "boy, girl", "Infections carried: HPV"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "[CONCEPTION_CHECK]") {
		t.Error("pregnant block still asks for conception tags")
	}
}

func TestConception(t *testing.T) {
	r := conception.Result{
		CycleDay: 14, Phase: cycle.PhaseOvulatory, Chance: 33, Roll: 20,
		Success: true, FetusCount: 2, ContraceptionFailed: true,
		Methods: []contraception.Method{contraception.Condom},
	}
	got := New("en").Conception(r)
	for _, want := range []string{"Cycle day: 14 (OVULATION)", "CONTRACEPTION FAILED", "Chance: 33%", "Roll: 20", "CONCEPTION HAPPENED", "Fetuses: 2 (twins!)"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
	skipped := New("en").Conception(conception.Result{Skipped: true, Reason: conception.ReasonAlreadyPregnant})
	if !strings.Contains(skipped, "Already pregnant") {
		t.Errorf("skipped = %q", skipped)
	}
}

func TestComplication(t *testing.T) {
	f := New("en")
	r := pregnancy.CheckResult{
		Trimester: 1, Roll: 3, Chance: 15, Severity: pregnancy.SeverityCritical, Health: pregnancy.HealthCritical,
		Complication: &pregnancy.Complication{Description: "miscarriage_threat"},
	}
	got := f.Complication(r)
	for _, want := range []string{"Trimester 1", "Roll: 3 (chance 15%)", "CRITICAL: threatened miscarriage", "Health: 🔴 critical"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
	soon := f.Complication(pregnancy.CheckResult{Skipped: true, Reason: pregnancy.SkipTooSoon, NextCheck: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
	if !strings.Contains(soon, "February 1, 2024") {
		t.Errorf("too soon = %q", soon)
	}
}

func TestTransmission(t *testing.T) {
	r := sti.CheckResult{
		Partner:    "Alex",
		CondomUsed: true,
		Profile:    sti.Profile{Risk: sti.RiskMedium, Infected: []sti.Kind{sti.Gonorrhea, sti.Herpes}},
		Attempts: []sti.Attempt{
			{Kind: sti.Gonorrhea, Chance: 5, Roll: 2, Transmitted: true},
			{Kind: sti.Herpes, AlreadyInfected: true},
		},
		Acquired: []sti.Acquisition{{Kind: sti.Gonorrhea, IncubationDays: 4, Symptomatic: true}},
	}
	got := New("en").Transmission(r)
	for _, want := range []string{"Partner: Alex", "Partner risk: medium", "Condom used", "gonorrhea: chance 5%, roll 2 → transmitted", "herpes: already infected", "ACQUIRED gonorrhea: incubation 4 days, will show symptoms, curable"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestPeriodAndBirth(t *testing.T) {
	c, _ := cycleAt(1)
	c.Menstruation.Active = true
	c.Menstruation.Intensity = cycle.IntensityNormal
	if got := New("en").Period(c); !strings.Contains(got, "Period: day 1 of 5, normal flow") {
		t.Errorf("Period = %q", got)
	}
	c2, _ := cycleAt(20)
	if got := New("en").Period(c2); !strings.Contains(got, "Next one in 9 days") {
		t.Errorf("Period = %q", got)
	}
	b := New("en").Birth(pregnancy.Outcome{Kind: pregnancy.OutcomeBirth, Week: 38, FetusCount: 1})
	if !strings.Contains(b, "38th week: 1 child") {
		t.Errorf("Birth = %q", b)
	}
}

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) Inject(slot, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, slot+"="+text)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSlots_FlashClears(t *testing.T) {
	var rec recorder
	s := NewSlots(&rec)
	s.Set(SlotStatus, "status")
	s.Flash(SlotResult, "result", 20*time.Millisecond)
	if s.Get(SlotResult) != "result" || !s.Pending(SlotResult) {
		t.Fatal("flash not written")
	}
	waitFor(t, func() bool { return s.Get(SlotResult) == "" })
	if s.Get(SlotStatus) != "status" {
		t.Error("clearing the result slot touched the status slot")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.calls) != 3 || rec.calls[2] != SlotResult+"=" {
		t.Errorf("injector calls = %q", rec.calls)
	}
}

func TestSlots_NewerWriteCancelsClear(t *testing.T) {
	s := NewSlots(nil)
	s.Flash(SlotResult, "first", 10*time.Millisecond)
	s.Set(SlotResult, "second")
	if s.Pending(SlotResult) {
		t.Fatal("Set left the old clear pending")
	}
	time.Sleep(40 * time.Millisecond)
	if got := s.Get(SlotResult); got != "second" {
		t.Errorf("slot = %q, want second", got)
	}
}

func TestSlots_ReflashRestartsDelay(t *testing.T) {
	s := NewSlots(nil)
	s.Flash(SlotResult, "first", 10*time.Millisecond)
	s.Flash(SlotResult, "second", time.Hour)
	time.Sleep(40 * time.Millisecond)
	if got := s.Get(SlotResult); got != "second" {
		t.Errorf("slot = %q, want second", got)
	}
	s.Stop()
	if s.Pending(SlotResult) {
		t.Error("Stop left a pending clear")
	}
}

func TestSlots_FlushClearsPending(t *testing.T) {
	var rec recorder
	s := NewSlots(&rec)
	s.Set(SlotStatus, "status")
	s.Flash(SlotResult, "result", time.Hour)

	s.Flush()
	if s.Get(SlotResult) != "" || s.Pending(SlotResult) {
		t.Error("pending result survived Flush")
	}
	if s.Get(SlotStatus) != "status" {
		t.Error("Flush cleared a slot with no pending clear")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if last := rec.calls[len(rec.calls)-1]; last != SlotResult+"=" {
		t.Errorf("last injector call = %q", last)
	}
}
