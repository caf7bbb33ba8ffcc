package pregnancy

import (
	"reflect"
	"testing"
	"time"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

var conceived = time.Date(2024, 1, 10, 22, 30, 0, 0, time.UTC)

func pregnantState(fetuses int) State {
	s := NewState()
	sexes := make([]Sex, fetuses)
	for i := range sexes {
		sexes[i] = SexFemale
	}
	s.Begin(conceived, 14, fetuses, sexes)
	return s
}

func engine(rolls ...int) *Engine {
	return &Engine{Odds: odds.Default(), Fair: entropy.NewScript(rolls...)}
}

func TestWeek_FloorOfElapsedDays(t *testing.T) {
	s := pregnantState(1)
	tests := []struct {
		now  time.Time
		week int
	}{
		{conceived, 0},
		{conceived.AddDate(0, 0, 6), 0},
		{conceived.AddDate(0, 0, 7), 1},
		{time.Date(2024, 1, 17, 0, 1, 0, 0, time.UTC), 1}, // calendar days, not 24h spans
		{conceived.AddDate(0, 0, 89), 12},
		{conceived.AddDate(0, 0, 500), MaxWeek},
		{conceived.AddDate(0, 0, -3), 0},
	}
	for _, tt := range tests {
		if got := s.Week(tt.now); got != tt.week {
			t.Errorf("Week(%s) = %d, want %d", tt.now.Format(time.DateOnly), got, tt.week)
		}
		if got := s.Week(tt.now); got != tt.week {
			t.Errorf("Week is not deterministic at %s", tt.now)
		}
	}
}

func TestWeek_OverrideWins(t *testing.T) {
	s := pregnantState(1)
	e := engine()
	e.SetWeek(&s, 20)
	if got := s.Week(conceived.AddDate(0, 0, 3)); got != 20 {
		t.Errorf("Week with override = %d, want 20", got)
	}
	e.SetConceptionDate(&s, conceived, conceived.AddDate(0, 0, 70))
	if s.WeekOverride != nil {
		t.Fatal("SetConceptionDate should clear the override")
	}
	if s.CurrentWeek != 10 {
		t.Errorf("CurrentWeek = %d, want 10", s.CurrentWeek)
	}
	e.SetWeek(&s, 99)
	if *s.WeekOverride != MaxWeek {
		t.Errorf("SetWeek(99) stored %d, want %d", *s.WeekOverride, MaxWeek)
	}
}

func TestBandFor_CoversEveryWeek(t *testing.T) {
	want := map[int]string{
		0: "implantation", 4: "implantation", 5: "embryo", 8: "embryo",
		9: "early_fetus", 12: "early_fetus", 13: "second_trimester", 16: "second_trimester",
		17: "quickening", 20: "quickening", 21: "active_movement", 27: "active_movement",
		28: "third_trimester", 36: "third_trimester", 37: "full_term", 40: "full_term",
		41: "overdue", 45: "overdue",
	}
	for week, stage := range want {
		if b, _ := BandFor(week); b.Stage != stage {
			t.Errorf("BandFor(%d) = %s, want %s", week, b.Stage, stage)
		}
	}
	for i := 1; i < len(Bands); i++ {
		if Bands[i].From != Bands[i-1].To+1 {
			t.Errorf("gap or overlap between bands %d and %d", i-1, i)
		}
	}
}

func TestSymptomsFor_DeterministicSubset(t *testing.T) {
	for week := 0; week <= MaxWeek; week++ {
		a := SymptomsFor(week)
		b := SymptomsFor(week)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("week %d: symptoms differ between calls", week)
		}
		band, _ := BandFor(week)
		if len(a) != band.Shown {
			t.Errorf("week %d: %d symptoms, want %d", week, len(a), band.Shown)
		}
		if len(a) < 3 || len(a) > 6 {
			t.Errorf("week %d: subset size %d outside 3..6", week, len(a))
		}
		seen := map[string]bool{}
		for _, s := range a {
			if seen[s] {
				t.Errorf("week %d: duplicate symptom %s", week, s)
			}
			seen[s] = true
		}
	}
}

func TestTrimester(t *testing.T) {
	tests := map[int]int{0: 1, 12: 1, 13: 2, 27: 2, 28: 3, 41: 3}
	for week, want := range tests {
		if got := Trimester(week); got != want {
			t.Errorf("Trimester(%d) = %d, want %d", week, got, want)
		}
	}
}

func TestChance_MultiplesBonus(t *testing.T) {
	e := engine()
	tests := []struct {
		trimester, fetuses, want int
	}{
		{1, 1, 15}, {2, 1, 5}, {3, 1, 12},
		{1, 2, 25}, {2, 2, 15},
		{1, 3, 40}, {3, 3, 37},
	}
	for _, tt := range tests {
		if got := e.Chance(tt.trimester, tt.fetuses); got != tt.want {
			t.Errorf("Chance(%d, %d) = %d, want %d", tt.trimester, tt.fetuses, got, tt.want)
		}
	}
}

func TestRollComplication_Severity(t *testing.T) {
	now := conceived.AddDate(0, 0, 30) // week 4, first trimester, chance 15
	tests := []struct {
		name     string
		roll     int
		severity Severity
		health   Health
	}{
		{"critical", 3, SeverityCritical, HealthCritical},
		{"serious", 9, SeveritySerious, HealthWarning},
		{"mild", 15, SeverityMild, HealthNormal},
		{"normal", 16, SeverityNone, HealthNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pregnantState(1)
			res := engine(tt.roll, 1).RollComplication(&s, now, false)
			if res.Skipped {
				t.Fatalf("unexpected skip: %s", res.Reason)
			}
			if res.Severity != tt.severity {
				t.Errorf("Severity = %q, want %q", res.Severity, tt.severity)
			}
			if s.Health != tt.health {
				t.Errorf("Health = %q, want %q", s.Health, tt.health)
			}
			wantLog := 0
			if tt.severity != SeverityNone {
				wantLog = 1
			}
			if len(s.Complications) != wantLog {
				t.Errorf("Complications = %d, want %d", len(s.Complications), wantLog)
			}
		})
	}
}

func TestRollComplication_OncePerWeek(t *testing.T) {
	s := pregnantState(1)
	e := engine(50, 50, 50)
	now := conceived.AddDate(0, 0, 30)

	if res := e.RollComplication(&s, now, false); res.Skipped {
		t.Fatal("first check skipped")
	}
	res := e.RollComplication(&s, now.Add(6*24*time.Hour), false)
	if !res.Skipped || res.Reason != SkipTooSoon {
		t.Errorf("second check within a week: skipped=%v reason=%q", res.Skipped, res.Reason)
	}
	if res := e.RollComplication(&s, now.Add(6*24*time.Hour), true); res.Skipped {
		t.Error("forced check should run")
	}
	if res := e.RollComplication(&s, now.Add(14*24*time.Hour), false); res.Skipped {
		t.Error("check after the interval should run")
	}
}

func TestRollComplication_NotPregnant(t *testing.T) {
	s := NewState()
	res := engine(1).RollComplication(&s, conceived, true)
	if !res.Skipped || res.Reason != SkipNotPregnant {
		t.Errorf("got skipped=%v reason=%q", res.Skipped, res.Reason)
	}
}

func TestHealth_NeverDecreases(t *testing.T) {
	s := pregnantState(1)
	e := engine(1, 1, 9, 1, 15, 1)
	now := conceived.AddDate(0, 0, 30)
	for i := 0; i < 3; i++ {
		e.RollComplication(&s, now, true)
		if s.Health != HealthCritical {
			t.Fatalf("roll %d: Health = %q, want critical", i, s.Health)
		}
	}
	if len(s.Complications) != 3 {
		t.Errorf("Complications = %d, want 3", len(s.Complications))
	}
}

func TestDetectBirth(t *testing.T) {
	e := engine()
	tests := []struct {
		name      string
		days      int
		mentioned bool
		wantReset bool
	}{
		{"term birth", 36 * 7, true, true},
		{"too early", 30 * 7, true, false},
		{"no mention", 39 * 7, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pregnantState(2)
			now := conceived.AddDate(0, 0, tt.days)
			o, reset := e.DetectBirth(&s, tt.mentioned, now)
			if reset != tt.wantReset {
				t.Fatalf("reset = %v, want %v", reset, tt.wantReset)
			}
			if !reset {
				if !s.Pregnant {
					t.Error("state cleared without reset")
				}
				return
			}
			if s.Pregnant || s.FetusCount != 1 || len(s.FetusSex) != 0 {
				t.Errorf("state not restored to defaults: %+v", s)
			}
			if o.Kind != OutcomeBirth || o.FetusCount != 2 {
				t.Errorf("outcome = %+v", o)
			}
			if len(s.Outcomes) != 1 {
				t.Errorf("Outcomes = %d, want 1", len(s.Outcomes))
			}
		})
	}
}

func TestSetFetusCount_KeepsSexListInSync(t *testing.T) {
	s := pregnantState(1)
	e := engine(1, 2)
	e.SetFetusCount(&s, 3)
	if s.FetusCount != 3 || len(s.FetusSex) != 3 {
		t.Fatalf("count=%d sexes=%v", s.FetusCount, s.FetusSex)
	}
	if s.FetusSex[1] != SexMale || s.FetusSex[2] != SexFemale {
		t.Errorf("new sexes = %v, want [F M F]", s.FetusSex)
	}
	e.SetFetusCount(&s, 0)
	if s.FetusCount != 1 || len(s.FetusSex) != 1 {
		t.Errorf("clamped count=%d sexes=%v", s.FetusCount, s.FetusSex)
	}
}

func TestGetStatus(t *testing.T) {
	s := pregnantState(1)
	st := s.GetStatus(conceived.AddDate(0, 0, 20*7+3))
	if st.Week != 20 || st.Trimester != 2 || st.Stage != "quickening" {
		t.Errorf("status = week %d trimester %d stage %s", st.Week, st.Trimester, st.Stage)
	}
	if st.Visibility != VisibilityNoticeable {
		t.Errorf("Visibility = %s", st.Visibility)
	}
	if !st.DueDate.Equal(conceived.AddDate(0, 0, 266)) {
		t.Errorf("DueDate = %s", st.DueDate)
	}
	none := NewState()
	if none.GetStatus(conceived).Pregnant {
		t.Error("default state reports pregnant")
	}
}
