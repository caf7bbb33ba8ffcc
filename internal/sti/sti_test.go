package sti

import (
	"testing"
	"time"

	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
)

var now = time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

func engine(rolls ...int) (*Engine, *entropy.Script) {
	s := entropy.NewScript(rolls...)
	return &Engine{Odds: odds.Default().STI, Fair: s, Female: true}, s
}

func TestAssessPartnerRisk_Tiers(t *testing.T) {
	tests := []struct {
		roll int
		want Risk
	}{
		{1, RiskSafe}, {60, RiskSafe}, {61, RiskLow}, {80, RiskLow},
		{81, RiskMedium}, {95, RiskMedium}, {96, RiskHigh}, {100, RiskHigh},
	}
	for _, tt := range tests {
		e, _ := engine(tt.roll, 100)
		var s State
		if p := e.AssessPartnerRisk(&s, "Alex", now); p.Risk != tt.want {
			t.Errorf("roll %d -> %s, want %s", tt.roll, p.Risk, tt.want)
		}
	}
}

func TestAssessPartnerRisk_GeneratedOnce(t *testing.T) {
	// medium tier, carrier, fifth pool entry, no extra infection
	e, script := engine(90, 10, 5, 99)
	var s State
	first := e.AssessPartnerRisk(&s, "  Alex ", now)
	if first.Risk != RiskMedium || len(first.Infected) != 1 || first.Infected[0] != Gonorrhea {
		t.Fatalf("profile = %+v", first)
	}
	if script.Remaining() != 0 {
		t.Fatalf("%d rolls left unused", script.Remaining())
	}

	again := e.AssessPartnerRisk(&s, "alex", now.Add(time.Hour))
	if again != first {
		t.Error("second assessment produced a new profile")
	}
	if len(s.Profiles) != 1 {
		t.Errorf("Profiles = %d, want 1", len(s.Profiles))
	}
}

func TestAssessPartnerRisk_SafeNeverCarries(t *testing.T) {
	e, script := engine(30, 1)
	var s State
	p := e.AssessPartnerRisk(&s, "Sam", now)
	if p.Risk != RiskSafe || len(p.Infected) != 0 {
		t.Errorf("profile = %+v", p)
	}
	if script.Remaining() != 1 {
		t.Error("safe partner should not roll a carrier check")
	}
}

func TestCheckTransmission(t *testing.T) {
	tests := []struct {
		name     string
		condom   bool
		roll     int
		chance   float64
		acquired bool
	}{
		{"unprotected hit", false, 50, 50, true},
		{"unprotected miss", false, 51, 50, false},
		{"condom hit", true, 5, 5, true},
		{"condom miss", true, 6, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// profile rolls, transmission roll, incubation roll, symptomatic roll
			e, _ := engine(90, 10, 5, 99, tt.roll, 3, 1)
			var s State
			res := e.CheckTransmission(&s, "Alex", tt.condom, now)
			if len(res.Attempts) != 1 || res.Attempts[0].Chance != tt.chance {
				t.Fatalf("attempts = %+v", res.Attempts)
			}
			if got := len(res.Acquired) == 1; got != tt.acquired {
				t.Fatalf("acquired = %v, want %v", got, tt.acquired)
			}
			if !tt.acquired {
				return
			}
			a := res.Acquired[0]
			if a.Kind != Gonorrhea || a.Source != "Alex" || a.IncubationDays != 4 || !a.Symptomatic {
				t.Errorf("acquisition = %+v", a)
			}
			if !s.User.Has(Gonorrhea) || len(s.User.History) != 1 {
				t.Errorf("user = %+v", s.User)
			}
		})
	}
}

func TestCheckTransmission_NoReacquisition(t *testing.T) {
	e, script := engine(90, 10, 5, 99, 1, 1, 1)
	var s State
	e.CheckTransmission(&s, "Alex", false, now)
	if !s.User.Has(Gonorrhea) {
		t.Fatal("setup: infection not acquired")
	}

	res := e.CheckTransmission(&s, "Alex", false, now.Add(time.Hour))
	if len(res.Acquired) != 0 || !res.Attempts[0].AlreadyInfected {
		t.Errorf("reacquired: %+v", res)
	}
	if len(s.User.Infected) != 1 || len(s.User.History) != 1 {
		t.Errorf("user = %+v", s.User)
	}
	if script.Remaining() != 0 {
		t.Errorf("%d rolls left", script.Remaining())
	}
}

func TestTransmissionChance_Direction(t *testing.T) {
	e, _ := engine()
	if got := e.TransmissionChance(Chlamydia, false); got != 40 {
		t.Errorf("to female = %v, want 40", got)
	}
	e.Female = false
	if got := e.TransmissionChance(Chlamydia, false); got != 32 {
		t.Errorf("to male = %v, want 32", got)
	}
	if got := e.TransmissionChance("flu", true); got != 0 {
		t.Errorf("unknown kind = %v", got)
	}
}

func TestPartnerKey(t *testing.T) {
	for _, in := range []string{"Alex", " alex ", "ALEX"} {
		if PartnerKey(in) != "alex" {
			t.Errorf("PartnerKey(%q) = %q", in, PartnerKey(in))
		}
	}
	if PartnerKey("Mary  Jane") != "mary jane" {
		t.Error("inner whitespace not collapsed")
	}
}
