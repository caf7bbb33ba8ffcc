package odds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_TiersAreOrdered(t *testing.T) {
	d := Default()
	if !(d.STI.SafeUpTo < d.STI.LowUpTo && d.STI.LowUpTo < d.STI.MediumUpTo && d.STI.MediumUpTo < 100) {
		t.Errorf("STI tiers out of order: %+v", d.STI)
	}
	c := d.Complications
	if !(c.Critical < c.Serious && c.Serious < c.Mild && c.Mild <= c.SeverityScale) {
		t.Errorf("severity tiers out of order: %+v", c)
	}
	if d.Conception.TripletsPercent >= d.Conception.TwinsPercent {
		t.Errorf("multiples are cumulative: triplets %v, twins %v", d.Conception.TripletsPercent, d.Conception.TwinsPercent)
	}
}

func TestLowFertilityVariant(t *testing.T) {
	low, d := LowFertilityVariant(), Default()
	if low.Cycle.Menstrual >= d.Cycle.Menstrual || low.Cycle.Luteal >= d.Cycle.Luteal {
		t.Errorf("variant not lower: %+v", low.Cycle)
	}
	if low.Cycle.Ovulatory != d.Cycle.Ovulatory {
		t.Error("ovulatory modifier should be unchanged")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "odds.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, tb Table)
	}{
		{
			name: "partial override keeps defaults",
			body: "cycle:\n  ovulatory: 2.0\nsti:\n  carrier_high: 80\n",
			check: func(t *testing.T, tb Table) {
				if tb.Cycle.Ovulatory != 2.0 || tb.STI.CarrierHigh != 80 {
					t.Errorf("overrides not applied: %+v %+v", tb.Cycle, tb.STI)
				}
				if tb.Cycle.Luteal != 0.25 || tb.Contraception.Condom != 85 || tb.CycleLength != 28 {
					t.Error("untouched fields lost their defaults")
				}
			},
		},
		{
			name: "zero cycle length falls back",
			body: "cycle_length: 0\n",
			check: func(t *testing.T, tb Table) {
				if tb.CycleLength != 28 {
					t.Errorf("CycleLength = %d", tb.CycleLength)
				}
			},
		},
		{name: "bad yaml", body: "cycle: [", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, err := LoadFile(writeFile(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, tb)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120.0, 0.1, 95); got != 95 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(0.0, 0.1, 95); got != 0.1 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(7, 1, 45); got != 7 {
		t.Errorf("Clamp inside = %v", got)
	}
}
