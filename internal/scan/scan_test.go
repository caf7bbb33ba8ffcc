package scan

import (
	"testing"
	"time"
)

func TestScan_Tags(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		day        int
		conception bool
	}{
		{"tag pair", "She sighs. [CYCLE_DAY:14][CONCEPTION_CHECK]", 14, true},
		{"russian tag", "...[ПРОВЕРКА_ЗАЧАТИЯ]", 0, true},
		{"html comment", "text <!-- CONCEPTION_CHECK --> more", 0, true},
		{"bracketed comment", "<!--[ПРОВЕРКА_ЗАЧАТИЯ]-->", 0, true},
		{"lower case", "[conception_check]", 0, true},
		{"day only", "[CYCLE_DAY: 3]", 3, false},
		{"russian day tag", "[ДЕНЬ_ЦИКЛА:21]", 21, false},
		{"no tag", "Nothing happens.", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Scan(tt.text)
			if r.CycleDay != tt.day || r.Conception != tt.conception {
				t.Errorf("day=%d conception=%v, want %d %v", r.CycleDay, r.Conception, tt.day, tt.conception)
			}
		})
	}
}

func TestScan_STITags(t *testing.T) {
	r := Scan("[STI_CHECK:Alex] then [STI_CHECK: Sam :condom] and again [STI_CHECK:alex] [ПРОВЕРКА_ИППП:Иван:презерватив]")
	want := []STITrigger{{"Alex", false}, {"Sam", true}, {"Иван", true}}
	if len(r.STI) != len(want) {
		t.Fatalf("STI = %+v", r.STI)
	}
	for i := range want {
		if r.STI[i] != want[i] {
			t.Errorf("STI[%d] = %+v, want %+v", i, r.STI[i], want[i])
		}
	}
}

func TestScan_Dates(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 0, 0, 0, 0, time.UTC) }
	tests := []struct {
		text string
		want time.Time
	}{
		{"It was March 15, 2024.", d(2024, 3, 15)},
		{"on the 3rd of June 2023", d(2023, 6, 3)},
		{"Sept. 9 2025 arrived", d(2025, 9, 9)},
		{"Утро 15 марта 2024 года", d(2024, 3, 15)},
		{"2 мая 2024", d(2024, 5, 2)},
		{"Log 2024-03-15", d(2024, 3, 15)},
		{"Дата: 15.03.2024", d(2024, 3, 15)},
		{"Dated 03/15/24", d(2024, 3, 15)},
		{"31.02.2024 then 01.03.2024", d(2024, 3, 1)},
		{"no date here", time.Time{}},
	}
	for _, tt := range tests {
		r := Scan(tt.text)
		if !r.Date.Equal(tt.want) {
			t.Errorf("Scan(%q).Date = %s, want %s", tt.text, r.Date.Format(time.DateOnly), tt.want.Format(time.DateOnly))
		}
	}
}

func TestScan_Weeks(t *testing.T) {
	tests := []struct {
		text string
		week int
		ok   bool
	}{
		{"She is 20 weeks pregnant.", 20, true},
		{"now 7 weeks along", 7, true},
		{"in week 12 of her pregnancy", 12, true},
		{"на 20-й неделе беременности", 20, true},
		{"Срок 32 недели.", 32, true},
		{"two weeks later", 0, false},
	}
	for _, tt := range tests {
		r := Scan(tt.text)
		if r.HasWeek != tt.ok || r.Week != tt.week {
			t.Errorf("Scan(%q) week=%d ok=%v, want %d %v", tt.text, r.Week, r.HasWeek, tt.week, tt.ok)
		}
	}
}

func TestScan_Keywords(t *testing.T) {
	tests := []struct {
		text        string
		fetuses     int
		birth       bool
		notPregnant bool
	}{
		{"It's twins!", 2, false, false},
		{"УЗИ показало тройню.", 3, false, false},
		{"twins? No, triplets.", 3, false, false},
		{"близнецы толкаются", 2, false, false},
		{"a double-sided coin", 0, false, false},
		{"She gave birth at dawn.", 0, true, false},
		{"Она родила сына.", 0, true, false},
		{"The test says I'm not pregnant.", 0, false, true},
		{"Тест отрицательный, она не беременна.", 0, false, true},
	}
	for _, tt := range tests {
		r := Scan(tt.text)
		if r.Fetuses != tt.fetuses || r.Birth != tt.birth || r.NotPregnant != tt.notPregnant {
			t.Errorf("Scan(%q) = fetuses %d birth %v not-pregnant %v", tt.text, r.Fetuses, r.Birth, r.NotPregnant)
		}
	}
}

func TestScan_FindingsRecordRule(t *testing.T) {
	r := Scan("[CYCLE_DAY:9] 15 марта 2024")
	if len(r.Findings) != 2 {
		t.Fatalf("Findings = %+v", r.Findings)
	}
	if r.Findings[0].Rule != "cycle_day_tag" || r.Findings[1].Locale != LocaleRU {
		t.Errorf("Findings = %+v", r.Findings)
	}
	if !Scan("   ").Empty() {
		t.Error("blank text produced findings")
	}
}
