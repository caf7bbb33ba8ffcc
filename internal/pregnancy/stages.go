package pregnancy

import (
	"sort"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Visibility of the belly, as stage text keys.
const (
	VisibilityNone       = "not_visible"
	VisibilityBarely     = "barely_visible"
	VisibilityNoticeable = "noticeable"
	VisibilityObvious    = "obvious"
)

// Band is a non-overlapping week range with its narrative text keys.
type Band struct {
	From, To   int // inclusive; To < 0 means open-ended
	Stage      string
	Visibility string
	Advice     string
	Symptoms   []string
	Shown      int
}

// Bands are ordered by week and cover every week from 0.
var Bands = []Band{
	{0, 4, "implantation", VisibilityNone, "advice_unaware",
		[]string{"none_noticeable", "light_spotting", "mild_cramping", "fatigue", "breast_tenderness"}, 3},
	{5, 8, "embryo", VisibilityNone, "advice_suspect",
		[]string{"missed_period", "morning_sickness", "fatigue", "breast_tenderness", "frequent_urination", "food_aversions", "mood_swings"}, 4},
	{9, 12, "early_fetus", VisibilityNone, "advice_first_checkup",
		[]string{"morning_sickness", "fatigue", "food_aversions", "heartburn", "headaches", "mood_swings", "frequent_urination"}, 5},
	{13, 16, "second_trimester", VisibilityBarely, "advice_energy_returns",
		[]string{"nausea_fading", "energy_returning", "growing_belly", "round_ligament_pain", "first_flutters"}, 4},
	{17, 20, "quickening", VisibilityNoticeable, "advice_anatomy_scan",
		[]string{"fetal_movement", "growing_belly", "back_pain", "nasal_congestion", "increased_appetite", "skin_changes"}, 4},
	{21, 27, "active_movement", VisibilityObvious, "advice_glucose_test",
		[]string{"strong_kicks", "back_pain", "swollen_ankles", "stretch_marks", "leg_cramps", "heartburn", "shortness_of_breath"}, 5},
	{28, 36, "third_trimester", VisibilityObvious, "advice_birth_plan",
		[]string{"braxton_hicks", "shortness_of_breath", "swollen_ankles", "insomnia", "frequent_urination", "back_pain", "pelvic_pressure", "heartburn"}, 6},
	{37, 40, "full_term", VisibilityObvious, "advice_labor_signs",
		[]string{"lightening", "pelvic_pressure", "nesting_instinct", "braxton_hicks", "mucus_plug", "insomnia"}, 5},
	{41, -1, "overdue", VisibilityObvious, "advice_induction",
		[]string{"pelvic_pressure", "exhaustion", "anxiety", "irregular_contractions", "insomnia"}, 4},
}

// BandFor returns the band containing week and its index.
func BandFor(week int) (Band, int) {
	if week < 0 {
		week = 0
	}
	for i, b := range Bands {
		if week >= b.From && (b.To < 0 || week <= b.To) {
			return b, i
		}
	}
	return Bands[len(Bands)-1], len(Bands) - 1
}

// SymptomsFor returns the symptom subset shown for a week. The same week
// always yields the same subset: candidates are ranked by a noise field
// seeded per band and sampled at the week.
func SymptomsFor(week int) []string {
	band, idx := BandFor(week)
	noise := opensimplex.NewNormalized(int64(idx + 1))

	type scored struct {
		key   string
		score float64
	}
	ranked := make([]scored, len(band.Symptoms))
	for i, s := range band.Symptoms {
		ranked[i] = scored{s, noise.Eval2(float64(week)*0.61, float64(i)*1.7)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	n := min(band.Shown, len(ranked))
	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].key
	}
	return out
}

// Status is the derived view of a pregnancy at a point in time.
type Status struct {
	Pregnant      bool           `json:"pregnant"`
	Week          int            `json:"week"`
	Trimester     int            `json:"trimester"`
	DaysElapsed   int            `json:"days_elapsed"`
	Stage         string         `json:"stage"`
	Visibility    string         `json:"visibility"`
	Advice        string         `json:"advice"`
	Symptoms      []string       `json:"symptoms"`
	FetusCount    int            `json:"fetus_count"`
	FetusSex      []Sex          `json:"fetus_sex"`
	Health        Health         `json:"health"`
	Complications []Complication `json:"complications"`
	Conceived     time.Time      `json:"conceived"`
	DueDate       time.Time      `json:"due_date"`
	Manual        bool           `json:"manual_week"`
}

// GetStatus derives the current status. It has no randomness.
func (s *State) GetStatus(now time.Time) Status {
	if !s.Pregnant {
		return Status{Health: HealthNormal}
	}
	week := s.Refresh(now)
	band, _ := BandFor(week)
	health := s.Health
	if health == "" {
		health = HealthNormal
	}
	return Status{
		Pregnant:      true,
		Week:          week,
		Trimester:     Trimester(week),
		DaysElapsed:   s.DaysElapsed(now),
		Stage:         band.Stage,
		Visibility:    band.Visibility,
		Advice:        band.Advice,
		Symptoms:      SymptomsFor(week),
		FetusCount:    s.FetusCount,
		FetusSex:      s.FetusSex,
		Health:        health,
		Complications: s.Complications,
		Conceived:     s.ConceptionDate,
		DueDate:       s.DueDate(),
		Manual:        s.WeekOverride != nil,
	}
}
