package cycle

import "github.com/talgya/reprotrack/internal/entropy"

// Symptom keys; the prompt catalog translates them.
var (
	periodSymptoms = map[Intensity][]string{
		IntensityNormal: {"cramps", "fatigue", "lower_back_pain", "bloating"},
		IntensityHeavy:  {"strong_cramps", "fatigue", "headache", "nausea", "dizziness", "lower_back_pain"},
		IntensityLight:  {"mild_cramps", "tiredness", "tender_breasts"},
	}
	pmsSymptoms = []string{
		"irritability", "mood_swings", "bloating", "food_cravings",
		"tender_breasts", "acne", "anxiety", "tearfulness",
	}
	phaseSymptoms = map[Phase][]string{
		PhaseFollicular: {"rising_energy", "better_mood", "clear_skin"},
		PhaseOvulatory:  {"high_libido", "mild_pelvic_twinge", "heightened_senses", "confidence"},
		PhaseLuteal:     {"calm", "slower_energy", "appetite_increase"},
	}
)

// pickSymptoms returns a shuffled subset of the pool for the current day.
func (e *Engine) pickSymptoms(s *State) []string {
	m := s.Menstruation
	var pool []string
	switch {
	case m.Active:
		pool = periodSymptoms[m.Intensity]
	case m.PMS:
		pool = pmsSymptoms
	default:
		pool = phaseSymptoms[e.Phase(s).Phase]
	}
	n := e.Odds.Menstruation.SymptomsShown
	if n <= 0 || n > len(pool) {
		n = len(pool)
	}
	return shuffle(e.Fast, pool)[:n]
}

// shuffle returns a Fisher-Yates shuffled copy of items.
func shuffle(src entropy.Source, items []string) []string {
	out := append([]string(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := entropy.RollUniform(src, i+1) - 1
		out[i], out[j] = out[j], out[i]
	}
	return out
}
