// Package odds holds every tunable probability constant of the tracker.
// Values are illustrative game-design numbers, not medical data. Defaults
// can be overridden per field from a YAML file.
package odds

import (
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// CycleModifiers are the fertility multipliers for each cycle phase.
type CycleModifiers struct {
	Menstrual  float64 `yaml:"menstrual"`
	Follicular float64 `yaml:"follicular"`
	Ovulatory  float64 `yaml:"ovulatory"`
	Luteal     float64 `yaml:"luteal"`
}

// Contraception holds base effectiveness percentages and method edge rules.
type Contraception struct {
	Condom     float64 `yaml:"condom"`
	Pill       float64 `yaml:"pill"`
	IUD        float64 `yaml:"iud"`
	Implant    float64 `yaml:"implant"`
	Withdrawal float64 `yaml:"withdrawal"`

	CondomBreak float64 `yaml:"condom_break"` // percent per encounter

	// Pill ramp-up: fraction of full effectiveness by days taken.
	PillEarlyDays   int     `yaml:"pill_early_days"`
	PillEarlyFactor float64 `yaml:"pill_early_factor"`
	PillFullDays    int     `yaml:"pill_full_days"`
	PillMidFactor   float64 `yaml:"pill_mid_factor"`
}

// Conception holds the inputs of the conception chance formula.
type Conception struct {
	BaseFertility    float64 `yaml:"base_fertility"`
	GlobalMultiplier float64 `yaml:"global_multiplier"`
	MinChance        float64 `yaml:"min_chance"`
	MaxChance        float64 `yaml:"max_chance"`

	// Cumulative percentages, rolled at 0.1 resolution.
	TripletsPercent float64 `yaml:"triplets_percent"`
	TwinsPercent    float64 `yaml:"twins_percent"`
}

// Complications holds trimester bands and severity tiers.
type Complications struct {
	FirstTrimester  int `yaml:"first_trimester"`
	SecondTrimester int `yaml:"second_trimester"`
	ThirdTrimester  int `yaml:"third_trimester"`
	TwinsBonus      int `yaml:"twins_bonus"`
	TripletsBonus   int `yaml:"triplets_bonus"`

	// Severity tiers on a 1..SeverityScale scale.
	Critical      int `yaml:"critical"`
	Serious       int `yaml:"serious"`
	Mild          int `yaml:"mild"`
	SeverityScale int `yaml:"severity_scale"`

	IntervalDays int `yaml:"interval_days"`
}

// STI holds partner risk tier thresholds and carrier chances.
type STI struct {
	// Cumulative thresholds on a 1..100 roll.
	SafeUpTo   int `yaml:"safe_up_to"`
	LowUpTo    int `yaml:"low_up_to"`
	MediumUpTo int `yaml:"medium_up_to"`

	// Chance that a partner in the tier carries anything.
	CarrierLow    int `yaml:"carrier_low"`
	CarrierMedium int `yaml:"carrier_medium"`
	CarrierHigh   int `yaml:"carrier_high"`

	// Chance of each additional infection once a partner is a carrier.
	ExtraInfection int `yaml:"extra_infection"`
}

// Menstruation holds period defaults.
type Menstruation struct {
	Duration      int `yaml:"duration"`
	PMSDuration   int `yaml:"pms_duration"`
	Irregularity  int `yaml:"irregularity"`
	Jitter        int `yaml:"jitter"`
	MinDuration   int `yaml:"min_duration"`
	MaxDuration   int `yaml:"max_duration"`
	SymptomsShown int `yaml:"symptoms_shown"`
}

// Table is the complete set of tunable constants.
type Table struct {
	CycleLength   int            `yaml:"cycle_length"`
	Cycle         CycleModifiers `yaml:"cycle"`
	Menstruation  Menstruation   `yaml:"menstruation"`
	Contraception Contraception  `yaml:"contraception"`
	Conception    Conception     `yaml:"conception"`
	Complications Complications  `yaml:"complications"`
	STI           STI            `yaml:"sti"`
}

// Default returns the stock table.
func Default() Table {
	return Table{
		CycleLength: 28,
		Cycle: CycleModifiers{
			Menstrual:  0.25,
			Follicular: 0.5,
			Ovulatory:  1.65,
			Luteal:     0.25,
		},
		Menstruation: Menstruation{
			Duration:      5,
			PMSDuration:   5,
			Irregularity:  20,
			Jitter:        2,
			MinDuration:   2,
			MaxDuration:   8,
			SymptomsShown: 3,
		},
		Contraception: Contraception{
			Condom:          85,
			Pill:            91,
			IUD:             99,
			Implant:         99,
			Withdrawal:      78,
			CondomBreak:     2,
			PillEarlyDays:   7,
			PillEarlyFactor: 0.5,
			PillFullDays:    21,
			PillMidFactor:   0.85,
		},
		Conception: Conception{
			BaseFertility:    20,
			GlobalMultiplier: 1,
			MinChance:        0.1,
			MaxChance:        95,
			TripletsPercent:  0.1,
			TwinsPercent:     3,
		},
		Complications: Complications{
			FirstTrimester:  15,
			SecondTrimester: 5,
			ThirdTrimester:  12,
			TwinsBonus:      10,
			TripletsBonus:   15,
			Critical:        5,
			Serious:         15,
			Mild:            25,
			SeverityScale:   25,
			IntervalDays:    7,
		},
		STI: STI{
			SafeUpTo:       60,
			LowUpTo:        80,
			MediumUpTo:     95,
			CarrierLow:     15,
			CarrierMedium:  35,
			CarrierHigh:    60,
			ExtraInfection: 25,
		},
	}
}

// LowFertilityVariant returns the default table with the menstrual and
// luteal modifiers of the stricter variant (absolute 1-2% chance).
func LowFertilityVariant() Table {
	t := Default()
	t.Cycle.Menstrual = 0.05
	t.Cycle.Luteal = 0.1
	return t
}

// LoadFile reads a YAML table. Fields absent from the file keep defaults.
func LoadFile(path string) (Table, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading odds file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parsing odds file: %w", err)
	}
	if t.CycleLength < 1 {
		t.CycleLength = Default().CycleLength
	}
	return t, nil
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
