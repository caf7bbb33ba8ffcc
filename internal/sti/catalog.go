package sti

// Kind is an infection kind.
type Kind string

const (
	Chlamydia      Kind = "chlamydia"
	Gonorrhea      Kind = "gonorrhea"
	Trichomoniasis Kind = "trichomoniasis"
	Syphilis       Kind = "syphilis"
	Herpes         Kind = "herpes"
	HPV            Kind = "hpv"
	HepatitisB     Kind = "hepatitis_b"
	HIV            Kind = "hiv"
)

// Treatment classifies how an infection can later be resolved.
type Treatment string

const (
	Curable    Treatment = "curable"
	Manageable Treatment = "manageable"
	Clearable  Treatment = "clearable" // often resolves on its own
)

// Info is the fixed profile of an infection kind. Rates are percent per
// encounter; ToFemale applies when the receiving character is female.
type Info struct {
	Kind            Kind
	ToFemale        float64
	ToMale          float64
	CondomFactor    float64 // multiplier on the chance when a condom is used
	IncubationMin   int     // days
	IncubationMax   int     // days
	SymptomaticRate int     // percent
	Treatment       Treatment
}

// Catalog lists every modeled infection.
var Catalog = map[Kind]Info{
	Chlamydia:      {Chlamydia, 40, 32, 0.1, 7, 21, 30, Curable},
	Gonorrhea:      {Gonorrhea, 50, 25, 0.1, 2, 14, 50, Curable},
	Trichomoniasis: {Trichomoniasis, 35, 20, 0.2, 5, 28, 30, Curable},
	Syphilis:       {Syphilis, 30, 30, 0.5, 10, 90, 60, Curable},
	Herpes:         {Herpes, 10, 5, 0.5, 2, 12, 20, Manageable},
	HPV:            {HPV, 20, 20, 0.3, 30, 240, 10, Clearable},
	HepatitisB:     {HepatitisB, 15, 15, 0.2, 45, 180, 50, Clearable},
	HIV:            {HIV, 1, 1, 0.2, 14, 28, 50, Manageable},
}

// Risk is a partner's risk tier.
type Risk string

const (
	RiskUnknown Risk = "unknown"
	RiskSafe    Risk = "safe"
	RiskLow     Risk = "low"
	RiskMedium  Risk = "medium"
	RiskHigh    Risk = "high"
)

// pools are the infections a carrier of each tier draws from.
var pools = map[Risk][]Kind{
	RiskLow:    {Chlamydia, HPV, Herpes, Trichomoniasis},
	RiskMedium: {Chlamydia, HPV, Herpes, Trichomoniasis, Gonorrhea, Syphilis},
	RiskHigh:   {Chlamydia, HPV, Herpes, Trichomoniasis, Gonorrhea, Syphilis, HepatitisB, HIV},
}
