// Package scan extracts triggers from incoming narrative text. Every
// trigger is a row in a declarative rule table evaluated in priority order,
// so adding a locale means adding rows.
package scan

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind is what a rule detects.
type Kind string

const (
	KindCycleDay    Kind = "cycle_day"
	KindConception  Kind = "conception"
	KindSTI         Kind = "sti"
	KindDate        Kind = "date"
	KindWeek        Kind = "week"
	KindMultiples   Kind = "multiples"
	KindBirth       Kind = "birth"
	KindNotPregnant Kind = "not_pregnant"
)

// Locale of a rule. Tags are locale-neutral.
type Locale string

const (
	LocaleAny Locale = ""
	LocaleEN  Locale = "en"
	LocaleRU  Locale = "ru"
)

// Finding is one extracted value.
type Finding struct {
	Kind    Kind      `json:"kind"`
	Rule    string    `json:"rule"`
	Locale  Locale    `json:"locale,omitempty"`
	Match   string    `json:"match"`
	Int     int       `json:"int,omitempty"`
	Date    time.Time `json:"date,omitempty"`
	Partner string    `json:"partner,omitempty"`
	Condom  bool      `json:"condom,omitempty"`
}

// Extractor turns submatches into a finding. It reports false on values
// that parse but are invalid, like 31 February.
type Extractor func(m []string) (Finding, bool)

// Rule is one row of the table.
type Rule struct {
	Name    string
	Kind    Kind
	Locale  Locale
	Pattern *regexp.Regexp
	Extract Extractor
}

// STITrigger asks for a transmission roll with a partner.
type STITrigger struct {
	Partner string `json:"partner"`
	Condom  bool   `json:"condom"`
}

// Result collects everything found in one text. Single-valued kinds keep
// the first match in rule order.
type Result struct {
	CycleDay    int          `json:"cycle_day,omitempty"`
	Conception  bool         `json:"conception,omitempty"`
	STI         []STITrigger `json:"sti,omitempty"`
	Date        time.Time    `json:"date,omitempty"`
	Week        int          `json:"week"`
	HasWeek     bool         `json:"has_week,omitempty"`
	Fetuses     int          `json:"fetuses,omitempty"`
	Birth       bool         `json:"birth,omitempty"`
	NotPregnant bool         `json:"not_pregnant,omitempty"`
	Findings    []Finding    `json:"findings,omitempty"`
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return len(r.Findings) == 0
}

// Scan runs the default table over text.
func Scan(text string) Result {
	return ScanWith(Rules, text)
}

// ScanWith runs rules over text in order.
func ScanWith(rules []Rule, text string) Result {
	var res Result
	if strings.TrimSpace(text) == "" {
		return res
	}
	for _, rule := range rules {
		if res.taken(rule.Kind) {
			continue
		}
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			f, ok := rule.Extract(m)
			if !ok {
				continue
			}
			f.Kind, f.Rule, f.Locale, f.Match = rule.Kind, rule.Name, rule.Locale, m[0]
			res.apply(f)
			if res.taken(rule.Kind) {
				break
			}
		}
	}
	return res
}

// taken reports whether a single-valued kind already has a value.
func (r *Result) taken(k Kind) bool {
	switch k {
	case KindCycleDay:
		return r.CycleDay != 0
	case KindConception:
		return r.Conception
	case KindDate:
		return !r.Date.IsZero()
	case KindWeek:
		return r.HasWeek
	case KindMultiples:
		return r.Fetuses != 0
	case KindBirth:
		return r.Birth
	case KindNotPregnant:
		return r.NotPregnant
	}
	return false
}

func (r *Result) apply(f Finding) {
	switch f.Kind {
	case KindCycleDay:
		r.CycleDay = f.Int
	case KindConception:
		r.Conception = true
	case KindSTI:
		for _, have := range r.STI {
			if strings.EqualFold(have.Partner, f.Partner) && have.Condom == f.Condom {
				return
			}
		}
		r.STI = append(r.STI, STITrigger{Partner: f.Partner, Condom: f.Condom})
	case KindDate:
		r.Date = f.Date
	case KindWeek:
		r.Week, r.HasWeek = f.Int, true
	case KindMultiples:
		r.Fetuses = f.Int
	case KindBirth:
		r.Birth = true
	case KindNotPregnant:
		r.NotPregnant = true
	}
	r.Findings = append(r.Findings, f)
}

func flag([]string) (Finding, bool) { return Finding{}, true }

func constant(n int) Extractor {
	return func([]string) (Finding, bool) { return Finding{Int: n}, true }
}

func number(group int) Extractor {
	return func(m []string) (Finding, bool) {
		n, err := strconv.Atoi(m[group])
		if err != nil {
			return Finding{}, false
		}
		return Finding{Int: n}, true
	}
}

func partner(m []string) (Finding, bool) {
	name := strings.TrimSpace(m[1])
	if name == "" {
		return Finding{}, false
	}
	return Finding{Partner: name, Condom: m[2] != ""}, true
}

// date builds an extractor from the submatch positions of day, month and
// year. A month group may hold a number or a month name.
func date(day, month, year int) Extractor {
	return func(m []string) (Finding, bool) {
		d, err := strconv.Atoi(m[day])
		if err != nil {
			return Finding{}, false
		}
		mon, ok := monthOf(m[month])
		if !ok {
			return Finding{}, false
		}
		y, err := strconv.Atoi(m[year])
		if err != nil {
			return Finding{}, false
		}
		if len(m[year]) == 2 {
			y += 2000
		}
		t := time.Date(y, mon, d, 0, 0, 0, 0, time.UTC)
		if t.Day() != d || t.Month() != mon {
			return Finding{}, false
		}
		return Finding{Date: t}, true
	}
}

func monthOf(s string) (time.Month, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	s = strings.ToLower(strings.TrimSuffix(s, "."))
	for prefix, m := range monthNames {
		if strings.HasPrefix(s, prefix) {
			return m, true
		}
	}
	return 0, false
}

// monthNames maps unambiguous prefixes to months; Russian genitive forms
// share their stem with the nominative.
var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
	"январ": time.January, "феврал": time.February, "март": time.March, "апрел": time.April,
	"мая": time.May, "май": time.May, "июн": time.June, "июл": time.July, "август": time.August,
	"сентябр": time.September, "октябр": time.October, "ноябр": time.November, "декабр": time.December,
}
