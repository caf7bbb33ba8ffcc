// Package prompt renders engine state into the instructional text blocks the
// host injects before generation, and owns the named output slots.
package prompt

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/talgya/reprotrack/internal/conception"
	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/cycle"
	"github.com/talgya/reprotrack/internal/pregnancy"
	"github.com/talgya/reprotrack/internal/sti"
)

// Formatter renders text in one language.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a formatter for the closest supported match of lang.
func New(lang string) *Formatter {
	tag := Match(lang)
	return &Formatter{tag: tag, p: printer(tag)}
}

// Tag returns the resolved language.
func (f *Formatter) Tag() language.Tag { return f.tag }

func (f *Formatter) english() bool { return f.tag == language.English }

// T translates a catalog key.
func (f *Formatter) T(key string, args ...any) string {
	return f.p.Sprintf(key, args...)
}

func (f *Formatter) list(prefix string, keys []string) string {
	if len(keys) == 0 {
		return f.T("none")
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = f.T(prefix + k)
	}
	return strings.Join(out, f.T("list.sep"))
}

func (f *Formatter) methods(ms []contraception.Method) string {
	keys := make([]string, len(ms))
	for i, m := range ms {
		keys[i] = string(m)
	}
	return f.list("method.", keys)
}

func (f *Formatter) sexes(ss []pregnancy.Sex) string {
	keys := make([]string, len(ss))
	for i, s := range ss {
		keys[i] = string(s)
	}
	return f.list("sex.", keys)
}

func (f *Formatter) kinds(ks []sti.Kind) string {
	keys := make([]string, len(ks))
	for i, k := range ks {
		keys[i] = string(k)
	}
	return f.list("sti.kind.", keys)
}

// Date formats a calendar date.
func (f *Formatter) Date(t time.Time) string {
	if f.english() {
		return t.Format("January 2, 2006")
	}
	return t.Format("02.01.2006")
}

func (f *Formatter) week(n int) any {
	if f.english() {
		return humanize.Ordinal(n)
	}
	return n
}

func (f *Formatter) since(then, now time.Time) string {
	if f.english() {
		return humanize.RelTime(then, now, "ago", "from now")
	}
	days := int(now.Sub(then).Hours() / 24)
	return f.T("days_ago", days)
}

func (f *Formatter) fertility(modifier float64) string {
	switch {
	case modifier >= 1:
		return f.T("fertility.high")
	case modifier >= 0.5:
		return f.T("fertility.medium")
	default:
		return f.T("fertility.low")
	}
}

// Standing is everything the standing status block shows.
type Standing struct {
	StoryDate  time.Time
	Cycle      cycle.State
	Phase      cycle.PhaseInfo
	Methods    []contraception.Method
	Protection float64
	Pregnancy  pregnancy.Status
	Counters   conception.Counters
	Infected   []sti.Kind
}

type block struct{ strings.Builder }

func (b *block) line(s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

// Standing renders the standing instructions, rebuilt after every change.
func (f *Formatter) Standing(v Standing) string {
	var b block
	b.line(f.T("status.header"))
	if !v.StoryDate.IsZero() {
		b.line(f.T("status.story_date", f.Date(v.StoryDate)))
	}
	b.line("")
	if len(v.Methods) == 0 {
		b.line(f.T("status.contra.none"))
	} else {
		b.line(f.T("status.contra", f.methods(v.Methods), v.Protection))
	}
	b.line("")

	if v.Pregnancy.Pregnant {
		f.pregnancyBlock(&b, v.Pregnancy)
	} else {
		f.cycleBlock(&b, v.Cycle, v.Phase)
		b.line(f.T("status.cycle_rules"))
		b.line("")
		b.line(f.T("status.tag_rules"))
	}
	b.line(f.T("status.sti_rules"))
	if len(v.Infected) > 0 {
		b.line(f.T("status.infections", f.kinds(v.Infected)))
	}
	b.line(f.T("status.stats", v.Counters.Checks, v.Counters.Conceptions))
	b.WriteString(f.T("status.footer"))
	return b.String()
}

func (f *Formatter) cycleBlock(b *block, c cycle.State, ph cycle.PhaseInfo) {
	b.line(f.T("status.cycle", c.Day, c.Length, f.T("phase."+string(ph.Phase)), f.fertility(ph.FertilityModifier)))
	m := c.Menstruation
	switch {
	case m.Active:
		b.line(f.T("status.period", c.PeriodDay(), effective(m), f.T("intensity."+string(m.Intensity))))
	case m.PMS:
		b.line(f.T("status.pms"))
	}
	if len(m.Symptoms) > 0 {
		b.line(f.T("status.symptoms", f.list("symptom.", m.Symptoms)))
	}
}

func effective(m cycle.Menstruation) int {
	if m.EffectiveDuration > 0 {
		return m.EffectiveDuration
	}
	return m.Duration
}

func (f *Formatter) pregnancyBlock(b *block, st pregnancy.Status) {
	b.line(f.T("status.preg.header"))
	b.line(f.T("status.preg.week", f.week(st.Week), st.Trimester))
	b.line(f.T("status.preg.stage", f.T("stage."+st.Stage)))
	b.line(f.T("status.preg.visible", f.T("visibility."+st.Visibility)))
	if st.FetusCount > 1 {
		b.line(f.T("status.preg.fetuses", f.T(multiplesKey(st.FetusCount))))
	}
	if len(st.FetusSex) > 0 {
		b.line(f.T("status.preg.sexes", f.sexes(st.FetusSex)))
	}
	b.line(f.T("status.symptoms", f.list("symptom.", st.Symptoms)))
	b.line(f.T("status.preg.advice", f.T("advice."+st.Advice)))
	b.line(f.T("status.preg.health", f.T("health."+string(st.Health))))
	if n := len(st.Complications); n > 0 {
		b.line(f.T("status.preg.compl", n))
	}
	b.line(f.T("status.preg.due", f.Date(st.DueDate)))
	b.line(f.T("status.preg.secret"))
	b.line(f.T("status.preg.rules"))
	b.line("")
}

func multiplesKey(n int) string {
	if n >= 3 {
		return "multiples.3"
	}
	return "multiples.2"
}

// Conception renders a conception roll announcement.
func (f *Formatter) Conception(r conception.Result) string {
	var b block
	b.line(f.T("result.header"))
	if r.Skipped {
		b.line(f.T("conception.skipped"))
		b.WriteString(f.T("result.footer"))
		return b.String()
	}
	b.line(f.T("conception.title"))
	b.line(f.T("conception.day", r.CycleDay, f.T("phase."+string(r.Phase))))
	b.line(f.T("conception.methods", f.methods(r.Methods)))
	if r.ContraceptionFailed {
		b.line(f.T("conception.failed"))
	}
	b.line(f.T("conception.chance", r.Chance))
	b.line(f.T("conception.roll", r.Roll))
	if r.Success {
		b.line(f.T("conception.success"))
		if r.FetusCount > 1 {
			b.line(f.T("conception.multiples", r.FetusCount, f.T(multiplesKey(r.FetusCount))))
		}
		b.line(f.T("conception.secret"))
	} else {
		b.line(f.T("conception.fail"))
	}
	b.WriteString(f.T("result.footer"))
	return b.String()
}

// Complication renders a complication check.
func (f *Formatter) Complication(r pregnancy.CheckResult) string {
	var b block
	b.line(f.T("result.header"))
	switch {
	case r.Skipped && r.Reason == pregnancy.SkipNotPregnant:
		b.line(f.T("complication.not_pregnant"))
	case r.Skipped:
		b.line(f.T("complication.too_soon", f.Date(r.NextCheck)))
	default:
		b.line(f.T("complication.title", r.Trimester))
		b.line(f.T("complication.roll", r.Roll, r.Chance))
		if r.Severity == pregnancy.SeverityNone || r.Complication == nil {
			b.line(f.T("complication.normal"))
			break
		}
		b.line(f.T("complication.found", f.T("severity."+string(r.Severity)), f.T("complication."+r.Complication.Description)))
		b.line(f.T("status.preg.health", f.T("health."+string(r.Health))))
		b.line(f.T("complication.instruct"))
	}
	b.WriteString(f.T("result.footer"))
	return b.String()
}

// Transmission renders an STI check.
func (f *Formatter) Transmission(r sti.CheckResult) string {
	var b block
	b.line(f.T("result.header"))
	b.line(f.T("sti.title", r.Partner))
	b.line(f.T("sti.risk", f.T("risk."+string(r.Profile.Risk))))
	if r.CondomUsed {
		b.line(f.T("sti.condom"))
	}
	if len(r.Profile.Infected) == 0 {
		b.line(f.T("sti.clean"))
	}
	for _, a := range r.Attempts {
		kind := f.T("sti.kind." + string(a.Kind))
		if a.AlreadyInfected {
			b.line(f.T("sti.already", kind))
			continue
		}
		outcome := f.T("sti.no")
		if a.Transmitted {
			outcome = f.T("sti.yes")
		}
		b.line(f.T("sti.attempt", kind, a.Chance, a.Roll, outcome))
	}
	for _, a := range r.Acquired {
		sym := f.T("sti.asymptomatic")
		if a.Symptomatic {
			sym = f.T("sti.symptomatic")
		}
		treatment := f.T("treatment." + string(sti.Catalog[a.Kind].Treatment))
		b.line(f.T("sti.acquired", f.T("sti.kind."+string(a.Kind)), a.IncubationDays, sym, treatment))
	}
	if len(r.Acquired) == 0 {
		b.line(f.T("sti.none_acquired"))
	} else {
		b.line(f.T("sti.instruct"))
	}
	b.WriteString(f.T("result.footer"))
	return b.String()
}

// Birth renders the end of a pregnancy by birth.
func (f *Formatter) Birth(o pregnancy.Outcome) string {
	noun := f.T("birth.child")
	if o.FetusCount > 1 {
		noun = f.T("birth.children")
	}
	return f.T("result.header") + "\n" + f.T("birth.done", f.week(o.Week), o.FetusCount, noun) + "\n" + f.T("result.footer")
}

// Reminder renders the note sent when text denies an active pregnancy.
func (f *Formatter) Reminder(st pregnancy.Status) string {
	return f.T("result.header") + "\n" + f.T("reminder.still", f.week(st.Week)) + "\n" + f.T("result.footer")
}

// Period renders the menstruation status for the period command.
func (f *Formatter) Period(c cycle.State) string {
	var b block
	m := c.Menstruation
	switch {
	case m.Active:
		b.line(f.T("period.active", c.PeriodDay(), effective(m), f.T("intensity."+string(m.Intensity))))
	case m.PMS:
		b.line(f.T("period.pms", c.DaysUntilPeriod()))
	default:
		b.line(f.T("period.none", c.DaysUntilPeriod()))
	}
	if len(m.Symptoms) > 0 {
		b.line(f.T("status.symptoms", f.list("symptom.", m.Symptoms)))
	}
	if !m.LastPeriodDate.IsZero() {
		b.line(f.T("period.last", f.Date(m.LastPeriodDate)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Cycle renders the cycle line.
func (f *Formatter) Cycle(c cycle.State, ph cycle.PhaseInfo) string {
	var b block
	f.cycleBlock(&b, c, ph)
	return strings.TrimRight(b.String(), "\n")
}

// Pregnancy renders the status for the pregnancy command.
func (f *Formatter) Pregnancy(st pregnancy.Status, now time.Time) string {
	if !st.Pregnant {
		return f.T("pregnancy.none")
	}
	var b block
	f.pregnancyBlock(&b, st)
	b.line(f.T("pregnancy.conceived", f.Date(st.Conceived), f.since(st.Conceived, now)))
	b.line(f.T("pregnancy.elapsed", st.DaysElapsed))
	return strings.TrimRight(b.String(), "\n")
}

// Toggle renders a contraception toggle.
func (f *Formatter) Toggle(m contraception.Method, on bool) string {
	name := f.T("method." + string(m))
	if on {
		return f.T("method.on", name)
	}
	return f.T("method.off", name)
}
