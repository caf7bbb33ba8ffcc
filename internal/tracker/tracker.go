// Package tracker wires the engines to the host: it scans incoming
// narrative text, runs the rolls it triggers, keeps the prompt slots
// current and persists the settings after every change.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/talgya/reprotrack/internal/conception"
	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/cycle"
	"github.com/talgya/reprotrack/internal/entropy"
	"github.com/talgya/reprotrack/internal/odds"
	"github.com/talgya/reprotrack/internal/persistence"
	"github.com/talgya/reprotrack/internal/pregnancy"
	"github.com/talgya/reprotrack/internal/prompt"
	"github.com/talgya/reprotrack/internal/scan"
	"github.com/talgya/reprotrack/internal/settings"
	"github.com/talgya/reprotrack/internal/sti"
)

// ErrInternal wraps a fault recovered at the tracker boundary.
var ErrInternal = errors.New("internal fault")

// DefaultResultDelay is how long a roll announcement stays in its slot.
const DefaultResultDelay = 2 * time.Second

// Level is a notification severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
)

// Notifier shows a cosmetic notification. It must not call back into the
// tracker.
type Notifier interface {
	Notify(msg string, level Level)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string, level Level)

// Notify implements Notifier.
func (f NotifierFunc) Notify(msg string, level Level) { f(msg, level) }

// Journal records every roll for audit.
type Journal interface {
	RecordRoll(ctx context.Context, rolls ...persistence.Roll) error
}

// Options configures a Tracker. Every collaborator may be nil.
type Options struct {
	Odds        odds.Table
	Fair        entropy.Source // conception, transmission, complications
	Fast        entropy.Source // cosmetic shuffles
	Saver       settings.Saver
	Journal     Journal
	Notifier    Notifier
	Injector    prompt.Injector
	ResultDelay time.Duration
	Clock       func() time.Time
}

// Tracker owns the settings object. All methods are safe for concurrent use.
type Tracker struct {
	odds    odds.Table
	fair    entropy.Source
	fast    entropy.Source
	saver   settings.Saver
	journal Journal
	notify  Notifier
	slots   *prompt.Slots
	delay   time.Duration
	clock   func() time.Time

	mu       sync.Mutex
	settings *settings.Settings
	active   string
}

// New creates a tracker over loaded settings.
func New(s *settings.Settings, opts Options) *Tracker {
	if s == nil {
		s = settings.Defaults()
	}
	if opts.Fair == nil {
		opts.Fair = entropy.Crypto{}
	}
	if opts.Fast == nil {
		opts.Fast = entropy.NewFast(0)
	}
	if opts.ResultDelay <= 0 {
		opts.ResultDelay = DefaultResultDelay
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Tracker{
		odds:     opts.Odds,
		fair:     opts.Fair,
		fast:     opts.Fast,
		saver:    opts.Saver,
		journal:  opts.Journal,
		notify:   opts.Notifier,
		slots:    prompt.NewSlots(opts.Injector),
		delay:    opts.ResultDelay,
		clock:    opts.Clock,
		settings: s,
		active:   settings.DefaultChat,
	}
}

// Slots returns the outgoing prompt slots.
func (t *Tracker) Slots() *prompt.Slots { return t.slots }

// Snapshot encodes the settings for the storage slot.
func (t *Tracker) Snapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings.Marshal()
}

// Session returns a deep copy of a chat's session.
func (t *Tracker) Session(chatID string) (settings.Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ss, ok := t.settings.Lookup(chatID)
	if !ok {
		return settings.Session{}, false
	}
	return ss.Clone(), true
}

// Chats lists the known chat ids.
func (t *Tracker) Chats() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings.Chats()
}

// Language returns the configured language tag.
func (t *Tracker) Language() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return prompt.Match(t.settings.Language).String()
}

// SetLanguage changes the output language and rebuilds the status slot.
func (t *Tracker) SetLanguage(lang string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settings.Language = prompt.Match(lang).String()
	t.refresh(t.settings.Session(t.active, t.odds))
	t.save()
}

// SetEnabled turns message scanning on or off. Disabling clears both slots.
func (t *Tracker) SetEnabled(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settings.Enabled = on
	if on {
		t.refresh(t.settings.Session(t.active, t.odds))
	} else {
		t.slots.Set(prompt.SlotStatus, "")
		t.slots.Set(prompt.SlotResult, "")
	}
	t.save()
}

// Report describes what one message triggered.
type Report struct {
	ChatID        string                 `json:"chat_id"`
	MessageID     string                 `json:"message_id"`
	Skipped       bool                   `json:"skipped,omitempty"`
	Reason        string                 `json:"reason,omitempty"`
	Scan          scan.Result            `json:"scan"`
	Conception    *conception.Result     `json:"conception,omitempty"`
	Complication  *pregnancy.CheckResult `json:"complication,omitempty"`
	Transmissions []sti.CheckResult      `json:"transmissions,omitempty"`
	Birth         *pregnancy.Outcome     `json:"birth,omitempty"`
	Reminder      bool                   `json:"reminder,omitempty"`
	Results       []string               `json:"results,omitempty"`
}

// Skip reasons for a message.
const (
	SkipDisabled  = "disabled"
	SkipDuplicate = "duplicate"
)

// HandleMessage is the incoming-text hook. A message id seen last time for
// the chat is skipped, so redelivery mutates nothing. Faults are recovered,
// logged and returned as ErrInternal.
func (t *Tracker) HandleMessage(chatID, msgID, text string) (rep Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("message hook failed", "chat", chatID, "message", msgID, "panic", r)
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle(chatID, msgID, text), nil
}

func (t *Tracker) handle(chatID, msgID, text string) Report {
	if chatID == "" {
		chatID = settings.DefaultChat
	}
	rep := Report{ChatID: chatID, MessageID: msgID}
	if !t.settings.Enabled {
		rep.Skipped, rep.Reason = true, SkipDisabled
		return rep
	}

	ss := t.settings.Session(chatID, t.odds)
	t.active = chatID
	if msgID != "" && msgID == ss.LastMessageID {
		rep.Skipped, rep.Reason = true, SkipDuplicate
		slog.Debug("message already processed", "chat", chatID, "message", msgID)
		return rep
	}
	ss.LastMessageID = msgID

	res := scan.Scan(text)
	rep.Scan = res
	wall := t.clock()
	f := t.formatter()
	wasPregnant := ss.Pregnancy.Pregnant

	if !res.Date.IsZero() {
		t.moveStoryDate(ss, res.Date)
	}
	now := ss.Now(wall)

	if res.CycleDay != 0 && !ss.Pregnancy.Pregnant {
		t.cycleEngine().SetDay(&ss.Cycle, res.CycleDay, now)
	}
	if !ss.Pregnancy.Pregnant && res.HasWeek && res.Week > 0 && !res.Birth && !res.NotPregnant {
		t.pickUp(ss, res, now)
	} else if ss.Pregnancy.Pregnant {
		pe := t.pregnancyEngine()
		if res.HasWeek {
			pe.SetWeek(&ss.Pregnancy, res.Week)
		}
		if res.Fetuses != 0 {
			pe.SetFetusCount(&ss.Pregnancy, res.Fetuses)
		}
		if o, ok := pe.DetectBirth(&ss.Pregnancy, res.Birth, now); ok {
			rep.Birth = &o
			rep.Results = append(rep.Results, f.Birth(o))
			t.notifyf(LevelSuccess, f.T("notify.birth"))
			slog.Info("birth detected", "chat", chatID, "week", o.Week, "fetuses", o.FetusCount)
		}
	}

	if res.Conception {
		r := t.conceive(ss, now, wall)
		rep.Conception = &r
		rep.Results = append(rep.Results, f.Conception(r))
	}

	for _, trig := range res.STI {
		r := t.transmit(ss, trig.Partner, trig.Condom, now, wall)
		rep.Transmissions = append(rep.Transmissions, r)
		rep.Results = append(rep.Results, f.Transmission(r))
	}

	if wasPregnant && ss.Pregnancy.Pregnant {
		r := t.complication(ss, now, wall, false)
		if !r.Skipped {
			rep.Complication = &r
			if r.Complication != nil {
				rep.Results = append(rep.Results, f.Complication(r))
			}
		}
	}

	if res.NotPregnant && ss.Pregnancy.Pregnant {
		rep.Reminder = true
		rep.Results = append(rep.Results, f.Reminder(ss.Pregnancy.GetStatus(now)))
	}

	ss.UpdatedAt = wall
	t.refresh(ss)
	if len(rep.Results) > 0 {
		t.slots.Flash(prompt.SlotResult, strings.Join(rep.Results, "\n"), t.delay)
	}
	t.save()
	slog.Info("message processed", "chat", chatID, "message", msgID, "findings", len(res.Findings), "results", len(rep.Results))
	return rep
}

// pickUp starts tracking a pregnancy the story already describes, dated so
// that now falls in the mentioned week.
func (t *Tracker) pickUp(ss *settings.Session, res scan.Result, now time.Time) {
	n := 1
	if res.Fetuses != 0 {
		n = res.Fetuses
	}
	t.pregnancyEngine().StartAt(&ss.Pregnancy, pregnancy.ConceivedWeeksAgo(now, res.Week), now, ss.Cycle.Day, n)
	t.notifyf(LevelInfo, t.formatter().T("notify.tracked", ss.Pregnancy.CurrentWeek))
	slog.Info("pregnancy picked up from story", "chat", ss.ChatID, "week", ss.Pregnancy.CurrentWeek, "fetuses", ss.Pregnancy.FetusCount)
}

// Once the story has a date, mentions further than these from it are taken
// as references (birthdays, version numbers) rather than the narrative clock.
const (
	maxStoryRewindYears = 1
	maxStoryLeapYears   = 2
)

// moveStoryDate sets the narrative clock. With auto-advance on, a later
// date moves the cycle and pill count forward by the days in between.
func (t *Tracker) moveStoryDate(ss *settings.Session, date time.Time) {
	prev := ss.StoryDate
	if !prev.IsZero() && (date.Before(prev.AddDate(-maxStoryRewindYears, 0, 0)) || date.After(prev.AddDate(maxStoryLeapYears, 0, 0))) {
		slog.Debug("story date ignored", "chat", ss.ChatID, "date", date.Format(time.DateOnly), "story_date", prev.Format(time.DateOnly))
		return
	}
	ss.StoryDate = date
	if prev.IsZero() || !t.settings.AutoAdvance {
		return
	}
	days := wholeDays(prev, date)
	if days <= 0 {
		return
	}
	t.advance(ss, days, date)
}

// advance moves the cycle forward and counts pill days.
func (t *Tracker) advance(ss *settings.Session, days int, now time.Time) int {
	if ss.Contraception.Enabled(contraception.Pill) {
		ss.Contraception.TakePill(days)
	}
	n := t.cycleEngine().Advance(&ss.Cycle, days, ss.Pregnancy.Pregnant, now)
	if n > 0 {
		slog.Debug("cycle advanced", "chat", ss.ChatID, "days", n, "day", ss.Cycle.Day)
	}
	return n
}

func (t *Tracker) conceive(ss *settings.Session, now, wall time.Time) conception.Result {
	f := t.formatter()
	r := t.conceptionEngine().Check(&ss.Pregnancy, &ss.Cycle, ss.Contraception, &ss.Conceptions, &ss.Counters, now)
	if r.Skipped {
		slog.Info("conception roll skipped", "chat", ss.ChatID, "reason", r.Reason)
		return r
	}
	slog.Info("conception roll", "chat", ss.ChatID, "roll", r.Roll, "chance", r.Chance, "success", r.Success)
	t.record(persistence.Roll{
		ChatID:  ss.ChatID,
		Kind:    "conception",
		At:      wall,
		Value:   r.Roll,
		Chance:  int(math.Round(r.Chance)),
		Success: r.Success,
		Summary: fmt.Sprintf("day %d %s, fetuses %d", r.CycleDay, r.Phase, r.FetusCount),
	})
	if r.Success {
		t.notifyf(LevelSuccess, f.T("notify.conceived"))
	} else {
		t.notifyf(LevelInfo, f.T("notify.not_conceived"))
	}
	return r
}

func (t *Tracker) transmit(ss *settings.Session, partner string, condom bool, now, wall time.Time) sti.CheckResult {
	f := t.formatter()
	r := t.stiEngine(ss).CheckTransmission(&ss.STI, partner, condom, now)
	var rolls []persistence.Roll
	for _, a := range r.Attempts {
		if a.AlreadyInfected {
			continue
		}
		rolls = append(rolls, persistence.Roll{
			ChatID:  ss.ChatID,
			Kind:    "sti",
			At:      wall,
			Value:   a.Roll,
			Chance:  int(math.Round(a.Chance)),
			Success: a.Transmitted,
			Summary: fmt.Sprintf("%s from %s", a.Kind, r.Partner),
		})
	}
	t.record(rolls...)
	for _, a := range r.Acquired {
		t.notifyf(LevelWarning, f.T("notify.sti", f.T("sti.kind."+string(a.Kind))))
	}
	slog.Info("transmission check", "chat", ss.ChatID, "partner", r.Partner, "risk", r.Profile.Risk, "attempts", len(r.Attempts), "acquired", len(r.Acquired))
	return r
}

func (t *Tracker) complication(ss *settings.Session, now, wall time.Time, force bool) pregnancy.CheckResult {
	f := t.formatter()
	r := t.pregnancyEngine().RollComplication(&ss.Pregnancy, now, force)
	if r.Skipped {
		return r
	}
	summary := "none"
	if r.Complication != nil {
		summary = string(r.Severity) + " " + r.Complication.Description
		t.notifyf(LevelWarning, f.T("notify.complication", f.T("complication."+r.Complication.Description)))
	}
	t.record(persistence.Roll{
		ChatID:  ss.ChatID,
		Kind:    "complication",
		At:      wall,
		Value:   r.Roll,
		Chance:  r.Chance,
		Success: r.Complication != nil,
		Summary: fmt.Sprintf("week %d: %s", r.Week, summary),
	})
	slog.Info("complication roll", "chat", ss.ChatID, "week", r.Week, "roll", r.Roll, "chance", r.Chance, "severity", r.Severity)
	return r
}

// refresh rebuilds the status slot from a session.
func (t *Tracker) refresh(ss *settings.Session) {
	if !t.settings.Enabled {
		return
	}
	t.slots.Set(prompt.SlotStatus, t.formatter().Standing(t.standing(ss)))
}

func (t *Tracker) standing(ss *settings.Session) prompt.Standing {
	now := ss.Now(t.clock())
	composer := contraception.Composer{Odds: t.odds.Contraception}
	protection, _ := composer.Ceiling(ss.Contraception)
	return prompt.Standing{
		StoryDate:  ss.StoryDate,
		Cycle:      ss.Cycle,
		Phase:      cycle.GetPhase(ss.Cycle.Day, ss.Cycle.Length, t.odds.Cycle),
		Methods:    ss.Contraception.List(),
		Protection: protection,
		Pregnancy:  ss.Pregnancy.GetStatus(now),
		Counters:   ss.Counters,
		Infected:   ss.STI.User.Infected,
	}
}

// Standing renders the status block for a chat without changing anything.
func (t *Tracker) Standing(chatID string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ss := t.settings.Session(chatID, t.odds)
	return t.formatter().Standing(t.standing(ss))
}

func (t *Tracker) save() {
	if t.saver != nil {
		t.saver.Save()
	}
}

func (t *Tracker) record(rolls ...persistence.Roll) {
	if t.journal == nil || len(rolls) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.journal.RecordRoll(ctx, rolls...); err != nil {
		slog.Warn("roll journal write failed", "error", err)
	}
}

func (t *Tracker) notifyf(level Level, msg string) {
	if t.notify == nil || !t.settings.ShowNotifications {
		return
	}
	t.notify.Notify(msg, level)
}

func (t *Tracker) formatter() *prompt.Formatter {
	return prompt.New(t.settings.Language)
}

func (t *Tracker) cycleEngine() *cycle.Engine {
	return &cycle.Engine{Odds: t.odds, Fair: t.fair, Fast: t.fast}
}

func (t *Tracker) conceptionEngine() *conception.Engine {
	return &conception.Engine{Odds: t.odds, Fair: t.fair}
}

func (t *Tracker) pregnancyEngine() *pregnancy.Engine {
	return &pregnancy.Engine{Odds: t.odds, Fair: t.fair}
}

func (t *Tracker) stiEngine(ss *settings.Session) *sti.Engine {
	return &sti.Engine{Odds: t.odds.STI, Fair: t.fair, Female: ss.Female()}
}

// wholeDays counts calendar days from a to b.
func wholeDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
