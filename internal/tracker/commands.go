package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/pregnancy"
	"github.com/talgya/reprotrack/internal/prompt"
	"github.com/talgya/reprotrack/internal/settings"
)

// Command errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
	ErrBadArg         = errors.New("invalid argument")
)

// Args are a command's keyword arguments.
type Args map[string]string

// Int parses an integer argument. ok is false when the key is absent.
func (a Args) Int(key string) (n int, ok bool, err error) {
	v, ok := a[key]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, fmt.Errorf("%w: %s=%q", ErrBadArg, key, v)
	}
	return n, true, nil
}

// Bool parses a flag argument. on/off, yes/no and true/false are accepted.
func (a Args) Bool(key string) (on, ok bool, err error) {
	v, ok := a[key]
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "1", "on", "yes", "true", "y":
		return true, true, nil
	case "0", "off", "no", "false", "n":
		return false, true, nil
	}
	return false, true, fmt.Errorf("%w: %s=%q", ErrBadArg, key, v)
}

// handler runs one command with the lock held.
type handler func(t *Tracker, ss *settings.Session, args Args, now, wall time.Time) (string, error)

var commands = map[string]handler{
	"conception":   cmdConception,
	"pregnancy":    cmdPregnancy,
	"sti":          cmdSTI,
	"complication": cmdComplication,
	"condom":       toggle(contraception.Condom),
	"pill":         toggle(contraception.Pill),
	"method":       cmdMethod,
	"cycle":        cmdCycle,
	"period":       cmdPeriod,
	"advance":      cmdAdvance,
	"set":          cmdSet,
	"reset":        cmdReset,
	"status":       cmdStatus,
}

// Commands lists the command names, including "message".
func Commands() []string {
	names := make([]string, 0, len(commands)+1)
	for name := range commands {
		names = append(names, name)
	}
	names = append(names, "message")
	sort.Strings(names)
	return names
}

// IsRoll reports whether a command draws fair random numbers.
func IsRoll(name string) bool {
	switch name {
	case "conception", "sti", "complication", "message":
		return true
	}
	return false
}

// Execute runs a named command for a chat and returns its text.
func (t *Tracker) Execute(chatID, name string, args Args) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("command failed", "chat", chatID, "command", name, "panic", r)
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "message" {
		rep, err := t.HandleMessage(chatID, args["id"], args["text"])
		if err != nil {
			return "", err
		}
		return strings.Join(rep.Results, "\n"), nil
	}
	h, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if chatID == "" {
		chatID = settings.DefaultChat
	}
	ss := t.settings.Session(chatID, t.odds)
	t.active = chatID
	wall := t.clock()
	out, err = h(t, ss, args, ss.Now(wall), wall)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	ss.UpdatedAt = wall
	t.refresh(ss)
	t.save()
	return out, nil
}

func cmdConception(t *Tracker, ss *settings.Session, _ Args, now, wall time.Time) (string, error) {
	r := t.conceive(ss, now, wall)
	text := t.formatter().Conception(r)
	t.slots.Flash(prompt.SlotResult, text, t.delay)
	return text, nil
}

func cmdPregnancy(t *Tracker, ss *settings.Session, _ Args, now, _ time.Time) (string, error) {
	ss.Pregnancy.Refresh(now)
	return t.formatter().Pregnancy(ss.Pregnancy.GetStatus(now), now), nil
}

func cmdSTI(t *Tracker, ss *settings.Session, args Args, now, wall time.Time) (string, error) {
	partner := strings.TrimSpace(args["partner"])
	if partner == "" {
		return "", fmt.Errorf("%w: partner", ErrMissingArg)
	}
	condom, _, err := args.Bool("condom")
	if err != nil {
		return "", err
	}
	r := t.transmit(ss, partner, condom, now, wall)
	text := t.formatter().Transmission(r)
	t.slots.Flash(prompt.SlotResult, text, t.delay)
	return text, nil
}

func cmdComplication(t *Tracker, ss *settings.Session, args Args, now, wall time.Time) (string, error) {
	force, _, err := args.Bool("force")
	if err != nil {
		return "", err
	}
	r := t.complication(ss, now, wall, force)
	text := t.formatter().Complication(r)
	if r.Complication != nil {
		t.slots.Flash(prompt.SlotResult, text, t.delay)
	}
	return text, nil
}

// toggle sets a method from on/off, or flips it when no state is given.
func toggle(m contraception.Method) handler {
	return func(t *Tracker, ss *settings.Session, args Args, _, _ time.Time) (string, error) {
		return setMethod(t, ss, m, args)
	}
}

func cmdMethod(t *Tracker, ss *settings.Session, args Args, _, _ time.Time) (string, error) {
	name := args["name"]
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name", ErrMissingArg)
	}
	m, err := contraception.ParseMethod(name)
	if err != nil {
		return "", err
	}
	return setMethod(t, ss, m, args)
}

func setMethod(t *Tracker, ss *settings.Session, m contraception.Method, args Args) (string, error) {
	var on bool
	switch {
	case hasKey(args, "on"):
		on = true
	case hasKey(args, "off"):
		on = false
	default:
		v, ok, err := args.Bool("state")
		if err != nil {
			return "", err
		}
		if ok {
			on = v
		} else {
			on = !ss.Contraception.Enabled(m)
		}
	}
	ss.Contraception.Set(m, on)
	slog.Info("contraception changed", "chat", ss.ChatID, "method", m, "on", on)
	return t.formatter().Toggle(m, on), nil
}

func hasKey(args Args, key string) bool {
	_, ok := args[key]
	return ok
}

func cmdCycle(t *Tracker, ss *settings.Session, args Args, now, _ time.Time) (string, error) {
	f := t.formatter()
	ce := t.cycleEngine()
	day, ok, err := args.Int("day")
	if err != nil {
		return "", err
	}
	if length, lok, err := args.Int("length"); err != nil {
		return "", err
	} else if lok {
		ce.SetLength(&ss.Cycle, length, now)
	}
	if !ok {
		return f.Cycle(ss.Cycle, ce.Phase(&ss.Cycle)), nil
	}
	if ss.Pregnancy.Pregnant {
		return f.T("cycle.paused"), nil
	}
	ce.SetDay(&ss.Cycle, day, now)
	return f.T("cycle.set", ss.Cycle.Day) + "\n" + f.Cycle(ss.Cycle, ce.Phase(&ss.Cycle)), nil
}

func cmdPeriod(t *Tracker, ss *settings.Session, _ Args, _, _ time.Time) (string, error) {
	return t.formatter().Period(ss.Cycle), nil
}

func cmdAdvance(t *Tracker, ss *settings.Session, args Args, now, _ time.Time) (string, error) {
	f := t.formatter()
	days, ok, err := args.Int("days")
	if err != nil {
		return "", err
	}
	if !ok {
		days = 1
	}
	if ss.Pregnancy.Pregnant {
		return f.T("cycle.paused"), nil
	}
	n := t.advance(ss, days, now)
	return f.T("cycle.advanced", n, ss.Cycle.Day), nil
}

// setArgs are the parsed overrides of the set command.
type setArgs struct {
	conceived        time.Time
	week, fetuses    int
	hasDate, hasWeek bool
	hasFetuses       bool
}

func parseSetArgs(args Args) (setArgs, error) {
	var (
		a   setArgs
		err error
	)
	if v := strings.TrimSpace(args["conceived"]); v != "" {
		a.conceived, err = time.Parse(time.DateOnly, v)
		if err != nil {
			return a, fmt.Errorf("%w: conceived=%q", ErrBadArg, v)
		}
		a.hasDate = true
	}
	if a.week, a.hasWeek, err = args.Int("week"); err != nil {
		return a, err
	}
	if a.fetuses, a.hasFetuses, err = args.Int("fetuses"); err != nil {
		return a, err
	}
	if !a.hasDate && !a.hasWeek && !a.hasFetuses {
		return a, fmt.Errorf("%w: week, fetuses or conceived", ErrMissingArg)
	}
	return a, nil
}

// cmdSet overrides pregnancy details. Every argument is validated before
// anything changes. Without a pregnancy, a week or a conception date starts
// one from the story.
func cmdSet(t *Tracker, ss *settings.Session, args Args, now, _ time.Time) (string, error) {
	a, err := parseSetArgs(args)
	if err != nil {
		return "", err
	}
	f := t.formatter()
	pe := t.pregnancyEngine()
	var lines []string

	started := false
	if !ss.Pregnancy.Pregnant {
		if !a.hasDate && !a.hasWeek {
			return f.T("set.not_pregnant"), nil
		}
		from := a.conceived
		if !a.hasDate {
			from = pregnancy.ConceivedWeeksAgo(now, a.week)
		}
		n := 1
		if a.hasFetuses {
			n = a.fetuses
		}
		pe.StartAt(&ss.Pregnancy, from, now, ss.Cycle.Day, n)
		started = true
		lines = append(lines, f.T("set.started"))
	}

	if a.hasDate {
		pe.SetConceptionDate(&ss.Pregnancy, a.conceived, now)
		lines = append(lines, f.T("set.conceived", f.Date(a.conceived)))
	}
	if a.hasWeek {
		// A week alone that started the pregnancy is already the derived week.
		if !started || a.hasDate {
			pe.SetWeek(&ss.Pregnancy, a.week)
		}
		lines = append(lines, f.T("set.week", ss.Pregnancy.Refresh(now)))
	}
	if a.hasFetuses {
		pe.SetFetusCount(&ss.Pregnancy, a.fetuses)
		lines = append(lines, f.T("set.fetuses", ss.Pregnancy.FetusCount))
	}
	slog.Info("pregnancy overridden", "chat", ss.ChatID, "started", started, "week", ss.Pregnancy.Week(now), "fetuses", ss.Pregnancy.FetusCount)
	return strings.Join(lines, "\n"), nil
}

func cmdReset(t *Tracker, ss *settings.Session, _ Args, now, _ time.Time) (string, error) {
	f := t.formatter()
	if _, ok := ss.Pregnancy.End(pregnancy.OutcomeReset, now); !ok {
		return f.T("pregnancy.none"), nil
	}
	slog.Info("pregnancy reset", "chat", ss.ChatID)
	return f.T("reset.done"), nil
}

func cmdStatus(t *Tracker, ss *settings.Session, _ Args, _, _ time.Time) (string, error) {
	return t.formatter().Standing(t.standing(ss)), nil
}
