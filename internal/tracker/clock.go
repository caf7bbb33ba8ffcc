package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/talgya/reprotrack/internal/prompt"
)

// DefaultTick is how often Run checks the wall clock.
const DefaultTick = time.Minute

// CatchupReport summarizes one pass of the day clock.
type CatchupReport struct {
	Sessions      int `json:"sessions"`
	DaysAdvanced  int `json:"days_advanced"`
	Complications int `json:"complications"`
}

// Catchup moves every wall-clock session forward to now: the cycle advances
// by the whole days since its last update and pregnant sessions get their
// weekly complication check. Sessions following a story date are left to
// the narrative clock.
func (t *Tracker) Catchup(now time.Time) (rep CatchupReport) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("day clock failed", "panic", r)
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.settings.Enabled {
		return rep
	}

	f := t.formatter()
	changed := false
	for _, id := range t.settings.Chats() {
		ss := t.settings.Sessions[id]
		if !ss.StoryDate.IsZero() {
			continue
		}
		touched := false

		if t.settings.AutoAdvance {
			switch {
			case ss.Cycle.LastUpdate.IsZero() || ss.Pregnancy.Pregnant:
				ss.Cycle.LastUpdate = now
			default:
				if days := wholeDays(ss.Cycle.LastUpdate, now); days > 0 {
					rep.DaysAdvanced += t.advance(ss, days, now)
					touched = true
				}
			}
		}

		if ss.Pregnancy.Pregnant {
			r := t.complication(ss, now, now, false)
			if !r.Skipped {
				touched = true
				if r.Complication != nil {
					rep.Complications++
					if id == t.active {
						t.slots.Flash(prompt.SlotResult, f.Complication(r), t.delay)
					}
				}
			}
		}

		if touched {
			rep.Sessions++
			ss.UpdatedAt = now
			if id == t.active {
				t.refresh(ss)
			}
			changed = true
		}
	}
	if changed {
		t.save()
		slog.Info("day clock caught up", "sessions", rep.Sessions, "days", rep.DaysAdvanced, "complications", rep.Complications)
	}
	return rep
}

// Run calls Catchup every interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTick
	}
	slog.Info("day clock started", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.Catchup(t.clock())
	for {
		select {
		case <-ctx.Done():
			slog.Info("day clock stopped")
			return
		case <-ticker.C:
			t.Catchup(t.clock())
		}
	}
}
