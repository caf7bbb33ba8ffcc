package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SettingsStore is where a Debouncer writes.
type SettingsStore interface {
	SaveSettings(ctx context.Context, data []byte) error
}

// Debouncer coalesces bursts of save requests into one write issued
// delay after the last request. The snapshot is taken when the write
// fires, so it always carries the newest state.
type Debouncer struct {
	store    SettingsStore
	snapshot func() ([]byte, error)
	delay    time.Duration

	mu    sync.Mutex
	timer *time.Timer
	saves int
}

// NewDebouncer creates a debouncer. snapshot must be safe to call from
// the timer goroutine.
func NewDebouncer(store SettingsStore, snapshot func() ([]byte, error), delay time.Duration) *Debouncer {
	return &Debouncer{store: store, snapshot: snapshot, delay: delay}
}

// Save schedules a write, restarting the delay if one is already pending.
func (d *Debouncer) Save() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.timer = nil
		go d.write()
		return
	}
	d.timer = time.AfterFunc(d.delay, d.write)
}

// Flush writes immediately, cancelling any pending write.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.write()
}

// Saves reports how many writes have completed.
func (d *Debouncer) Saves() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves
}

func (d *Debouncer) write() {
	data, err := d.snapshot()
	if err != nil {
		slog.Error("settings snapshot failed", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.store.SaveSettings(ctx, data); err != nil {
		slog.Error("settings save failed", "error", err)
		return
	}
	d.mu.Lock()
	d.saves++
	d.mu.Unlock()
}
