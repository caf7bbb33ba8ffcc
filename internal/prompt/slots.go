package prompt

import (
	"sync"
	"time"
)

// Slot names the host injects.
const (
	SlotStatus = "reproductive_system"
	SlotResult = "reproductive_system_result"
)

// Injector is the host's outgoing-prompt collaborator. It must not call
// back into Slots.
type Injector interface {
	Inject(slot, text string)
}

// InjectorFunc adapts a function to Injector.
type InjectorFunc func(slot, text string)

// Inject implements Injector.
func (f InjectorFunc) Inject(slot, text string) { f(slot, text) }

// Slots holds the current text of each named slot. A slot written with
// Flash clears itself after a delay; any later write to the same slot
// cancels that pending clear.
type Slots struct {
	out Injector

	mu     sync.Mutex
	texts  map[string]string
	timers map[string]*time.Timer
	gen    map[string]uint64
}

// NewSlots creates slots forwarding every change to out. out may be nil.
func NewSlots(out Injector) *Slots {
	return &Slots{
		out:    out,
		texts:  make(map[string]string),
		timers: make(map[string]*time.Timer),
		gen:    make(map[string]uint64),
	}
}

// Set writes text and cancels any pending clear of the slot.
func (s *Slots) Set(slot, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(slot, text)
}

// Flash writes text and schedules the slot to be cleared after delay.
func (s *Slots) Flash(slot, text string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen := s.write(slot, text)
	s.timers[slot] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen[slot] != gen {
			return
		}
		delete(s.timers, slot)
		s.write(slot, "")
	})
}

// write must be called with mu held. It returns the slot's new generation.
func (s *Slots) write(slot, text string) uint64 {
	if t, ok := s.timers[slot]; ok {
		t.Stop()
		delete(s.timers, slot)
	}
	s.gen[slot]++
	s.texts[slot] = text
	if s.out != nil {
		s.out.Inject(slot, text)
	}
	return s.gen[slot]
}

// Get returns the current text of a slot.
func (s *Slots) Get(slot string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[slot]
}

// Snapshot returns all slots.
func (s *Slots) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.texts))
	for k, v := range s.texts {
		out[k] = v
	}
	return out
}

// Pending reports whether a clear is scheduled for slot.
func (s *Slots) Pending(slot string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[slot]
	return ok
}

// Stop cancels every pending clear.
func (s *Slots) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for slot, t := range s.timers {
		t.Stop()
		delete(s.timers, slot)
	}
}

// Flush clears every slot whose clear is still pending, so an injector's
// copy does not outlive the process.
func (s *Slots) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for slot := range s.timers {
		s.write(slot, "")
	}
}
