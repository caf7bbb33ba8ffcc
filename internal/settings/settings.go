// Package settings holds the nested settings object: global options and one
// Session per chat. It is loaded from and saved to a storage slot as JSON,
// merged with defaults on every load.
package settings

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/talgya/reprotrack/internal/conception"
	"github.com/talgya/reprotrack/internal/contraception"
	"github.com/talgya/reprotrack/internal/cycle"
	"github.com/talgya/reprotrack/internal/odds"
	"github.com/talgya/reprotrack/internal/pregnancy"
	"github.com/talgya/reprotrack/internal/sti"
)

// DefaultChat is the session used when the host sends no chat id.
const DefaultChat = "default"

// Character sexes for the receiving side of STI rolls.
const (
	SexFemale = "female"
	SexMale   = "male"
)

// Settings is the whole persisted object.
type Settings struct {
	Enabled           bool                `json:"enabled"`
	ShowNotifications bool                `json:"show_notifications"`
	Language          string              `json:"language"`
	AutoAdvance       bool                `json:"auto_advance"`
	Sessions          map[string]*Session `json:"sessions"`
}

// Session is the per-chat character state.
type Session struct {
	ChatID        string              `json:"chat_id"`
	CharacterSex  string              `json:"character_sex"`
	Cycle         cycle.State         `json:"cycle"`
	Contraception contraception.State `json:"contraception"`
	Pregnancy     pregnancy.State     `json:"pregnancy"`
	STI           sti.State           `json:"sti"`
	Conceptions   conception.History  `json:"conception_history"`
	Counters      conception.Counters `json:"counters"`
	LastMessageID string              `json:"last_message_id"`
	StoryDate     time.Time           `json:"story_date"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Clone returns a deep copy of the session.
func (ss *Session) Clone() Session {
	c := *ss
	c.Cycle = ss.Cycle.Clone()
	c.Contraception = ss.Contraception.Clone()
	c.Pregnancy = ss.Pregnancy.Clone()
	c.STI = ss.STI.Clone()
	c.Conceptions = ss.Conceptions.Clone()
	return c
}

// Defaults returns a fresh settings object.
func Defaults() *Settings {
	return &Settings{
		Enabled:           true,
		ShowNotifications: true,
		Language:          "ru",
		AutoAdvance:       true,
		Sessions:          make(map[string]*Session),
	}
}

// NewSession returns a session with default state.
func NewSession(chatID string, t odds.Table) *Session {
	return &Session{
		ChatID:        chatID,
		CharacterSex:  SexFemale,
		Cycle:         cycle.NewState(t),
		Contraception: contraception.State{Active: make(map[contraception.Method]bool)},
		Pregnancy:     pregnancy.NewState(),
		STI:           sti.State{Profiles: make(map[string]*sti.Profile)},
	}
}

// Session returns the session for chatID, creating it on first use.
func (s *Settings) Session(chatID string, t odds.Table) *Session {
	if chatID == "" {
		chatID = DefaultChat
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]*Session)
	}
	ss, ok := s.Sessions[chatID]
	if !ok {
		ss = NewSession(chatID, t)
		s.Sessions[chatID] = ss
	}
	return ss
}

// Lookup returns an existing session without creating one.
func (s *Settings) Lookup(chatID string) (*Session, bool) {
	if chatID == "" {
		chatID = DefaultChat
	}
	ss, ok := s.Sessions[chatID]
	return ss, ok
}

// Chats returns the known chat ids in sorted order.
func (s *Settings) Chats() []string {
	ids := make([]string, 0, len(s.Sessions))
	for id := range s.Sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Female reports whether the character receives with female rates.
func (ss *Session) Female() bool {
	return ss.CharacterSex != SexMale
}

// Now returns the narrative time: the story date when one was parsed from
// text, else the wall clock.
func (ss *Session) Now(wall time.Time) time.Time {
	if !ss.StoryDate.IsZero() {
		return ss.StoryDate
	}
	return wall
}

// Load parses stored settings and merges them over defaults, so fields added
// after the data was written take their default values. Empty data yields
// defaults.
func Load(data []byte, t odds.Table) (*Settings, error) {
	s := Defaults()
	if len(data) == 0 {
		return s, nil
	}

	var raw struct {
		Sessions map[string]json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	// Sessions are decoded separately over per-session defaults.
	type global Settings
	g := (*global)(s)
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	s.Sessions = make(map[string]*Session, len(raw.Sessions))
	for id, msg := range raw.Sessions {
		ss := NewSession(id, t)
		if err := json.Unmarshal(msg, ss); err != nil {
			return nil, fmt.Errorf("decode session %s: %w", id, err)
		}
		ss.ChatID = id
		ss.fill()
		s.Sessions[id] = ss
	}
	return s, nil
}

// Marshal encodes the settings for the storage slot.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// fill restores zero values that JSON null can leave behind.
func (ss *Session) fill() {
	if ss.Contraception.Active == nil {
		ss.Contraception.Active = make(map[contraception.Method]bool)
	}
	if ss.STI.Profiles == nil {
		ss.STI.Profiles = make(map[string]*sti.Profile)
	}
	if ss.Pregnancy.FetusCount < 1 {
		ss.Pregnancy.FetusCount = 1
	}
	if ss.Pregnancy.Health == "" {
		ss.Pregnancy.Health = pregnancy.HealthNormal
	}
	if ss.CharacterSex == "" {
		ss.CharacterSex = SexFemale
	}
}
