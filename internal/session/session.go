// Package session holds the per-visitor selection state: country,
// platform filter, displayed month, the opened day and the AI panel.
// State lives in process memory only and dies with the session.
package session

import (
	"fmt"
	"sync"
	"time"

	"seedtech-calendar/internal/calendar"
	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/i18n"
	"seedtech-calendar/internal/ideas"

	"github.com/google/uuid"
)

// GenerationState is the AI panel state machine.
type GenerationState string

const (
	StateIdle       GenerationState = "idle"
	StateGenerating GenerationState = "generating"
	StateSuccess    GenerationState = "success"
	StateFailed     GenerationState = "failed"
)

// ErrGenerationInFlight is returned when a generation is requested while
// one is already running for the open day.
var ErrGenerationInFlight = fmt.Errorf("a generation is already in progress")

// ErrNoOpenDay is returned when a generation is requested with no day open.
var ErrNoOpenDay = fmt.Errorf("no day is open")

// DaySelection is the state of the opened day detail view.
type DaySelection struct {
	Day     int
	Weekday int
	Month   int
	Year    int

	Instructions string
	AIState      GenerationState
	AIPosts      []ideas.AIPost
	AIError      string

	// epoch invalidates in-flight generations when the day is reopened.
	epoch int
}

// Session is one visitor's selection state.
type Session struct {
	ID string

	mu       sync.Mutex
	country  content.CountryID
	platform content.PlatformID
	year     int
	month    int
	language i18n.Language
	darkMode bool
	openDay  *DaySelection
	epoch    int
	lastSeen time.Time
}

// Defaults on creation: platform filter off, July 2025 (the campaign
// start month), English, light theme.
func newSession(country content.CountryID) *Session {
	return &Session{
		ID:       uuid.NewString(),
		country:  country,
		platform: content.All,
		year:     2025,
		month:    6,
		language: i18n.English,
		lastSeen: time.Now(),
	}
}

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	ID       string
	Country  content.CountryID
	Platform content.PlatformID
	Year     int
	Month    int
	Language i18n.Language
	DarkMode bool
	OpenDay  *DaySelection
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()

	snap := Snapshot{
		ID:       s.ID,
		Country:  s.country,
		Platform: s.platform,
		Year:     s.year,
		Month:    s.month,
		Language: s.language,
		DarkMode: s.darkMode,
	}
	if s.openDay != nil {
		day := *s.openDay
		day.AIPosts = append([]ideas.AIPost(nil), s.openDay.AIPosts...)
		snap.OpenDay = &day
	}
	return snap
}

// SetCountry switches the displayed market.
func (s *Session) SetCountry(id content.CountryID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.country = id
	s.lastSeen = time.Now()
}

// SetPlatform switches the platform filter.
func (s *Session) SetPlatform(p content.PlatformID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.platform = p
	s.lastSeen = time.Now()
}

// SetLanguage switches the UI language.
func (s *Session) SetLanguage(lang i18n.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	s.lastSeen = time.Now()
}

// SetDarkMode toggles the theme.
func (s *Session) SetDarkMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = on
	s.lastSeen = time.Now()
}

// NavigateMonth steps the displayed month.
func (s *Session) NavigateMonth(dir calendar.Direction) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.year, s.month = calendar.Navigate(s.year, s.month, dir)
	s.lastSeen = time.Now()
	return s.year, s.month
}

// OpenDay opens the detail view for a day of the displayed month.
// Each open resets the AI panel: content, error and instructions are
// cleared regardless of prior state, and any in-flight generation is
// orphaned.
func (s *Session) OpenDay(day int) *DaySelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.openDay = &DaySelection{
		Day:     day,
		Weekday: calendar.Weekday(s.year, s.month, day),
		Month:   s.month,
		Year:    s.year,
		AIState: StateIdle,
		epoch:   s.epoch,
	}
	s.lastSeen = time.Now()
	return s.openDay
}

// CloseDay closes the detail view. A response arriving afterwards is
// discarded by the epoch check; no abort is sent to the request itself.
func (s *Session) CloseDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.openDay = nil
	s.lastSeen = time.Now()
}

// BeginGeneration transitions the AI panel to Generating and stores the
// instructions. It fails when no day is open or a generation is already
// in flight; re-invoking from Success or Failed starts over, discarding
// prior output. The returned epoch must be handed to CompleteGeneration.
func (s *Session) BeginGeneration(instructions string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openDay == nil {
		return 0, ErrNoOpenDay
	}
	if s.openDay.AIState == StateGenerating {
		return 0, ErrGenerationInFlight
	}
	s.openDay.AIState = StateGenerating
	s.openDay.AIPosts = nil
	s.openDay.AIError = ""
	s.openDay.Instructions = instructions
	s.lastSeen = time.Now()
	return s.openDay.epoch, nil
}

// CompleteGeneration resolves a generation started at the given epoch.
// If the day was closed or reopened in the meantime the result is
// silently dropped.
func (s *Session) CompleteGeneration(epoch int, posts []ideas.AIPost, genErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openDay == nil || s.openDay.epoch != epoch {
		return
	}
	if genErr != nil {
		s.openDay.AIState = StateFailed
		s.openDay.AIError = genErr.Error()
		s.openDay.AIPosts = nil
		return
	}
	s.openDay.AIState = StateSuccess
	s.openDay.AIPosts = posts
}

func (s *Session) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
