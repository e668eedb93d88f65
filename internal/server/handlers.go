package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"seedtech-calendar/internal/calendar"
	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/i18n"
	"seedtech-calendar/internal/ideas"
	"seedtech-calendar/internal/session"

	"github.com/go-chi/chi/v5"
)

// Months are 0-11 throughout the API, matching the dataset's "MM-DD"
// arithmetic on the client side.

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	lang := langParam(r)

	type countryEntry struct {
		ID   content.CountryID `json:"id"`
		Name string            `json:"name"`
	}
	entries := make([]countryEntry, 0, len(content.Countries))
	for _, id := range s.store.CountryIDs() {
		entries = append(entries, countryEntry{ID: id, Name: s.translator.T(lang, string(id), nil)})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	id, err := content.ParseCountry(chi.URLParam(r, "country"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}
	ds, err := s.store.Country(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}
	lang := langParam(r)

	writeJSON(w, http.StatusOK, map[string]any{
		"id":          id,
		"name":        s.translator.T(lang, string(id), nil),
		"behavior":    ds.Behavior,
		"agriculture": ds.Agriculture,
	})
}

func (s *Server) handleMonthGrid(w http.ResponseWriter, r *http.Request) {
	id, err := content.ParseCountry(chi.URLParam(r, "country"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	ds, err := s.store.Country(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}
	lang := langParam(r)

	marked := calendar.MonthHasPosts(&ds.Calendar, year, month)
	days := make([]int, 0, len(marked))
	for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
		if marked[day] {
			days = append(days, day)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":          year,
		"month":         month,
		"monthName":     s.translator.MonthName(lang, month),
		"firstWeekday":  calendar.FirstWeekday(year, month),
		"daysInMonth":   calendar.DaysInMonth(year, month),
		"daysWithPosts": days,
	})
}

func (s *Server) handleDayDetail(w http.ResponseWriter, r *http.Request) {
	id, err := content.ParseCountry(chi.URLParam(r, "country"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 || day > calendar.DaysInMonth(year, month) {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	filter := content.All
	if q := r.URL.Query().Get("platform"); q != "" {
		filter, err = content.ParsePlatform(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown platform")
			return
		}
	}

	ds, err := s.store.Country(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown country")
		return
	}

	detail := calendar.ResolveDay(&ds.Calendar, year, month, day)
	writeJSON(w, http.StatusOK, map[string]any{
		"date":        calendar.PostDate(month, day),
		"weekday":     calendar.Weekday(year, month, day),
		"activeHours": detail.ActiveHours,
		"posts":       calendar.FilterPosts(detail, filter),
	})
}

type sessionUpdate struct {
	Country  *string `json:"country"`
	Platform *string `json:"platform"`
	Language *string `json:"language"`
	DarkMode *bool   `json:"darkMode"`
	Navigate *string `json:"navigate"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Country string `json:"country"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	country := content.Sudan
	if body.Country != "" {
		var err error
		country, err = content.ParseCountry(body.Country)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown country")
			return
		}
	}

	sess := s.sessions.Create(country)
	writeJSON(w, http.StatusCreated, s.sessionView(sess.Snapshot()))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.sessionView(sess.Snapshot()))
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var update sessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if update.Country != nil {
		id, err := content.ParseCountry(*update.Country)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown country")
			return
		}
		sess.SetCountry(id)
	}
	if update.Platform != nil {
		p, err := content.ParsePlatform(*update.Platform)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown platform")
			return
		}
		sess.SetPlatform(p)
	}
	if update.Language != nil {
		switch i18n.Language(*update.Language) {
		case i18n.English, i18n.Arabic:
			sess.SetLanguage(i18n.Language(*update.Language))
		default:
			writeError(w, http.StatusBadRequest, "unknown language")
			return
		}
	}
	if update.DarkMode != nil {
		sess.SetDarkMode(*update.DarkMode)
	}
	if update.Navigate != nil {
		switch calendar.Direction(*update.Navigate) {
		case calendar.Prev, calendar.Next:
			sess.NavigateMonth(calendar.Direction(*update.Navigate))
		default:
			writeError(w, http.StatusBadRequest, "navigate must be 'prev' or 'next'")
			return
		}
	}

	writeJSON(w, http.StatusOK, s.sessionView(sess.Snapshot()))
}

func (s *Server) handleOpenDay(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var body struct {
		Day int `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap := sess.Snapshot()
	if body.Day < 1 || body.Day > calendar.DaysInMonth(snap.Year, snap.Month) {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	sess.OpenDay(body.Day)
	writeJSON(w, http.StatusOK, s.dayView(sess.Snapshot()))
}

func (s *Server) handleCloseDay(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.CloseDay()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerateIdeas(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var body struct {
		Instructions string `json:"instructions"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "generation limit reached, try again shortly")
		return
	}

	epoch, err := sess.BeginGeneration(body.Instructions)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoOpenDay):
			writeError(w, http.StatusBadRequest, "open a day first")
		case errors.Is(err, session.ErrGenerationInFlight):
			writeError(w, http.StatusConflict, "a generation is already in progress")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	snap := sess.Snapshot()
	if snap.OpenDay == nil {
		// Day closed between the state transition and here; nothing to do.
		writeError(w, http.StatusConflict, "day was closed")
		return
	}
	req := ideas.Request{
		Country:      s.translator.T(snap.Language, string(snap.Country), nil),
		MonthName:    s.translator.MonthName(snap.Language, snap.OpenDay.Month),
		Day:          snap.OpenDay.Day,
		Platform:     snap.Platform,
		Instructions: body.Instructions,
	}

	posts, meta, genErr := s.generator.Generate(r.Context(), req)
	sess.CompleteGeneration(epoch, posts, genErr)

	s.collector.RecordGeneration(genErr == nil, meta.Latency)
	if s.metricsStore != nil {
		if err := s.metricsStore.RecordMeta(meta); err != nil {
			s.logger.Warn("failed to record generation metric", "error", err)
		}
	}

	if genErr != nil {
		writeError(w, http.StatusBadGateway, ideas.GenericFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state": session.StateSuccess,
		"posts": posts,
	})
}

// session loads the session named in the URL, answering 404 itself when
// it is missing.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func (s *Server) sessionView(snap session.Snapshot) map[string]any {
	view := map[string]any{
		"id":        snap.ID,
		"country":   snap.Country,
		"platform":  snap.Platform,
		"year":      snap.Year,
		"month":     snap.Month,
		"monthName": s.translator.MonthName(snap.Language, snap.Month),
		"language":  snap.Language,
		"darkMode":  snap.DarkMode,
	}
	if snap.OpenDay != nil {
		view["openDay"] = s.dayView(snap)
	}
	return view
}

// dayView renders the open-day detail: resolved schedule plus the AI
// panel state.
func (s *Server) dayView(snap session.Snapshot) map[string]any {
	day := snap.OpenDay
	view := map[string]any{
		"day":     day.Day,
		"weekday": day.Weekday,
		"month":   day.Month,
		"year":    day.Year,
		"title": s.translator.T(snap.Language, "modalTitle", map[string]string{
			"month": s.translator.MonthName(snap.Language, day.Month),
			"day":   strconv.Itoa(day.Day),
		}),
		"aiState":      day.AIState,
		"aiPosts":      day.AIPosts,
		"aiError":      day.AIError,
		"instructions": day.Instructions,
	}

	if ds, err := s.store.Country(snap.Country); err == nil {
		detail := calendar.ResolveDay(&ds.Calendar, day.Year, day.Month, day.Day)
		view["activeHours"] = detail.ActiveHours
		view["posts"] = calendar.FilterPosts(detail, snap.Platform)
	}
	return view
}

func langParam(r *http.Request) i18n.Language {
	if lang := i18n.Language(r.URL.Query().Get("lang")); lang == i18n.Arabic {
		return i18n.Arabic
	}
	return i18n.English
}

func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 0 || month > 11 {
		writeError(w, http.StatusBadRequest, "invalid month (0-11)")
		return 0, 0, false
	}
	return year, month, true
}
