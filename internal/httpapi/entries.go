package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/report"
)

// entryPayload is the wire shape of one full entry record, shared by the
// create/update request body and the entry responses.
type entryPayload struct {
	ID           string   `json:"id,omitempty"`
	Date         string   `json:"datum"`
	Start        string   `json:"kezdet"`
	End          string   `json:"veg"`
	Minutes      int      `json:"minutes"`
	MinutesHuman string   `json:"minutes_human,omitempty"`
	Activity     string   `json:"tevekenyseg"`
	Value        *int     `json:"ertek"`
	Category     string   `json:"kategoria"`
	RelatedTo    string   `json:"kapcsolodo"`
	Role         string   `json:"szerep"`
	Emotion      string   `json:"erzelem"`
	Goal         string   `json:"kapcsolodo_cel"`
	FocusTags    []string `json:"fokusz"`
	Note         string   `json:"megjegyzes"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

// decodeEntry reads an entry body. An omitted ertek falls back to the
// form's default score; an explicit null stays empty.
func decodeEntry(r *http.Request) (*domain.Entry, error) {
	def := domain.DefaultValue
	p := entryPayload{Value: &def}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("invalid body: %w", err)
	}
	return p.toDomain()
}

func (p *entryPayload) toDomain() (*domain.Entry, error) {
	if p.Date == "" {
		return nil, fmt.Errorf("datum is required")
	}
	date, err := time.ParseInLocation("2006-01-02", p.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("datum must be yyyy-mm-dd")
	}

	e := &domain.Entry{
		ID:        p.ID,
		Date:      date,
		Duration:  time.Duration(p.Minutes) * time.Minute,
		Activity:  p.Activity,
		Value:     p.Value,
		Category:  p.Category,
		RelatedTo: p.RelatedTo,
		Role:      p.Role,
		Emotion:   p.Emotion,
		Goal:      p.Goal,
		Note:      p.Note,
	}
	if e.Start, err = parseClock(p.Start, "kezdet"); err != nil {
		return nil, err
	}
	if e.End, err = parseClock(p.End, "veg"); err != nil {
		return nil, err
	}
	for _, t := range p.FocusTags {
		e.FocusTags = append(e.FocusTags, domain.FocusTag(t))
	}
	return e, nil
}

func parseClock(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be hh:mm", name)
	}
	return &t, nil
}

func newEntryPayload(e *domain.Entry) entryPayload {
	m := e.Minutes()
	p := entryPayload{
		ID:           e.ID,
		Date:         e.Date.Format("2006-01-02"),
		Minutes:      m,
		MinutesHuman: report.FormatMinutes(m),
		Activity:     e.Activity,
		Value:        e.Value,
		Category:     e.Category,
		RelatedTo:    e.RelatedTo,
		Role:         e.Role,
		Emotion:      e.Emotion,
		Goal:         e.Goal,
		FocusTags:    []string{},
		Note:         e.Note,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.Start != nil {
		p.Start = e.Start.Format("15:04")
	}
	if e.End != nil {
		p.End = e.End.Format("15:04")
	}
	for _, t := range e.FocusTags {
		p.FocusTags = append(p.FocusTags, string(t))
	}
	return p
}

func newEntryPayloads(entries []*domain.Entry) []entryPayload {
	out := make([]entryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, newEntryPayload(e))
	}
	return out
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	e, err := decodeEntry(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e.ID = ""
	if err := s.entries.Create(r.Context(), e); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, newEntryPayload(e))
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	e, err := decodeEntry(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e.ID = r.PathValue("id")

	prev, err := s.entries.GetByID(r.Context(), e.ID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	e.CreatedAt = prev.CreatedAt

	if err := s.entries.Update(r.Context(), e); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, newEntryPayload(e))
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.entries.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newEntryPayload(e))
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.ListRecent(r.Context(), limitParam(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": newEntryPayloads(entries)})
}

func (s *Server) handleRecentByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("kategoria")
	if category == "" {
		category = r.URL.Query().Get("category")
	}
	if category == "" {
		s.writeError(w, http.StatusBadRequest, "kategoria is required")
		return
	}
	entries, err := s.entries.RecentByCategory(r.Context(), category, limitParam(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": newEntryPayloads(entries)})
}

func (s *Server) handleFormDefaults(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = r.URL.Query().Get("kategoria")
	}
	d, err := s.entries.FormDefaults(r.Context(), category)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"datum":          d.Date.Format("2006-01-02"),
		"kezdet":         d.Start.Format("15:04"),
		"veg":            d.End.Format("15:04"),
		"tevekenyseg":    d.Activity,
		"kategoria":      d.Category,
		"kapcsolodo":     d.RelatedTo,
		"szerep":         d.Role,
		"erzelem":        d.Emotion,
		"kapcsolodo_cel": d.Goal,
		"ertek":          domain.DefaultValue,
	})
}

// limitParam reads the limit query parameter. Absent or unparseable
// values come back as 0, letting the service apply its default.
func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return n
}
