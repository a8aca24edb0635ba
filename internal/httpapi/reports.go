package httpapi

import (
	"net/http"
)

func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	from, err := requireDate(r, "start")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := requireDate(r, "end")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.reports.CategorySummary(r.Context(), from, to)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCategoryEntries(w http.ResponseWriter, r *http.Request) {
	from, err := requireDate(r, "start")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := requireDate(r, "end")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category := r.URL.Query().Get("kategoria")
	if category == "" {
		category = r.URL.Query().Get("category")
	}
	if category == "" {
		s.writeError(w, http.StatusBadRequest, "kategoria is required")
		return
	}

	items, err := s.reports.CategoryEntries(r.Context(), from, to, category)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	date, err := optionalDate(r, "date")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := s.reports.DayOverview(r.Context(), date)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	from, err := optionalDate(r, "start")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := optionalDate(r, "end")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.search.Dashboard(r.Context(), r.URL.Query().Get("q"), from, to)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	choices, err := s.params.Choices(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, choices)
}
