package server

import (
	"net/http"

	"github.com/umputun/tubefeed/pkg/domain"
)

// GET /api/v1/schedule-templates, ordered by timing
func (s *Server) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.templates.List(r.Context())
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if entries == nil {
		entries = []domain.ScheduleTemplateEntry{}
	}
	renderJSON(w, r, http.StatusOK, entries)
}

// GET /api/v1/schedule-templates/{id}
func (s *Server) getTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	e, err := s.templates.Get(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	renderJSON(w, r, http.StatusOK, e)
}

// POST /api/v1/schedule-templates
func (s *Server) createTemplateHandler(w http.ResponseWriter, r *http.Request) {
	fs, err := parseFields(r, s.policy)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	var e domain.ScheduleTemplateEntry
	readTemplateFields(fs, &e)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if err := s.templates.Create(r.Context(), &e); err != nil {
		renderFailure(w, r, err, "food_formula")
		return
	}
	renderJSON(w, r, http.StatusCreated, e)
}

// PUT /api/v1/schedule-templates/{id}, items already generated from the entry are left as they are
func (s *Server) updateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	fs, err := parseFields(r, s.policy)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	e := domain.ScheduleTemplateEntry{ID: id}
	readTemplateFields(fs, &e)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if err := s.templates.Update(r.Context(), &e); err != nil {
		renderFailure(w, r, err, "food_formula")
		return
	}
	renderJSON(w, r, http.StatusOK, e)
}

// DELETE /api/v1/schedule-templates/{id}, cascades to items generated from the entry
func (s *Server) deleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.templates.Delete(r.Context(), id); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readTemplateFields fills entry from request, the entry needs either a formula or a custom food name
func readTemplateFields(fs *fieldSet, e *domain.ScheduleTemplateEntry) {
	e.Timing = fs.timing("timing", true)
	e.FoodFormulaID = fs.id("food_formula")
	e.CustomFoodName = fs.text("custom_food_name", false)
	e.Nutrients = fs.nutrients("", domain.Nutrients{}, false, true)
	e.Description = fs.text("description", false)

	if e.FoodFormulaID == nil && e.CustomFoodName == "" && len(fs.errs["food_formula"]) == 0 {
		fs.errs.Add(nonFieldKey, "Either a food formula must be selected or a custom food name must be provided.")
	}
}
