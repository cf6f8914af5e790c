package server

import (
	"net/http"

	"github.com/umputun/tubefeed/pkg/domain"
)

// GET /api/v1/food-formulas
func (s *Server) listFormulasHandler(w http.ResponseWriter, r *http.Request) {
	formulas, err := s.formulas.List(r.Context())
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if formulas == nil {
		formulas = []domain.FoodFormula{}
	}
	renderJSON(w, r, http.StatusOK, formulas)
}

// GET /api/v1/food-formulas/{id}
func (s *Server) getFormulaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	f, err := s.formulas.Get(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	renderJSON(w, r, http.StatusOK, f)
}

// POST /api/v1/food-formulas
func (s *Server) createFormulaHandler(w http.ResponseWriter, r *http.Request) {
	fs, err := parseFields(r, s.policy)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	var f domain.FoodFormula
	readFormulaFields(fs, &f)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if err := s.formulas.Create(r.Context(), &f); err != nil {
		renderFailure(w, r, err, "name")
		return
	}
	renderJSON(w, r, http.StatusCreated, f)
}

// PUT /api/v1/food-formulas/{id}
func (s *Server) updateFormulaHandler(w http.ResponseWriter, r *http.Request) {
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
	f := domain.FoodFormula{ID: id}
	readFormulaFields(fs, &f)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if err := s.formulas.Update(r.Context(), &f); err != nil {
		renderFailure(w, r, err, "name")
		return
	}
	renderJSON(w, r, http.StatusOK, f)
}

// DELETE /api/v1/food-formulas/{id}, cascades to template entries built on the formula
func (s *Server) deleteFormulaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.formulas.Delete(r.Context(), id); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readFormulaFields(fs *fieldSet, f *domain.FoodFormula) {
	f.Name = fs.text("name", true)
	defaults := fs.nutrients("default_", domain.Nutrients{}, false, false)
	f.DefaultQuantityML = defaults.QuantityML
	f.DefaultCalories = defaults.Calories
	f.DefaultProteinG = defaults.ProteinG
	f.DefaultCarbsG = defaults.CarbsG
	f.DefaultFatG = defaults.FatG
	f.DefaultDescription = fs.text("default_description", false)
}
