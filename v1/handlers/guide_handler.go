package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/middleware"
	"github.com/society-rp/staff-portal/v1/models"
)

func (h *V1Handler) callerAuthenticated(r *http.Request) bool {
	_, ok := middleware.PrincipalFromContext(r.Context())
	return ok
}

// listGuides returns the guides visible to the caller; anonymous callers
// only see public ones
func (h *V1Handler) listGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.guides.List(h.callerAuthenticated(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.CreateCollectionResponse(guides, len(guides)))
}

// getGuide returns one guide, enforcing its visibility flag
func (h *V1Handler) getGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := h.guides.Get(chi.URLParam(r, "id"), h.callerAuthenticated(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, guide)
}

// adminListGuides lists every guide, including restricted ones
func (h *V1Handler) adminListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.guides.List(true)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.CreateCollectionResponse(guides, len(guides)))
}

// createGuide handles the admin guide creation form post. Authorship comes
// from the session, never the form.
func (h *V1Handler) createGuide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed form body")
		return
	}
	principal, _ := middleware.PrincipalFromContext(r.Context())
	req := &models.CreateGuideRequest{
		Title:    r.PostForm.Get("title"),
		Content:  r.PostForm.Get("content"),
		IsPublic: r.PostForm.Get("isPublic") == "true" || r.PostForm.Get("isPublic") == "on",
	}
	if _, err := h.guides.Create(req, principal.ID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin/guides", http.StatusSeeOther)
}
