package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/middleware"
	"github.com/society-rp/staff-portal/v1/models"
)

// profile serves the caller's own cadet progress. Members with no entry get
// an all-zero view, not an error.
func (h *V1Handler) profile(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	entry, err := h.cadets.Get(principal.DiscordID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":     principal,
		"progress": entry,
	})
}

// adminListCadets serves the cadet ledger with usernames joined in
func (h *V1Handler) adminListCadets(w http.ResponseWriter, r *http.Request) {
	records, err := h.cadets.ListWithUsernames()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.CreateCollectionResponse(records, len(records)))
}

// updateCadet handles the admin counter update form post. The path id is
// the cadet's Discord ID.
func (h *V1Handler) updateCadet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed form body")
		return
	}
	req, err := cadetUpdateFromForm(r.PostForm)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if _, err := h.cadets.Update(chi.URLParam(r, "id"), req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin/cadets", http.StatusSeeOther)
}

func cadetUpdateFromForm(form url.Values) (*models.UpdateCadetRequest, error) {
	req := &models.UpdateCadetRequest{}
	fields := []struct {
		key string
		dst **int
	}{
		{"arrests", &req.Arrests},
		{"rideAlongs", &req.RideAlongs},
		{"warrants", &req.Warrants},
		{"fines", &req.Fines},
		{"heists", &req.Heists},
	}
	for _, f := range fields {
		if !form.Has(f.key) {
			continue
		}
		value, err := strconv.Atoi(form.Get(f.key))
		if err != nil {
			return nil, apierrors.ValidationError(f.key + " must be a number")
		}
		*f.dst = &value
	}
	return req, nil
}
