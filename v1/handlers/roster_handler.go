package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/society-rp/staff-portal/v1/services"
)

// listRoster serves the member-facing roster page, sorted by seniority
func (h *V1Handler) listRoster(svc *services.RosterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List()
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.CreateCollectionResponse(accounts, len(accounts)))
	}
}

// adminListRoster serves the admin listing; same ordering as the roster page
func (h *V1Handler) adminListRoster(svc *services.RosterService) http.HandlerFunc {
	return h.listRoster(svc)
}

// createAccount handles the admin create form post
func (h *V1Handler) createAccount(svc *services.RosterService, redirect string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "malformed form body")
			return
		}
		req, err := accountCreateFromForm(r.PostForm)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		if _, err := svc.Create(req); err != nil {
			respondServiceError(w, r, err)
			return
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

// editAccount handles the admin edit form post. Only fields present in the
// form are touched; an empty value is a real overwrite.
func (h *V1Handler) editAccount(svc *services.RosterService, redirect string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "malformed form body")
			return
		}
		req, err := accountUpdateFromForm(r.PostForm)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		if _, err := svc.Update(chi.URLParam(r, "id"), req); err != nil {
			respondServiceError(w, r, err)
			return
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

// deleteAccount handles the admin delete form post
func (h *V1Handler) deleteAccount(svc *services.RosterService, redirect string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

func accountCreateFromForm(form url.Values) (*models.CreateAccountRequest, error) {
	req := &models.CreateAccountRequest{
		Username:  form.Get("username"),
		DiscordID: form.Get("discordId"),
		Rank:      form.Get("rank"),
		Status:    form.Get("status"),
		SteamID:   form.Get("steamId"),
		Division:  form.Get("division"),
		Tier:      form.Get("tier"),
	}
	if v := form.Get("strikes"); v != "" {
		strikes, err := strconv.Atoi(v)
		if err != nil {
			return nil, apierrors.ValidationError("strikes must be a number")
		}
		req.Strikes = strikes
	}
	return req, nil
}

func accountUpdateFromForm(form url.Values) (*models.UpdateAccountRequest, error) {
	req := &models.UpdateAccountRequest{}
	if form.Has("username") {
		req.Username = ptr(form.Get("username"))
	}
	if form.Has("discordId") {
		req.DiscordID = ptr(form.Get("discordId"))
	}
	if form.Has("rank") {
		req.Rank = ptr(form.Get("rank"))
	}
	if form.Has("status") {
		req.Status = ptr(form.Get("status"))
	}
	if form.Has("steamId") {
		req.SteamID = ptr(form.Get("steamId"))
	}
	if form.Has("division") {
		req.Division = ptr(form.Get("division"))
	}
	if form.Has("tier") {
		req.Tier = ptr(form.Get("tier"))
	}
	if form.Has("strikes") {
		strikes, err := strconv.Atoi(form.Get("strikes"))
		if err != nil {
			return nil, apierrors.ValidationError("strikes must be a number")
		}
		req.Strikes = &strikes
	}
	return req, nil
}

func ptr[T any](v T) *T {
	return &v
}
