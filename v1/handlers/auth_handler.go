package handlers

import (
	"log/slog"
	"net/http"

	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/idp/discord"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/middleware"
	"github.com/society-rp/staff-portal/v1/session"
)

// entry is the public landing page; it reports whether a session exists
func (h *V1Handler) entry(w http.ResponseWriter, r *http.Request) {
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": true,
			"user":          principal,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
}

// login redirects to the identity provider's authorization page
func (h *V1Handler) login(w http.ResponseWriter, r *http.Request) {
	state, err := h.states.Issue()
	if err != nil {
		slog.Error("failed to issue oauth2 state", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	http.Redirect(w, r, h.idp.AuthCodeURL(state), http.StatusFound)
}

// callback completes the login handshake. Login is invitation-only: an
// identity with no directory account is turned away, never auto-created.
func (h *V1Handler) callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := h.states.Verify(query.Get("state")); err != nil {
		slog.Warn("oauth2 callback with invalid state")
		http.Redirect(w, r, "/access-denied", http.StatusFound)
		return
	}
	code := query.Get("code")
	if code == "" {
		http.Redirect(w, r, "/access-denied", http.StatusFound)
		return
	}

	profile, err := h.idp.Exchange(r.Context(), code)
	if err != nil {
		slog.Warn("identity provider exchange failed", "error", err)
		http.Redirect(w, r, "/access-denied", http.StatusFound)
		return
	}

	account, err := h.directory.RefreshLogin(profile.ID, profile.Username, discord.AvatarURL(profile.ID, profile.Avatar))
	if err != nil {
		if apierrors.IsType(err, apierrors.ErrorTypeNotFound) {
			slog.Warn("login denied: identity not provisioned", "discordId", profile.ID)
			http.Redirect(w, r, "/access-denied", http.StatusFound)
			return
		}
		respondServiceError(w, r, err)
		return
	}

	sessionID, err := h.sessions.Create(r.Context(), account)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/home", http.StatusFound)
}

// logout destroys the session and returns to the entry page
func (h *V1Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			slog.Error("failed to destroy session", "error", err)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// accessDenied is where failed logins land
func (h *V1Handler) accessDenied(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"error": "Access Denied",
		"message": "Your Discord account is not on the roster. " +
			"Contact a member of command to be added.",
	})
}

// adminIndex is the admin landing page, open to any authenticated member;
// the individual admin surfaces enforce their own gates
func (h *V1Handler) adminIndex(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": principal})
}

// home shows directory statistics to any authenticated member
func (h *V1Handler) home(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	stats, err := h.directory.Stats()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":  principal,
		"stats": stats,
	})
}
