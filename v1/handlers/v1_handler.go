package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/idp/discord"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/middleware"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/society-rp/staff-portal/v1/services"
	"github.com/society-rp/staff-portal/v1/session"
	"gorm.io/gorm"
)

// V1Handler owns the services behind every route
type V1Handler struct {
	idp      *discord.Client
	states   *discord.StateSigner
	sessions *session.Store

	directory *services.RosterService
	swat      *services.RosterService
	ia        *services.RosterService
	cadets    *services.CadetService
	guides    *services.GuideService
}

// NewV1Handler wires the services over one database connection
func NewV1Handler(db *gorm.DB, sessions *session.Store, idp *discord.Client, states *discord.StateSigner) *V1Handler {
	cadets := services.NewCadetService(db)
	return &V1Handler{
		idp:       idp,
		states:    states,
		sessions:  sessions,
		directory: services.NewRosterService(db, &models.DirectoryRoster, cadets),
		swat:      services.NewRosterService(db, &models.SwatRoster, nil),
		ia:        services.NewRosterService(db, &models.InternalAffairsRoster, nil),
		cadets:    cadets,
		guides:    services.NewGuideService(db),
	}
}

// SetupRoutes mounts every route on the router. The session middleware is
// expected to run for the whole tree; gates here only enforce policy.
func (h *V1Handler) SetupRoutes(r chi.Router) {
	// Entry, login flow and public pages
	r.Get("/", h.entry)
	r.Get("/auth/discord", h.login)
	r.Get("/auth/discord/callback", h.callback)
	r.Get("/logout", h.logout)
	r.Get("/access-denied", h.accessDenied)
	r.Get("/guides", h.listGuides)
	r.Get("/guides/{id}", h.getGuide)

	// Member pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/home", h.home)
		r.Get("/profile", h.profile)
		r.Get("/officers", h.listRoster(h.directory))
		r.Get("/swat", h.listRoster(h.swat))
		r.Get("/internal-affairs", h.listRoster(h.ia))
	})

	// Admin pages
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.adminIndex)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireTier(models.CanAdministerDirectory))
			r.Get("/users", h.adminListRoster(h.directory))
			r.Post("/users/create", h.createAccount(h.directory, "/admin/users"))
			r.Post("/users/edit/{id}", h.editAccount(h.directory, "/admin/users"))
			r.Post("/users/delete/{id}", h.deleteAccount(h.directory, "/admin/users"))

			r.Get("/guides", h.adminListGuides)
			r.Post("/guides/create", h.createGuide)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRosterCommand(h.swat))
			r.Get("/swat", h.adminListRoster(h.swat))
			r.Post("/swat/create", h.createAccount(h.swat, "/admin/swat"))
			r.Post("/swat/edit/{id}", h.editAccount(h.swat, "/admin/swat"))
			r.Post("/swat/delete/{id}", h.deleteAccount(h.swat, "/admin/swat"))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRosterCommand(h.ia))
			r.Get("/internal-affairs", h.adminListRoster(h.ia))
			r.Post("/internal-affairs/create", h.createAccount(h.ia, "/admin/internal-affairs"))
			r.Post("/internal-affairs/edit/{id}", h.editAccount(h.ia, "/admin/internal-affairs"))
			r.Post("/internal-affairs/delete/{id}", h.deleteAccount(h.ia, "/admin/internal-affairs"))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireTier(models.CanAdministerCadets))
			r.Get("/cadets", h.adminListCadets)
			r.Post("/cadets/update/{id}", h.updateCadet)
		})
	})
}

// respondServiceError maps a service error to its HTTP response. Unexpected
// failures are logged with their cause and surface as a bare 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := apierrors.AsAPIError(err)
	if !ok || apiErr.Type == apierrors.ErrorTypeInternal {
		slog.Error("request failed", "error", err, "path", r.URL.Path, "method", r.Method)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithError(w, apiErr.HTTPStatus, apiErr.Message)
}
