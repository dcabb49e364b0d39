package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/society-rp/staff-portal/v1/services"
	"github.com/society-rp/staff-portal/v1/session"
)

// Context key types to avoid collisions
type contextKey string

const principalKey contextKey = "principal"

// PrincipalFromContext extracts the session principal from request context
func PrincipalFromContext(ctx context.Context) (*models.Account, bool) {
	principal, ok := ctx.Value(principalKey).(*models.Account)
	return principal, ok
}

// SessionAuth resolves the session cookie into a principal
type SessionAuth struct {
	sessions *session.Store
}

// NewSessionAuth creates session middleware backed by the given store
func NewSessionAuth(sessions *session.Store) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

// ResolveSession loads the caller's principal into the request context when
// a valid session cookie is present. It never rejects: endpoints that allow
// anonymous access run behind it too.
func (m *SessionAuth) ResolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				slog.Error("failed to resolve session", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession redirects unauthenticated callers to the entry page
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireTier gates a route on a tier predicate. Failing the check is
// terminal: authenticated callers get a hard 403, never a redirect.
func RequireTier(allowed func(tier string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			if !allowed(principal.Tier) {
				slog.Warn("access denied: insufficient tier",
					"username", principal.Username,
					"tier", principal.Tier,
					"path", r.URL.Path)
				utils.RespondWithError(w, http.StatusForbidden, "Access denied.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRosterCommand gates a specialized roster's admin surface. The
// caller must hold a membership in that roster and a command-set rank in it;
// directory tier is irrelevant here.
func RequireRosterCommand(roster *services.RosterService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			member, err := roster.FindByDiscordID(principal.DiscordID)
			if err != nil {
				if apierrors.IsType(err, apierrors.ErrorTypeNotFound) {
					slog.Warn("access denied: not a roster member",
						"username", principal.Username,
						"roster", roster.Spec().Name,
						"path", r.URL.Path)
					utils.RespondWithError(w, http.StatusForbidden, "Access denied.")
					return
				}
				slog.Error("failed to resolve roster membership", "error", err)
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			if !roster.Spec().IsCommandRank(member.Rank) {
				slog.Warn("access denied: insufficient roster rank",
					"username", principal.Username,
					"roster", roster.Spec().Name,
					"rank", member.Rank,
					"path", r.URL.Path)
				utils.RespondWithError(w, http.StatusForbidden, "Access denied.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
