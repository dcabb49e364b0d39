package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/society-rp/staff-portal/v1/services"
	"github.com/society-rp/staff-portal/v1/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionAuth(t *testing.T) (*SessionAuth, *session.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := session.NewStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	return NewSessionAuth(store), store
}

func okHandler(t *testing.T, sawPrincipal *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := PrincipalFromContext(r.Context())
		*sawPrincipal = ok
		w.WriteHeader(http.StatusOK)
	})
}

func TestResolveSessionLoadsPrincipal(t *testing.T) {
	auth, store := newTestSessionAuth(t)

	sessionID, err := store.Create(context.Background(), &models.Account{ID: "usr_1", Tier: models.TierGoldCommand})
	require.NoError(t, err)

	var sawPrincipal bool
	handler := auth.ResolveSession(okHandler(t, &sawPrincipal))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, sawPrincipal)

	// stale cookie resolves to no principal, not an error
	sawPrincipal = false
	req = httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "expired"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.False(t, sawPrincipal)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	var sawPrincipal bool
	handler := RequireSession(okHandler(t, &sawPrincipal))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, sawPrincipal)
}

func withPrincipal(r *http.Request, principal *models.Account) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, principal))
}

func TestRequireTier(t *testing.T) {
	var sawPrincipal bool
	handler := RequireTier(models.CanAdministerDirectory)(okHandler(t, &sawPrincipal))

	// Bronze Command fails with a terminal 403, no redirect
	rec := httptest.NewRecorder()
	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/admin/users", nil),
		&models.Account{Username: "alice", Tier: models.TierBronzeCommand})
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, sawPrincipal)

	rec = httptest.NewRecorder()
	req = withPrincipal(httptest.NewRequest(http.MethodGet, "/admin/users", nil),
		&models.Account{Username: "bob", Tier: models.TierSilverCommand})
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawPrincipal)

	// unauthenticated callers are redirected, not 403'd
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireRosterCommand(t *testing.T) {
	db := services.SetupTestDB(t)
	swat := services.NewRosterService(db, &models.SwatRoster, nil)

	_, err := swat.Create(&models.CreateAccountRequest{Username: "lead", DiscordID: "100", Rank: "SWAT Commander"})
	require.NoError(t, err)
	_, err = swat.Create(&models.CreateAccountRequest{Username: "newbie", DiscordID: "200"})
	require.NoError(t, err)

	var sawPrincipal bool
	handler := RequireRosterCommand(swat)(okHandler(t, &sawPrincipal))

	cases := []struct {
		name      string
		discordID string
		want      int
	}{
		{"command rank allowed", "100", http.StatusOK},
		{"member without command rank forbidden", "200", http.StatusForbidden},
		{"non-member forbidden even with directory tier", "999", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := withPrincipal(httptest.NewRequest(http.MethodGet, "/admin/swat", nil),
				&models.Account{DiscordID: tc.discordID, Tier: models.TierGoldCommand})
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
