package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.discordapp.com/avatars/123/abcdef.png?size=1024",
		AvatarURL("123", "abcdef"))
	assert.Equal(t,
		"https://cdn.discordapp.com/avatars/123/a_bcdef.gif?size=1024",
		AvatarURL("123", "a_bcdef"))
	assert.Empty(t, AvatarURL("123", ""))
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok",
				"token_type":   "Bearer",
			})
		case "/users/@me":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(Profile{ID: "123", Username: "alice", Avatar: "a_hash"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient("cid", "secret", "http://localhost/callback", srv.URL)
	profile, err := client.Exchange(context.Background(), "some-code")
	require.NoError(t, err)
	assert.Equal(t, "123", profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "a_hash", profile.Avatar)
}

func TestExchangeRejectsBadCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient("cid", "secret", "http://localhost/callback", srv.URL)
	_, err := client.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestStateSignerRoundTrip(t *testing.T) {
	signer := NewStateSigner([]byte("secret"))

	state, err := signer.Issue()
	require.NoError(t, err)
	assert.NoError(t, signer.Verify(state))
}

func TestStateSignerRejectsForgedState(t *testing.T) {
	signer := NewStateSigner([]byte("secret"))
	other := NewStateSigner([]byte("other-secret"))

	state, err := other.Issue()
	require.NoError(t, err)
	assert.ErrorIs(t, signer.Verify(state), ErrInvalidState)
	assert.ErrorIs(t, signer.Verify("not-a-token"), ErrInvalidState)
}
