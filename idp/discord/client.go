// Package discord integrates with Discord as the identity provider. The
// application never issues its own credentials; Discord is the sole source
// of member identity.
package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/society-rp/staff-portal/shared/utils"
	"golang.org/x/oauth2"
)

const defaultAPIBaseURL = "https://discord.com/api"

// Profile is the identity returned by a successful code exchange
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Client exchanges OAuth2 authorization codes for Discord profiles
type Client struct {
	OAuthConfig *oauth2.Config
	BaseURL     string
}

// NewClient creates a Discord OAuth2 client. baseURL overrides the Discord
// API endpoint and is only set by tests.
func NewClient(clientID, clientSecret, redirectURL, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		OAuthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  baseURL + "/oauth2/authorize",
				TokenURL: baseURL + "/oauth2/token",
			},
		},
	}
}

// NewClientFromEnv creates a client from DISCORD_* environment variables
func NewClientFromEnv() *Client {
	return NewClient(
		utils.GetEnvOrDefault("DISCORD_CLIENT_ID", ""),
		utils.GetEnvOrDefault("DISCORD_CLIENT_SECRET", ""),
		utils.GetEnvOrDefault("DISCORD_CALLBACK_URL", "http://localhost:3000/auth/discord/callback"),
		"",
	)
}

// AuthCodeURL returns the Discord authorization URL for the given state
func (c *Client) AuthCodeURL(state string) string {
	return c.OAuthConfig.AuthCodeURL(state)
}

// Exchange trades an authorization code for the member's Discord profile
func (c *Client) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := c.OAuthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	httpClient := c.OAuthConfig.Client(ctx, token)
	resp, err := httpClient.Get(c.BaseURL + "/users/@me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request failed with status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// AvatarURL formats the CDN URL for an avatar hash at display size.
// Animated avatars carry an "a_" prefix and are served as gif.
func AvatarURL(userID, avatarHash string) string {
	if avatarHash == "" {
		return ""
	}
	ext := "png"
	if strings.HasPrefix(avatarHash, "a_") {
		ext = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.%s?size=1024", userID, avatarHash, ext)
}
