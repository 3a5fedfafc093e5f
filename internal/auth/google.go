package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/firstshift/jobboard/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the subset of the userinfo response we care about.
type GoogleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewGoogleOAuth builds the oauth2 config for Google login. Returns nil when
// client credentials are not configured.
func NewGoogleOAuth(cfg config.OAuthConfig) *oauth2.Config {
	if !cfg.Enabled() {
		return nil
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// FetchGoogleUser exchanges the authorization code and fetches the user's
// profile from the userinfo endpoint.
func FetchGoogleUser(ctx context.Context, conf *oauth2.Config, code string) (*GoogleUserInfo, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google did not return an email")
	}
	return &info, nil
}
