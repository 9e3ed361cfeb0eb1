package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// OAuthConfigFromFile reads OAuth Desktop App credentials for the one-time
// authorization flow.
func OAuthConfigFromFile(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
	}
	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as OAuth Desktop App credentials: %w", credentialsPath, err)
	}
	return config, nil
}

// AuthCodeURL is the URL the user opens to grant offline calendar access.
func AuthCodeURL(config *oauth2.Config) string {
	return config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// TokenPath is where NewClientFromCredentialsFile looks for the OAuth token.
func TokenPath(credentialsPath string) string {
	return filepath.Join(filepath.Dir(credentialsPath), tokenFileName)
}

// ExchangeAndSaveToken trades the authorization code for a token and writes
// it to tokenPath with owner-only permissions.
func ExchangeAndSaveToken(ctx context.Context, config *oauth2.Config, code, tokenPath string) error {
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return nil
}
