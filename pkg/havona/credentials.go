package havona

import (
	"github.com/havona-labs/havona-mcp/pkg/config"
)

// Credentials is the resolved authentication strategy for this process.
// Exactly one of the two implementations is selected, once, from the
// environment; the choice never changes for the process lifetime.
type Credentials interface {
	credentials()
}

// ServiceAccountCredentials drive an OAuth2 client-credentials (M2M) grant.
type ServiceAccountCredentials struct {
	Domain       string
	Audience     string
	ClientID     string
	ClientSecret string
}

func (ServiceAccountCredentials) credentials() {}

// UserCredentials drive an OAuth2 password grant for an interactive user.
type UserCredentials struct {
	Domain   string
	Audience string
	ClientID string
	Username string
	Password string
}

func (UserCredentials) credentials() {}

// ResolveCredentials selects the authentication strategy from configuration.
// A full M2M pair wins over user credentials when both are present. The
// returned error is always a *ConfigError naming the first missing variable.
func ResolveCredentials(cfg *config.Config) (Credentials, error) {
	if cfg.Havona.BaseURL == "" {
		return nil, &ConfigError{Variable: "HAVONA_API_URL"}
	}
	if cfg.Auth0.Domain == "" {
		return nil, &ConfigError{Variable: "AUTH0_DOMAIN"}
	}
	if cfg.Auth0.Audience == "" {
		return nil, &ConfigError{Variable: "AUTH0_AUDIENCE"}
	}

	if cfg.HasM2MCredentials() {
		return ServiceAccountCredentials{
			Domain:       cfg.Auth0.Domain,
			Audience:     cfg.Auth0.Audience,
			ClientID:     cfg.Auth0.M2MClientID,
			ClientSecret: cfg.Auth0.M2MClientSecret,
		}, nil
	}

	if cfg.Auth0.ClientID == "" {
		return nil, &ConfigError{Variable: "AUTH0_CLIENT_ID"}
	}
	if cfg.User.Email == "" {
		return nil, &ConfigError{Variable: "HAVONA_EMAIL"}
	}
	if cfg.User.Password == "" {
		return nil, &ConfigError{Variable: "HAVONA_PASSWORD"}
	}

	return UserCredentials{
		Domain:   cfg.Auth0.Domain,
		Audience: cfg.Auth0.Audience,
		ClientID: cfg.Auth0.ClientID,
		Username: cfg.User.Email,
		Password: cfg.User.Password,
	}, nil
}
