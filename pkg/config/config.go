// Package config provides centralized configuration management for the Havona MCP server.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// Havona platform configuration
	Havona struct {
		BaseURL string
	}

	// Auth0 identity provider configuration
	Auth0 struct {
		Domain   string
		Audience string

		// SPA / password-grant client
		ClientID string

		// Machine-to-machine (service account) client
		M2MClientID     string
		M2MClientSecret string
	}

	// Password-grant user credentials
	User struct {
		Email    string
		Password string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables
func Load() *Config {
	once.Do(func() {
		v := viper.New()
		v.AutomaticEnv()

		config = &Config{}

		// Havona platform
		config.Havona.BaseURL = strings.TrimRight(v.GetString("HAVONA_API_URL"), "/")

		// Auth0
		config.Auth0.Domain = v.GetString("AUTH0_DOMAIN")
		config.Auth0.Audience = v.GetString("AUTH0_AUDIENCE")
		config.Auth0.ClientID = v.GetString("AUTH0_CLIENT_ID")
		config.Auth0.M2MClientID = v.GetString("AUTH0_M2M_CLIENT_ID")
		config.Auth0.M2MClientSecret = v.GetString("AUTH0_M2M_CLIENT_SECRET")

		// User credentials
		config.User.Email = v.GetString("HAVONA_EMAIL")
		config.User.Password = v.GetString("HAVONA_PASSWORD")
	})

	return config
}

// HasM2MCredentials reports whether a full service-account credential pair is configured.
func (c *Config) HasM2MCredentials() bool {
	return c.Auth0.M2MClientID != "" && c.Auth0.M2MClientSecret != ""
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var errors []string

	if c.Havona.BaseURL == "" {
		errors = append(errors, "HAVONA_API_URL is required")
	}

	if c.Auth0.Domain == "" || c.Auth0.Audience == "" {
		errors = append(errors, "AUTH0_DOMAIN and AUTH0_AUDIENCE are required")
	}

	// Either a full M2M pair or a full password-grant set must be present
	if !c.HasM2MCredentials() &&
		(c.Auth0.ClientID == "" || c.User.Email == "" || c.User.Password == "") {
		errors = append(errors, "either AUTH0_M2M_CLIENT_ID/AUTH0_M2M_CLIENT_SECRET or AUTH0_CLIENT_ID/HAVONA_EMAIL/HAVONA_PASSWORD must be configured")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
