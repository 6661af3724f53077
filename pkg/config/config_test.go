package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validM2MConfig() *Config {
	cfg := &Config{}
	cfg.Havona.BaseURL = "https://api.havona.example"
	cfg.Auth0.Domain = "havona.auth0.example"
	cfg.Auth0.Audience = "https://api.havona.example"
	cfg.Auth0.M2MClientID = "m2m-client"
	cfg.Auth0.M2MClientSecret = "m2m-secret"
	return cfg
}

func TestValidateM2M(t *testing.T) {
	assert.NoError(t, validM2MConfig().Validate())
}

func TestValidatePasswordGrant(t *testing.T) {
	cfg := validM2MConfig()
	cfg.Auth0.M2MClientID = ""
	cfg.Auth0.M2MClientSecret = ""
	cfg.Auth0.ClientID = "spa-client"
	cfg.User.Email = "trader@example.com"
	cfg.User.Password = "hunter2"

	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingBaseURL(t *testing.T) {
	cfg := validM2MConfig()
	cfg.Havona.BaseURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HAVONA_API_URL")
}

func TestValidateNoCredentials(t *testing.T) {
	cfg := validM2MConfig()
	cfg.Auth0.M2MClientID = ""
	cfg.Auth0.M2MClientSecret = ""

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestHasM2MCredentials(t *testing.T) {
	cfg := validM2MConfig()
	assert.True(t, cfg.HasM2MCredentials())

	cfg.Auth0.M2MClientSecret = ""
	assert.False(t, cfg.HasM2MCredentials())
}
