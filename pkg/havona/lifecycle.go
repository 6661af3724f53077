package havona

import (
	"context"
	"sync"

	"github.com/havona-labs/havona-mcp/pkg/config"
)

// Lifecycle hands out the process-wide authenticated client. The build
// function runs at most once, guarded against concurrent first calls; its
// outcome, success or failure, is cached for the process lifetime. A failed
// credential exchange or missing configuration therefore surfaces the same
// error on every subsequent call.
type Lifecycle struct {
	build  func() (*Client, error)
	once   sync.Once
	client *Client
	err    error
}

// NewLifecycle wraps a client build function. The function is not called
// until the first Client invocation.
func NewLifecycle(build func() (*Client, error)) *Lifecycle {
	return &Lifecycle{build: build}
}

// NewDefaultLifecycle builds the client from environment configuration:
// resolve credentials, exchange them with Auth0, construct the client.
func NewDefaultLifecycle(cfg *config.Config) *Lifecycle {
	return NewLifecycle(func() (*Client, error) {
		creds, err := ResolveCredentials(cfg)
		if err != nil {
			return nil, err
		}

		ctx := context.Background()
		var token string
		switch c := creds.(type) {
		case ServiceAccountCredentials:
			token, err = c.Exchange(ctx)
		case UserCredentials:
			token, err = c.Exchange(ctx)
		}
		if err != nil {
			return nil, err
		}

		return NewClient(cfg.Havona.BaseURL, token), nil
	})
}

// Client returns the shared authenticated client, constructing it on first
// use.
func (l *Lifecycle) Client() (*Client, error) {
	l.once.Do(func() {
		l.client, l.err = l.build()
	})
	return l.client, l.err
}
