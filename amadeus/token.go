package amadeus

import (
	"context"
	"time"

	"github.com/go-kit/log/level"
	"golang.org/x/oauth2"
)

type State int

const (
	NoToken State = iota
	Valid
	Expired
)

func (s State) String() string {
	switch s {
	case NoToken:
		return "no-token"
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// State returns the current access token state.
func (c *Client) State() State {
	c.Lock()
	defer c.Unlock()

	return c.state()
}

func (c *Client) state() State {
	switch {
	case c.credentials == nil:
		return NoToken

	case c.token.Valid():
		return Valid

	default:
		return Expired
	}
}

// bearer returns a valid access token, re-authenticating if the current token has
// expired. NoToken is final.
func (c *Client) bearer(ctx context.Context) (*oauth2.Token, error) {
	c.Lock()
	defer c.Unlock()

	switch c.state() {
	case NoToken:
		return nil, ErrNoToken

	case Expired:
		level.Info(c.log).Log("msg", "access token expired - re-authenticating")
		if err := c.authenticate(ctx); err != nil {
			return nil, err
		}
	}

	return c.token, nil
}

// authenticate requests a new access token from the token endpoint, posting the
// client credentials in the form body.
func (c *Client) authenticate(ctx context.Context) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	token, err := c.credentials.Token(ctx)
	if err != nil {
		return &AuthError{Err: err}
	}

	c.token = token

	if !token.Expiry.IsZero() {
		level.Debug(c.log).Log("msg", "acquired access token", "expires", token.Expiry.Format(time.RFC3339))
	} else {
		level.Debug(c.log).Log("msg", "acquired access token")
	}

	return nil
}
