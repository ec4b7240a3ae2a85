package client

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/locaddo/locaddo/pkg/server"
)

// JoinWaitlist posts a signup. The server's message is returned for 4xx and
// 5xx replies too, alongside the error.
func (c *Client) JoinWaitlist(ctx context.Context, email, name string) (*server.JoinResponse, error) {
	b, err := json.Marshal(server.JoinRequest{Email: email, Name: name})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to encode request")
	}

	resp, sendErr := c.Post(ctx, "/api/waitlist", string(b))
	if resp == nil {
		return nil, sendErr
	}

	var jr server.JoinResponse
	if err := json.Unmarshal(resp.Body, &jr); err != nil {
		if sendErr != nil {
			return nil, sendErr
		}
		return nil, pkgerrors.Wrapf(err, "failed to parse response %q", resp.Body)
	}
	return &jr, sendErr
}

// Ping reports whether the waitlist API is up.
func (c *Client) Ping(ctx context.Context) (*server.StatusResponse, error) {
	resp, err := c.Get(ctx, "/api/waitlist")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to ping waitlist api")
	}

	var sr server.StatusResponse
	if err := json.Unmarshal(resp.Body, &sr); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse response %q", resp.Body)
	}
	return &sr, nil
}

func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.Get(ctx, "/version")
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to get server version")
	}

	var v string
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to parse response %q", resp.Body)
	}
	return v, nil
}
