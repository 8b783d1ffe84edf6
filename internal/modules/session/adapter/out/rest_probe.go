package out

import (
	"context"
	"fmt"

	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/httpclient"
)

// RESTProbe implements the auth probe against the backend user endpoints.
type RESTProbe struct {
	api *httpclient.Client
}

func NewRESTProbe(api *httpclient.Client) *RESTProbe {
	return &RESTProbe{api: api}
}

func (p *RESTProbe) Whoami(ctx context.Context) error {
	resp, err := p.api.Get(ctx, "/api/users/whoami")
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("whoami status %d: %w", resp.StatusCode, apperrors.ErrUnauthorized)
	}
	return nil
}

// ProfileComplete treats any not-ok profile reply as "not yet filled";
// the backend answers 404 until the initial save.
func (p *RESTProbe) ProfileComplete(ctx context.Context) (bool, error) {
	resp, err := p.api.Get(ctx, "/api/users/profile")
	if err != nil {
		return false, err
	}
	return resp.OK(), nil
}

func (p *RESTProbe) Signout(ctx context.Context) error {
	resp, err := p.api.Post(ctx, "/api/auth/signout", nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("signout status %d", resp.StatusCode)
	}
	return nil
}
