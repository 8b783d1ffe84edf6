package out

import (
	"context"
	"net/http"
	"strconv"

	"fitcoach/internal/modules/profile/domain"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/httpclient"
)

// RESTProfile talks to the /api/users/profile and /api/users/update
// endpoints.
type RESTProfile struct {
	api *httpclient.Client
}

func NewRESTProfile(api *httpclient.Client) *RESTProfile {
	return &RESTProfile{api: api}
}

// SaveInitial sends the stats as strings, matching what the profile
// endpoint historically accepted from the completion form.
func (a *RESTProfile) SaveInitial(ctx context.Context, profile domain.Profile) error {
	resp, err := a.api.Put(ctx, "/api/users/profile", map[string]string{
		"weight": strconv.Itoa(profile.Weight),
		"height": strconv.Itoa(profile.Height),
		"age":    strconv.Itoa(profile.Age),
		"gender": domain.APIGender(profile.Gender),
	})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrSessionExpired
	}
	if !resp.OK() {
		return apperrors.Rejected(resp.StatusCode, resp.Message("Could not save profile"))
	}
	return nil
}

func (a *RESTProfile) FetchAccount(ctx context.Context) (domain.Profile, error) {
	resp, err := a.api.Get(ctx, "/api/users/update")
	if err != nil {
		return domain.Profile{}, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return domain.Profile{}, apperrors.ErrSessionExpired
	}
	if !resp.OK() {
		return domain.Profile{}, apperrors.Rejected(resp.StatusCode, resp.Message("Could not load profile data"))
	}
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Weight   int    `json:"weight"`
		Height   int    `json:"height"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
	}
	if err := resp.Decode(&payload); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Username: payload.Username,
		Email:    payload.Email,
		Weight:   payload.Weight,
		Height:   payload.Height,
		Age:      payload.Age,
		Gender:   domain.GenderFromAPI(payload.Gender),
	}, nil
}

func (a *RESTProfile) SaveAccount(ctx context.Context, profile domain.Profile, password string) error {
	payload := map[string]any{
		"username": profile.Username,
		"weight":   profile.Weight,
		"height":   profile.Height,
		"age":      profile.Age,
		"gender":   domain.APIGender(profile.Gender),
	}
	if password != "" {
		payload["password"] = password
	}
	resp, err := a.api.Put(ctx, "/api/users/update", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrSessionExpired
	}
	if !resp.OK() {
		return apperrors.Rejected(resp.StatusCode, resp.Message("Failed to save profile"))
	}
	return nil
}
