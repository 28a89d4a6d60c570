package client

import (
	"context"
	"net/http"
)

type loginResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

// LoginGlobalAdmin authenticates an office bearer. The session cookie lands
// in the jar; the profile is persisted in the session store.
func (c *Client) LoginGlobalAdmin(ctx context.Context, username, password string) (Profile, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/globaladmin/login", body, &resp); err != nil {
		return Profile{}, err
	}
	if err := c.session.Set(resp.User); err != nil {
		return Profile{}, err
	}
	return resp.User, nil
}

// LoginVerticalLead authenticates a vertical lead by roll number.
func (c *Client) LoginVerticalLead(ctx context.Context, rollNo, password string) (Profile, error) {
	body := map[string]string{
		"roll_no":  rollNo,
		"password": password,
	}

	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/verticalleads/login", body, &resp); err != nil {
		return Profile{}, err
	}
	if err := c.session.Set(resp.User); err != nil {
		return Profile{}, err
	}
	return resp.User, nil
}

// Logout revokes the server session and clears the local profile. The local
// profile is cleared even when the server call fails, matching the consoles'
// behavior of never trapping a user in a broken session.
func (c *Client) Logout(ctx context.Context) error {
	path := "/auth/verticalleads/logout"
	if p := c.session.Profile(); p != nil && p.Role == "global_admin" {
		path = "/auth/globaladmin/logout"
	}

	err := c.doJSON(ctx, http.MethodPost, path, nil, nil)
	if clearErr := c.session.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}
