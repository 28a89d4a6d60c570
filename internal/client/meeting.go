package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
)

type meetingsResponse struct {
	Message  string            `json:"message"`
	Count    int               `json:"count"`
	Meetings []meeting.Meeting `json:"meetings"`
}

type meetingResponse struct {
	Message string          `json:"message"`
	Meeting meeting.Meeting `json:"meeting"`
}

// Meetings lists the caller's meetings, newest first. Global admins see
// every vertical's meetings.
func (c *Client) Meetings(ctx context.Context) ([]meeting.Meeting, error) {
	var resp meetingsResponse
	if err := c.doJSON(ctx, http.MethodGet, c.rolePrefix()+"/meetings/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// CreateMeeting records a meeting in the lead's vertical.
func (c *Client) CreateMeeting(ctx context.Context, req meeting.CreateMeetingRequest) (meeting.Meeting, error) {
	var resp meetingResponse
	if err := c.doJSON(ctx, http.MethodPost, "/verticalleads/meetings/", req, &resp); err != nil {
		return meeting.Meeting{}, err
	}
	return resp.Meeting, nil
}

// DeleteMeeting removes a meeting and its attendance records.
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	path := "/verticalleads/meetings/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// rolePrefix picks the route group matching the cached profile.
func (c *Client) rolePrefix() string {
	if p := c.session.Profile(); p != nil && p.Role == "global_admin" {
		return "/globaladmin"
	}
	return "/verticalleads"
}
