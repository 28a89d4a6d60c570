package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
)

type membersResponse struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Members []member.Member `json:"members"`
}

type memberResponse struct {
	Message string        `json:"message"`
	Member  member.Member `json:"member"`
}

// Members lists the active members of the lead's vertical.
func (c *Client) Members(ctx context.Context) ([]member.Member, error) {
	var resp membersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/verticalleads/members/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// AddMember creates a member in the lead's vertical.
func (c *Client) AddMember(ctx context.Context, req member.AddMemberRequest) (member.Member, error) {
	var resp memberResponse
	if err := c.doJSON(ctx, http.MethodPost, "/verticalleads/members/", req, &resp); err != nil {
		return member.Member{}, err
	}
	return resp.Member, nil
}

// UpdateMember applies a partial update to one member.
func (c *Client) UpdateMember(ctx context.Context, rollNo string, req member.UpdateMemberRequest) (member.Member, error) {
	var resp memberResponse
	path := "/verticalleads/members/" + url.PathEscape(rollNo)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &resp); err != nil {
		return member.Member{}, err
	}
	return resp.Member, nil
}

// DeleteMember removes a member from the lead's vertical.
func (c *Client) DeleteMember(ctx context.Context, rollNo string) error {
	path := "/verticalleads/members/" + url.PathEscape(rollNo)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// RequestMemberDeletion files a delete request for admin review.
func (c *Client) RequestMemberDeletion(ctx context.Context, rollNo, reason string) error {
	body := map[string]string{
		"roll_no": rollNo,
		"reason":  reason,
	}
	return c.doJSON(ctx, http.MethodPost, "/verticalleads/delete-requests", body, nil)
}

// SaveMembersTemplate writes the empty members workbook to path. The
// workbook is generated locally; no network round trip is involved.
func (c *Client) SaveMembersTemplate(path string) error {
	tmpl, err := summary.MembersTemplate()
	if err != nil {
		return err
	}
	defer tmpl.Close()
	return tmpl.SaveAs(path)
}
