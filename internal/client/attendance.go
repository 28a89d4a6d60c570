package client

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
)

type rosterResponse struct {
	Message string                   `json:"message"`
	Meeting meeting.Meeting          `json:"meeting"`
	Count   int                      `json:"count"`
	Members []attendance.RosterEntry `json:"members"`
}

type summaryResponse struct {
	AttendanceSummary []summary.Row `json:"attendance_summary"`
}

// Roster fetches a meeting plus its per-member attendance flags.
func (c *Client) Roster(ctx context.Context, meetingID string) (meeting.Meeting, []attendance.RosterEntry, error) {
	var resp rosterResponse
	path := c.rolePrefix() + "/meetings/" + url.PathEscape(meetingID) + "/members-attendance"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return meeting.Meeting{}, nil, err
	}
	return resp.Meeting, resp.Members, nil
}

// UpdateAttendance bulk-writes presence flags for a meeting.
func (c *Client) UpdateAttendance(ctx context.Context, meetingID string, marks map[string]bool) (attendance.UpdateAttendanceResult, error) {
	body := map[string]interface{}{
		"memberAttendance": marks,
	}

	var result attendance.UpdateAttendanceResult
	path := c.rolePrefix() + "/meetings/" + url.PathEscape(meetingID) + "/attendance"
	if err := c.doJSON(ctx, http.MethodPut, path, body, &result); err != nil {
		return attendance.UpdateAttendanceResult{}, err
	}
	return result, nil
}

// Summary fetches the server-computed cross-vertical summary. Admin only.
func (c *Client) Summary(ctx context.Context) ([]summary.Row, error) {
	var resp summaryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/globaladmin/attendance-summary/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.AttendanceSummary, nil
}

// FetchAllAttendance reproduces the lead console's aggregation pass: list
// the meetings, fetch every roster, fold the marks, and rank the result.
// Any failed fetch aborts the whole pass; partial sums are never returned.
func (c *Client) FetchAllAttendance(ctx context.Context) ([]summary.Row, error) {
	meetings, err := c.Meetings(ctx)
	if err != nil {
		return nil, err
	}

	rosters := make([]summary.MeetingRoster, 0, len(meetings))
	var order []string
	seen := make(map[string]attendance.RosterEntry)

	for _, mt := range meetings {
		_, entries, err := c.Roster(ctx, mt.ID)
		if err != nil {
			return nil, err
		}

		roster := summary.MeetingRoster{MeetingID: mt.ID, Marks: make([]summary.Mark, 0, len(entries))}
		for _, entry := range entries {
			roster.Marks = append(roster.Marks, summary.Mark{
				RollNo:   entry.RollNo,
				Attended: entry.IsAttended != nil && *entry.IsAttended,
			})
			if _, ok := seen[entry.RollNo]; !ok {
				seen[entry.RollNo] = entry
				order = append(order, entry.RollNo)
			}
		}
		rosters = append(rosters, roster)
	}

	attended := summary.BuildAttendanceMap(rosters)
	total := len(meetings)

	rows := make([]summary.Row, 0, len(order))
	for _, rollNo := range order {
		entry := seen[rollNo]
		rows = append(rows, summary.Row{
			RollNo:     entry.RollNo,
			Name:       entry.Name,
			Vertical:   entry.Vertical,
			Department: entry.Department,
			Year:       entry.Year,
			Attended:   attended[rollNo],
			Total:      total,
			Percentage: summary.ComputePercentage(attended[rollNo], total),
		})
	}
	return summary.Rank(rows, summary.Desc), nil
}

// DownloadAttendanceReport streams the low-attendance CSV into w. A nil
// threshold uses the server default; pass -1 to disable filtering. When the
// server answers a binary download request with an error, the body is still
// the {"error"} JSON and is decoded back into an APIError.
func (c *Client) DownloadAttendanceReport(ctx context.Context, w io.Writer, threshold *int) (string, error) {
	u := c.baseURL + "/globaladmin/attendance-report"
	if threshold != nil {
		q := url.Values{}
		if *threshold < 0 {
			q.Set("threshold", "none")
		} else {
			q.Set("threshold", strconv.Itoa(*threshold))
		}
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &APIError{Message: msgRequestFailed}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Message: msgNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", &APIError{Message: msgRequestFailed}
	}
	return reportFilename(resp.Header.Get("Content-Disposition")), nil
}

// reportFilename recovers the download name from Content-Disposition, with
// the date-stamped default as fallback.
func reportFilename(disposition string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return summary.ReportFilename(time.Now())
}
