package attendance

import (
	"context"
	"io"

	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
)

type AttendanceService interface {
	// GetRoster returns a meeting plus its per-member attendance flags.
	// A non-empty vertical restricts access to meetings of that vertical.
	GetRoster(ctx context.Context, meetingID string, vertical string) (meeting.Meeting, []RosterEntry, error)

	// UpdateRoster bulk-writes presence flags for a meeting.
	UpdateRoster(ctx context.Context, req UpdateAttendanceRequest, vertical string) (UpdateAttendanceResult, error)

	// SummaryAll computes the cross-vertical attendance summary, ranked by
	// percentage descending.
	SummaryAll(ctx context.Context) ([]summary.Row, error)

	// WriteReport renders the CSV attendance report. A non-nil threshold
	// keeps only members ranking strictly below that percentage.
	WriteReport(ctx context.Context, w io.Writer, threshold *int) error
}
