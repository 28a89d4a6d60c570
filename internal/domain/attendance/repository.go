package attendance

import "context"

type AttendanceRepository interface {
	// GetRoster returns every active member of the vertical joined with
	// their attendance flag for the meeting.
	GetRoster(ctx context.Context, meetingID string, vertical string) ([]RosterEntry, error)

	// BulkUpsert writes presence flags for a meeting. Returns how many
	// existing records changed and how many were newly inserted.
	BulkUpsert(ctx context.Context, meetingID string, marks map[string]bool) (modified int64, upserted int64, err error)

	// AttendedCounts returns roll_no -> number of meetings attended.
	// An empty vertical means all verticals. Members who never attended
	// are absent from the map.
	AttendedCounts(ctx context.Context, vertical string) (map[string]int, error)
}
