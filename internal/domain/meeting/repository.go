package meeting

import "context"

type MeetingRepository interface {
	// Create inserts a meeting.
	Create(ctx context.Context, m Meeting) (Meeting, error)

	// GetByID retrieves a meeting.
	GetByID(ctx context.Context, id string) (Meeting, error)

	// ListByVertical returns meetings of one vertical, newest date first.
	ListByVertical(ctx context.Context, vertical string) ([]Meeting, error)

	// Update applies non-nil fields and returns the updated meeting.
	Update(ctx context.Context, id string, update MeetingUpdate) (Meeting, error)

	// Delete removes a meeting and its attendance records.
	Delete(ctx context.Context, id string) error

	// CountsByVertical returns the number of meetings held in each vertical.
	// Verticals with no meetings are absent from the map.
	CountsByVertical(ctx context.Context) (map[string]int, error)
}

// MeetingUpdate carries optional fields for a partial update.
type MeetingUpdate struct {
	MeetingName *string
	Date        *string
	MOM         *string
}
