package meeting

import "context"

type MeetingService interface {
	// Create records a meeting in the request's vertical.
	Create(ctx context.Context, req CreateMeetingRequest) (Meeting, error)

	// List returns the meetings of a vertical, newest first.
	List(ctx context.Context, vertical string) ([]Meeting, error)

	// Get fetches one meeting. A non-empty vertical restricts the lookup.
	Get(ctx context.Context, id string, vertical string) (Meeting, error)

	// Update applies a partial update within the caller's vertical scope.
	Update(ctx context.Context, req UpdateMeetingRequest, vertical string) (Meeting, error)

	// Delete removes a meeting and its attendance records.
	Delete(ctx context.Context, id string, vertical string) error
}
