package deleterequest

import "context"

type DeleteRequestService interface {
	// Create files a pending removal request for a member of the lead's
	// vertical.
	Create(ctx context.Context, req CreateDeleteRequest) (DeleteRequest, error)

	// List returns requests, optionally filtered by status.
	List(ctx context.Context, status *Status) ([]DeleteRequest, error)

	// Get fetches one request.
	Get(ctx context.Context, id string) (DeleteRequest, error)

	// Review approves or rejects a pending request. Approval soft-deletes
	// the member atomically with the status change.
	Review(ctx context.Context, req ReviewRequest) (DeleteRequest, error)
}
