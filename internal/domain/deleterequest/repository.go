package deleterequest

import "context"

type DeleteRequestRepository interface {
	// Create inserts a pending request.
	Create(ctx context.Context, req DeleteRequest) (DeleteRequest, error)

	// GetByID retrieves a request.
	GetByID(ctx context.Context, id string) (DeleteRequest, error)

	// List returns requests, optionally filtered by status, newest first.
	List(ctx context.Context, status *Status) ([]DeleteRequest, error)

	// HasPending reports whether a pending request exists for the member.
	HasPending(ctx context.Context, rollNo string) (bool, error)

	// Review stamps the decision onto a pending request.
	Review(ctx context.Context, id string, status Status, reviewedBy string) (DeleteRequest, error)
}
