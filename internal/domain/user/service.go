package user

import "context"

type VerticalLeadService interface {
	// Create provisions a vertical lead login. The initial password is the
	// roll number; leads are told to change it after first login.
	Create(ctx context.Context, req CreateVerticalLeadRequest) (VerticalLeadResponse, error)

	// List returns every vertical lead.
	List(ctx context.Context) ([]VerticalLeadResponse, error)

	// Get fetches one lead by roll number.
	Get(ctx context.Context, rollNo string) (VerticalLeadResponse, error)

	// Update applies a partial update.
	Update(ctx context.Context, req UpdateVerticalLeadRequest) (VerticalLeadResponse, error)

	// Delete removes a lead's login identity.
	Delete(ctx context.Context, rollNo string) error
}
