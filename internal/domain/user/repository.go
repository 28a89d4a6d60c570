package user

import "context"

type UserRepository interface {
	// GetByUsername looks up a global admin login identity.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByRollNo looks up a vertical lead login identity.
	GetByRollNo(ctx context.Context, rollNo string) (User, error)

	// CreateVerticalLead inserts a vertical lead identity.
	CreateVerticalLead(ctx context.Context, lead User) (User, error)

	// ListVerticalLeads returns every vertical lead.
	ListVerticalLeads(ctx context.Context) ([]User, error)

	// UpdateVerticalLead applies non-nil fields to the lead with the given
	// roll number and returns the updated row.
	UpdateVerticalLead(ctx context.Context, rollNo string, update VerticalLeadUpdate) (User, error)

	// DeleteVerticalLead removes a vertical lead identity.
	DeleteVerticalLead(ctx context.Context, rollNo string) error
}

// VerticalLeadUpdate carries optional fields for a partial update.
type VerticalLeadUpdate struct {
	Name       *string
	Year       *int
	Department *string
	Vertical   *string
}
