package member

import "context"

type MemberRepository interface {
	// Create inserts a member.
	Create(ctx context.Context, m Member) (Member, error)

	// GetByRollNo retrieves an active (non-deleted) member.
	GetByRollNo(ctx context.Context, rollNo string) (Member, error)

	// ListByVertical returns active members of one vertical.
	ListByVertical(ctx context.Context, vertical string) ([]Member, error)

	// ListAll returns every active member across verticals.
	ListAll(ctx context.Context) ([]Member, error)

	// ListDeleted returns soft-deleted members, most recent first.
	ListDeleted(ctx context.Context) ([]Member, error)

	// Update applies non-nil fields and returns the updated member.
	Update(ctx context.Context, rollNo string, update MemberUpdate) (Member, error)

	// SoftDelete marks a member deleted and records who removed them.
	SoftDelete(ctx context.Context, rollNo string, deletedBy string) error
}

// MemberUpdate carries optional fields for a partial update.
type MemberUpdate struct {
	Name       *string
	Year       *int
	Department *string
}
