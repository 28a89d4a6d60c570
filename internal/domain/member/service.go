package member

import (
	"context"
	"io"
)

type MemberService interface {
	// Add creates a member inside the request's vertical.
	Add(ctx context.Context, req AddMemberRequest) (Member, error)

	// List returns the active members of a vertical, or of every vertical
	// when vertical is empty.
	List(ctx context.Context, vertical string) ([]Member, error)

	// Get fetches one member. A non-empty vertical restricts the lookup to
	// that vertical.
	Get(ctx context.Context, rollNo string, vertical string) (Member, error)

	// Update applies a partial update within the caller's vertical scope.
	Update(ctx context.Context, req UpdateMemberRequest, vertical string) (Member, error)

	// Delete soft-deletes a member, recording who removed them. A non-empty
	// vertical restricts the operation to that vertical.
	Delete(ctx context.Context, rollNo string, vertical string, deletedBy string) error

	// ListDeleted returns the soft-delete audit trail.
	ListDeleted(ctx context.Context) ([]Member, error)

	// UploadXLSX bulk-imports members from a template-shaped workbook.
	UploadXLSX(ctx context.Context, vertical string, file io.Reader) (UploadResult, error)
}
