package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/deleterequest"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deleteRequestRepository struct {
	db *database.DB
}

func NewDeleteRequestRepository(db *database.DB) deleterequest.DeleteRequestRepository {
	return &deleteRequestRepository{db: db}
}

const deleteRequestColumns = `id, roll_no, member_name, vertical, COALESCE(reason, ''), status, requested_by, reviewed_by, reviewed_at, created_at`

func scanDeleteRequest(row pgx.Row) (deleterequest.DeleteRequest, error) {
	var dr deleterequest.DeleteRequest
	err := row.Scan(
		&dr.ID, &dr.RollNo, &dr.MemberName, &dr.Vertical, &dr.Reason,
		&dr.Status, &dr.RequestedBy, &dr.ReviewedBy, &dr.ReviewedAt, &dr.CreatedAt,
	)
	return dr, err
}

// Create implements deleterequest.DeleteRequestRepository.
func (r *deleteRequestRepository) Create(ctx context.Context, req deleterequest.DeleteRequest) (deleterequest.DeleteRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO delete_requests (id, roll_no, member_name, vertical, reason, status, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.RollNo, req.MemberName, req.Vertical, req.Reason, req.Status, req.RequestedBy,
	).Scan(&req.CreatedAt)
	if err != nil {
		return deleterequest.DeleteRequest{}, fmt.Errorf("failed to create delete request: %w", err)
	}
	return req, nil
}

// GetByID implements deleterequest.DeleteRequestRepository.
func (r *deleteRequestRepository) GetByID(ctx context.Context, id string) (deleterequest.DeleteRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM delete_requests WHERE id = $1`, deleteRequestColumns)
	dr, err := scanDeleteRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deleterequest.DeleteRequest{}, deleterequest.ErrRequestNotFound
		}
		return deleterequest.DeleteRequest{}, fmt.Errorf("failed to get delete request: %w", err)
	}
	return dr, nil
}

// List implements deleterequest.DeleteRequestRepository.
func (r *deleteRequestRepository) List(ctx context.Context, status *deleterequest.Status) ([]deleterequest.DeleteRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM delete_requests
		WHERE $1::text IS NULL OR status = $1
		ORDER BY created_at DESC
	`, deleteRequestColumns)

	var statusArg interface{}
	if status != nil {
		statusArg = string(*status)
	}
	rows, err := q.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list delete requests: %w", err)
	}
	defer rows.Close()

	requests := []deleterequest.DeleteRequest{}
	for rows.Next() {
		dr, err := scanDeleteRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delete request: %w", err)
		}
		requests = append(requests, dr)
	}
	return requests, rows.Err()
}

// HasPending implements deleterequest.DeleteRequestRepository.
func (r *deleteRequestRepository) HasPending(ctx context.Context, rollNo string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM delete_requests WHERE roll_no = $1 AND status = $2)
	`, rollNo, deleterequest.StatusPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending delete request: %w", err)
	}
	return exists, nil
}

// Review implements deleterequest.DeleteRequestRepository.
func (r *deleteRequestRepository) Review(ctx context.Context, id string, status deleterequest.Status, reviewedBy string) (deleterequest.DeleteRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE delete_requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING %s
	`, deleteRequestColumns)

	dr, err := scanDeleteRequest(q.QueryRow(ctx, query, id, status, reviewedBy, deleterequest.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deleterequest.DeleteRequest{}, deleterequest.ErrAlreadyReviewed
		}
		return deleterequest.DeleteRequest{}, fmt.Errorf("failed to review delete request: %w", err)
	}
	return dr, nil
}
