package deleterequest

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/deleterequest"
	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DeleteRequestServiceImpl struct {
	db *database.DB
	deleterequest.DeleteRequestRepository
	memberService member.MemberService
}

func NewDeleteRequestService(
	db *database.DB,
	deleteRequestRepository deleterequest.DeleteRequestRepository,
	memberService member.MemberService,
) deleterequest.DeleteRequestService {
	return &DeleteRequestServiceImpl{
		db:                      db,
		DeleteRequestRepository: deleteRequestRepository,
		memberService:           memberService,
	}
}

// Create implements deleterequest.DeleteRequestService.
func (s *DeleteRequestServiceImpl) Create(ctx context.Context, req deleterequest.CreateDeleteRequest) (deleterequest.DeleteRequest, error) {
	if err := req.Validate(); err != nil {
		return deleterequest.DeleteRequest{}, err
	}

	// The member must exist inside the requesting lead's vertical.
	target, err := s.memberService.Get(ctx, req.RollNo, req.Vertical)
	if err != nil {
		return deleterequest.DeleteRequest{}, err
	}

	pending, err := s.DeleteRequestRepository.HasPending(ctx, req.RollNo)
	if err != nil {
		return deleterequest.DeleteRequest{}, err
	}
	if pending {
		return deleterequest.DeleteRequest{}, deleterequest.ErrDuplicatePending
	}

	return s.DeleteRequestRepository.Create(ctx, deleterequest.DeleteRequest{
		ID:          uuid.NewString(),
		RollNo:      target.RollNo,
		MemberName:  target.Name,
		Vertical:    target.Vertical,
		Reason:      req.Reason,
		Status:      deleterequest.StatusPending,
		RequestedBy: req.RequestedBy,
	})
}

// List implements deleterequest.DeleteRequestService.
func (s *DeleteRequestServiceImpl) List(ctx context.Context, status *deleterequest.Status) ([]deleterequest.DeleteRequest, error) {
	return s.DeleteRequestRepository.List(ctx, status)
}

// Get implements deleterequest.DeleteRequestService.
func (s *DeleteRequestServiceImpl) Get(ctx context.Context, id string) (deleterequest.DeleteRequest, error) {
	return s.DeleteRequestRepository.GetByID(ctx, id)
}

// Review implements deleterequest.DeleteRequestService.
func (s *DeleteRequestServiceImpl) Review(ctx context.Context, req deleterequest.ReviewRequest) (deleterequest.DeleteRequest, error) {
	if err := req.Validate(); err != nil {
		return deleterequest.DeleteRequest{}, err
	}

	if _, err := s.DeleteRequestRepository.GetByID(ctx, req.ID); err != nil {
		return deleterequest.DeleteRequest{}, err
	}

	status := deleterequest.StatusRejected
	if req.Action == "approve" {
		status = deleterequest.StatusApproved
	}

	var reviewed deleterequest.DeleteRequest
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		reviewed, err = s.DeleteRequestRepository.Review(txCtx, req.ID, status, req.ReviewedBy)
		if err != nil {
			return err
		}
		if status == deleterequest.StatusApproved {
			// The removal belongs to the same transaction as the decision:
			// an approved request without the soft delete would strand the
			// audit trail.
			if err := s.memberService.Delete(txCtx, reviewed.RollNo, "", req.ReviewedBy); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return deleterequest.DeleteRequest{}, err
	}
	return reviewed, nil
}
