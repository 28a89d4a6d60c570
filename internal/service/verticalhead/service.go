package verticalhead

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type VerticalLeadServiceImpl struct {
	user.UserRepository
}

func NewVerticalLeadService(userRepository user.UserRepository) user.VerticalLeadService {
	return &VerticalLeadServiceImpl{UserRepository: userRepository}
}

// Create implements user.VerticalLeadService.
func (s *VerticalLeadServiceImpl) Create(ctx context.Context, req user.CreateVerticalLeadRequest) (user.VerticalLeadResponse, error) {
	if err := req.Validate(); err != nil {
		return user.VerticalLeadResponse{}, err
	}

	// Initial credential is the roll number itself.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.RollNo), bcrypt.DefaultCost)
	if err != nil {
		return user.VerticalLeadResponse{}, fmt.Errorf("failed to hash initial password: %w", err)
	}

	created, err := s.UserRepository.CreateVerticalLead(ctx, user.User{
		RollNo:       req.RollNo,
		Name:         req.Name,
		Department:   req.Department,
		Year:         req.Year,
		Vertical:     req.Vertical,
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.VerticalLeadResponse{}, err
	}
	return user.ToVerticalLeadResponse(created), nil
}

// List implements user.VerticalLeadService.
func (s *VerticalLeadServiceImpl) List(ctx context.Context) ([]user.VerticalLeadResponse, error) {
	leads, err := s.UserRepository.ListVerticalLeads(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]user.VerticalLeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, user.ToVerticalLeadResponse(lead))
	}
	return responses, nil
}

// Get implements user.VerticalLeadService.
func (s *VerticalLeadServiceImpl) Get(ctx context.Context, rollNo string) (user.VerticalLeadResponse, error) {
	lead, err := s.UserRepository.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.VerticalLeadResponse{}, user.ErrVerticalLeadNotFound
		}
		return user.VerticalLeadResponse{}, err
	}
	return user.ToVerticalLeadResponse(lead), nil
}

// Update implements user.VerticalLeadService.
func (s *VerticalLeadServiceImpl) Update(ctx context.Context, req user.UpdateVerticalLeadRequest) (user.VerticalLeadResponse, error) {
	if err := req.Validate(); err != nil {
		return user.VerticalLeadResponse{}, err
	}

	updated, err := s.UserRepository.UpdateVerticalLead(ctx, req.RollNo, user.VerticalLeadUpdate{
		Name:       req.Name,
		Year:       req.Year,
		Department: req.Department,
		Vertical:   req.Vertical,
	})
	if err != nil {
		return user.VerticalLeadResponse{}, err
	}
	return user.ToVerticalLeadResponse(updated), nil
}

// Delete implements user.VerticalLeadService.
func (s *VerticalLeadServiceImpl) Delete(ctx context.Context, rollNo string) error {
	return s.UserRepository.DeleteVerticalLead(ctx, rollNo)
}
