package meeting

import (
	"context"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/google/uuid"
)

type MeetingServiceImpl struct {
	meeting.MeetingRepository
}

func NewMeetingService(meetingRepository meeting.MeetingRepository) meeting.MeetingService {
	return &MeetingServiceImpl{MeetingRepository: meetingRepository}
}

// Create implements meeting.MeetingService.
func (s *MeetingServiceImpl) Create(ctx context.Context, req meeting.CreateMeetingRequest) (meeting.Meeting, error) {
	if err := req.Validate(); err != nil {
		return meeting.Meeting{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	return s.MeetingRepository.Create(ctx, meeting.Meeting{
		ID:          uuid.NewString(),
		MeetingName: req.MeetingName,
		Date:        date,
		MOM:         req.MOM,
		Vertical:    req.Vertical,
		CreatedBy:   req.CreatedBy,
	})
}

// List implements meeting.MeetingService.
func (s *MeetingServiceImpl) List(ctx context.Context, vertical string) ([]meeting.Meeting, error) {
	return s.MeetingRepository.ListByVertical(ctx, vertical)
}

// Get implements meeting.MeetingService.
func (s *MeetingServiceImpl) Get(ctx context.Context, id string, vertical string) (meeting.Meeting, error) {
	m, err := s.MeetingRepository.GetByID(ctx, id)
	if err != nil {
		return meeting.Meeting{}, err
	}
	if vertical != "" && m.Vertical != vertical {
		return meeting.Meeting{}, meeting.ErrMeetingNotFound
	}
	return m, nil
}

// Update implements meeting.MeetingService.
func (s *MeetingServiceImpl) Update(ctx context.Context, req meeting.UpdateMeetingRequest, vertical string) (meeting.Meeting, error) {
	if err := req.Validate(); err != nil {
		return meeting.Meeting{}, err
	}
	if _, err := s.Get(ctx, req.ID, vertical); err != nil {
		return meeting.Meeting{}, err
	}

	return s.MeetingRepository.Update(ctx, req.ID, meeting.MeetingUpdate{
		MeetingName: req.MeetingName,
		Date:        req.Date,
		MOM:         req.MOM,
	})
}

// Delete implements meeting.MeetingService.
func (s *MeetingServiceImpl) Delete(ctx context.Context, id string, vertical string) error {
	if _, err := s.Get(ctx, id, vertical); err != nil {
		return err
	}
	return s.MeetingRepository.Delete(ctx, id)
}
