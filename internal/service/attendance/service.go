package attendance

import (
	"context"
	"fmt"
	"io"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	meetingService meeting.MeetingService
	memberRepo     member.MemberRepository
	meetingRepo    meeting.MeetingRepository
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	meetingService meeting.MeetingService,
	memberRepository member.MemberRepository,
	meetingRepository meeting.MeetingRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		meetingService:       meetingService,
		memberRepo:           memberRepository,
		meetingRepo:          meetingRepository,
	}
}

// GetRoster implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRoster(ctx context.Context, meetingID string, vertical string) (meeting.Meeting, []attendance.RosterEntry, error) {
	mt, err := s.meetingService.Get(ctx, meetingID, vertical)
	if err != nil {
		return meeting.Meeting{}, nil, err
	}

	roster, err := s.AttendanceRepository.GetRoster(ctx, mt.ID, mt.Vertical)
	if err != nil {
		return meeting.Meeting{}, nil, err
	}
	return mt, roster, nil
}

// UpdateRoster implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRoster(ctx context.Context, req attendance.UpdateAttendanceRequest, vertical string) (attendance.UpdateAttendanceResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.UpdateAttendanceResult{}, err
	}
	if _, err := s.meetingService.Get(ctx, req.MeetingID, vertical); err != nil {
		return attendance.UpdateAttendanceResult{}, err
	}

	modified, upserted, err := s.AttendanceRepository.BulkUpsert(ctx, req.MeetingID, req.MemberAttendance)
	if err != nil {
		return attendance.UpdateAttendanceResult{}, err
	}
	return attendance.UpdateAttendanceResult{
		Message:  "Attendance updated successfully",
		Modified: modified,
		Upserted: upserted,
	}, nil
}

// SummaryAll implements attendance.AttendanceService. Rows are recomputed
// from scratch on every call; with tens to low hundreds of members that is
// cheaper than any cache worth maintaining.
func (s *AttendanceServiceImpl) SummaryAll(ctx context.Context) ([]summary.Row, error) {
	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	meetingCounts, err := s.meetingRepo.CountsByVertical(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting counts: %w", err)
	}
	attendedCounts, err := s.AttendanceRepository.AttendedCounts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance counts: %w", err)
	}

	rows := make([]summary.Row, 0, len(members))
	for _, m := range members {
		total := meetingCounts[m.Vertical]
		attended := attendedCounts[m.RollNo]
		rows = append(rows, summary.Row{
			RollNo:     m.RollNo,
			Name:       m.Name,
			Vertical:   m.Vertical,
			Department: m.Department,
			Year:       m.Year,
			Attended:   attended,
			Total:      total,
			Percentage: summary.ComputePercentage(attended, total),
		})
	}

	return summary.Rank(rows, summary.Desc), nil
}

// WriteReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WriteReport(ctx context.Context, w io.Writer, threshold *int) error {
	rows, err := s.SummaryAll(ctx)
	if err != nil {
		return err
	}

	if threshold != nil {
		// Defaulters report: keep members strictly below the threshold.
		// The not-applicable sentinel ranks as zero, so zero-meeting
		// members are listed too.
		filtered := make([]summary.Row, 0, len(rows))
		for _, row := range rows {
			value, numeric := row.Percentage.Value()
			if !numeric {
				value = 0
			}
			if value < float64(*threshold) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	return summary.WriteCSV(w, rows)
}
