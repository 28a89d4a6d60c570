package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	rosters        map[string][]attendance.RosterEntry
	attendedCounts map[string]int
	modified       int64
	upserted       int64
	lastMarks      map[string]bool
}

func (r *fakeAttendanceRepo) GetRoster(ctx context.Context, meetingID string, vertical string) ([]attendance.RosterEntry, error) {
	return r.rosters[meetingID], nil
}

func (r *fakeAttendanceRepo) BulkUpsert(ctx context.Context, meetingID string, marks map[string]bool) (int64, int64, error) {
	r.lastMarks = marks
	return r.modified, r.upserted, nil
}

func (r *fakeAttendanceRepo) AttendedCounts(ctx context.Context, vertical string) (map[string]int, error) {
	return r.attendedCounts, nil
}

type fakeMeetingService struct {
	meetings map[string]meeting.Meeting
}

func (s *fakeMeetingService) Create(ctx context.Context, req meeting.CreateMeetingRequest) (meeting.Meeting, error) {
	panic("not used")
}

func (s *fakeMeetingService) List(ctx context.Context, vertical string) ([]meeting.Meeting, error) {
	panic("not used")
}

func (s *fakeMeetingService) Get(ctx context.Context, id string, vertical string) (meeting.Meeting, error) {
	mt, ok := s.meetings[id]
	if !ok {
		return meeting.Meeting{}, meeting.ErrMeetingNotFound
	}
	if vertical != "" && mt.Vertical != vertical {
		return meeting.Meeting{}, meeting.ErrMeetingNotFound
	}
	return mt, nil
}

func (s *fakeMeetingService) Update(ctx context.Context, req meeting.UpdateMeetingRequest, vertical string) (meeting.Meeting, error) {
	panic("not used")
}

func (s *fakeMeetingService) Delete(ctx context.Context, id string, vertical string) error {
	panic("not used")
}

type fakeMemberRepo struct {
	members []member.Member
}

func (r *fakeMemberRepo) Create(ctx context.Context, m member.Member) (member.Member, error) {
	panic("not used")
}

func (r *fakeMemberRepo) GetByRollNo(ctx context.Context, rollNo string) (member.Member, error) {
	panic("not used")
}

func (r *fakeMemberRepo) ListByVertical(ctx context.Context, vertical string) ([]member.Member, error) {
	panic("not used")
}

func (r *fakeMemberRepo) ListAll(ctx context.Context) ([]member.Member, error) {
	return r.members, nil
}

func (r *fakeMemberRepo) ListDeleted(ctx context.Context) ([]member.Member, error) {
	panic("not used")
}

func (r *fakeMemberRepo) Update(ctx context.Context, rollNo string, update member.MemberUpdate) (member.Member, error) {
	panic("not used")
}

func (r *fakeMemberRepo) SoftDelete(ctx context.Context, rollNo string, deletedBy string) error {
	panic("not used")
}

type fakeMeetingRepo struct {
	counts map[string]int
}

func (r *fakeMeetingRepo) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	panic("not used")
}

func (r *fakeMeetingRepo) GetByID(ctx context.Context, id string) (meeting.Meeting, error) {
	panic("not used")
}

func (r *fakeMeetingRepo) ListByVertical(ctx context.Context, vertical string) ([]meeting.Meeting, error) {
	panic("not used")
}

func (r *fakeMeetingRepo) Update(ctx context.Context, id string, update meeting.MeetingUpdate) (meeting.Meeting, error) {
	panic("not used")
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id string) error {
	panic("not used")
}

func (r *fakeMeetingRepo) CountsByVertical(ctx context.Context) (map[string]int, error) {
	return r.counts, nil
}

func testMember(rollNo, vertical string) member.Member {
	return member.Member{
		RollNo:     rollNo,
		Name:       "Member " + rollNo,
		Department: "CSE",
		Year:       2,
		Vertical:   vertical,
	}
}

func TestSummaryAll(t *testing.T) {
	svc := NewAttendanceService(
		&fakeAttendanceRepo{attendedCounts: map[string]int{"r1": 4, "r2": 1, "r3": 2}},
		&fakeMeetingService{},
		&fakeMemberRepo{members: []member.Member{
			testMember("r1", "Tech"),
			testMember("r2", "Tech"),
			testMember("r3", "Media"),
			testMember("r4", "Design"), // vertical with zero meetings
		}},
		&fakeMeetingRepo{counts: map[string]int{"Tech": 4, "Media": 4}},
	)

	rows, err := svc.SummaryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Ranked descending; the zero-meeting member is N/A and sorts as zero.
	assert.Equal(t, "r1", rows[0].RollNo)
	assert.Equal(t, "100.0", rows[0].Percentage.String())
	assert.Equal(t, "r3", rows[1].RollNo)
	assert.Equal(t, "50.0", rows[1].Percentage.String())
	assert.Equal(t, "r2", rows[2].RollNo)
	assert.Equal(t, "25.0", rows[2].Percentage.String())
	assert.Equal(t, "r4", rows[3].RollNo)
	assert.Equal(t, "N/A", rows[3].Percentage.String())
	assert.Equal(t, 0, rows[3].Total)
}

func TestUpdateRosterScopedToVertical(t *testing.T) {
	repo := &fakeAttendanceRepo{modified: 1, upserted: 2}
	svc := NewAttendanceService(
		repo,
		&fakeMeetingService{meetings: map[string]meeting.Meeting{
			"m1": {ID: "m1", Vertical: "Tech"},
		}},
		&fakeMemberRepo{},
		&fakeMeetingRepo{},
	)
	ctx := context.Background()

	result, err := svc.UpdateRoster(ctx, attendance.UpdateAttendanceRequest{
		MeetingID:        "m1",
		MemberAttendance: map[string]bool{"r1": true, "r2": false},
	}, "Tech")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Modified)
	assert.Equal(t, int64(2), result.Upserted)
	assert.Equal(t, map[string]bool{"r1": true, "r2": false}, repo.lastMarks)

	// Another vertical's lead cannot write this meeting's roster.
	_, err = svc.UpdateRoster(ctx, attendance.UpdateAttendanceRequest{
		MeetingID:        "m1",
		MemberAttendance: map[string]bool{"r1": true},
	}, "Media")
	assert.ErrorIs(t, err, meeting.ErrMeetingNotFound)

	// Empty marks are rejected before touching the store.
	_, err = svc.UpdateRoster(ctx, attendance.UpdateAttendanceRequest{MeetingID: "m1"}, "Tech")
	assert.Error(t, err)
}

func TestWriteReportThreshold(t *testing.T) {
	svc := NewAttendanceService(
		&fakeAttendanceRepo{attendedCounts: map[string]int{"hi": 4, "mid": 3, "lo": 1}},
		&fakeMeetingService{},
		&fakeMemberRepo{members: []member.Member{
			testMember("hi", "Tech"),  // 100%
			testMember("mid", "Tech"), // 75%
			testMember("lo", "Tech"),  // 25%
			testMember("na", "Design"),
		}},
		&fakeMeetingRepo{counts: map[string]int{"Tech": 4}},
	)
	ctx := context.Background()

	t.Run("strictly below cutoff, sentinel counted as zero", func(t *testing.T) {
		var buf bytes.Buffer
		threshold := 75
		require.NoError(t, svc.WriteReport(ctx, &buf, &threshold))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3) // header + lo + na

		assert.Equal(t, "lo", records[1][0])
		assert.Equal(t, "25.0", records[1][7])
		assert.Equal(t, "na", records[2][0])
		assert.Equal(t, "N/A", records[2][7])
	})

	t.Run("nil threshold exports everyone", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.WriteReport(ctx, &buf, nil))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})
}
