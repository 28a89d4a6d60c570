package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type meetingRepository struct {
	db *database.DB
}

func NewMeetingRepository(db *database.DB) meeting.MeetingRepository {
	return &meetingRepository{db: db}
}

const meetingColumns = `id, meeting_name, date, COALESCE(m_o_m, ''), vertical, created_by, created_at, updated_at`

func scanMeeting(row pgx.Row) (meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID, &m.MeetingName, &m.Date, &m.MOM, &m.Vertical,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// Create implements meeting.MeetingRepository.
func (r *meetingRepository) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meetings (id, meeting_name, date, m_o_m, vertical, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, m.ID, m.MeetingName, m.Date, m.MOM, m.Vertical, m.CreatedBy).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to create meeting: %w", err)
	}
	return m, nil
}

// GetByID implements meeting.MeetingRepository.
func (r *meetingRepository) GetByID(ctx context.Context, id string) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM meetings WHERE id = $1`, meetingColumns)
	m, err := scanMeeting(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.Meeting{}, meeting.ErrMeetingNotFound
		}
		return meeting.Meeting{}, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// ListByVertical implements meeting.MeetingRepository.
func (r *meetingRepository) ListByVertical(ctx context.Context, vertical string) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM meetings
		WHERE vertical = $1
		ORDER BY date DESC, created_at DESC
	`, meetingColumns)
	rows, err := q.Query(ctx, query, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := []meeting.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Update implements meeting.MeetingRepository.
func (r *meetingRepository) Update(ctx context.Context, id string, update meeting.MeetingUpdate) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	idx := 1
	if update.MeetingName != nil {
		sets = append(sets, fmt.Sprintf("meeting_name = $%d", idx))
		args = append(args, *update.MeetingName)
		idx++
	}
	if update.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", idx))
		args = append(args, *update.Date)
		idx++
	}
	if update.MOM != nil {
		sets = append(sets, fmt.Sprintf("m_o_m = $%d", idx))
		args = append(args, *update.MOM)
		idx++
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE meetings SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), idx, meetingColumns)
	args = append(args, id)

	m, err := scanMeeting(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.Meeting{}, meeting.ErrMeetingNotFound
		}
		return meeting.Meeting{}, fmt.Errorf("failed to update meeting: %w", err)
	}
	return m, nil
}

// Delete implements meeting.MeetingRepository.
func (r *meetingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// attendance rows cascade via the meeting_id foreign key
	tag, err := q.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}

// CountsByVertical implements meeting.MeetingRepository.
func (r *meetingRepository) CountsByVertical(ctx context.Context) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT vertical, COUNT(*) FROM meetings GROUP BY vertical`)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings by vertical: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var vertical string
		var count int
		if err := rows.Scan(&vertical, &count); err != nil {
			return nil, fmt.Errorf("failed to scan meeting count: %w", err)
		}
		counts[vertical] = count
	}
	return counts, rows.Err()
}
