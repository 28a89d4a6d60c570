package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetRoster implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetRoster(ctx context.Context, meetingID string, vertical string) ([]attendance.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.roll_no, m.name, m.department, m.year, m.vertical, a.is_attended
		FROM members m
		LEFT JOIN attendance a ON a.roll_no = m.roll_no AND a.meeting_id = $1
		WHERE m.vertical = $2 AND m.deleted_at IS NULL
		ORDER BY m.name
	`
	rows, err := q.Query(ctx, query, meetingID, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer rows.Close()

	roster := []attendance.RosterEntry{}
	for rows.Next() {
		var entry attendance.RosterEntry
		if err := rows.Scan(&entry.RollNo, &entry.Name, &entry.Department, &entry.Year, &entry.Vertical, &entry.IsAttended); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, entry)
	}
	return roster, rows.Err()
}

// BulkUpsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) BulkUpsert(ctx context.Context, meetingID string, marks map[string]bool) (modified int64, upserted int64, err error) {
	q := GetQuerier(ctx, r.db)

	// One statement per mark keeps the xmax trick readable; roster sizes are
	// tens of rows, not thousands.
	query := `
		INSERT INTO attendance (meeting_id, roll_no, is_attended)
		VALUES ($1, $2, $3)
		ON CONFLICT (meeting_id, roll_no)
		DO UPDATE SET is_attended = EXCLUDED.is_attended, updated_at = NOW()
		RETURNING (xmax <> 0) AS was_update
	`
	for rollNo, isAttended := range marks {
		var wasUpdate bool
		if err := q.QueryRow(ctx, query, meetingID, rollNo, isAttended).Scan(&wasUpdate); err != nil {
			return 0, 0, fmt.Errorf("failed to upsert attendance for %s: %w", rollNo, err)
		}
		if wasUpdate {
			modified++
		} else {
			upserted++
		}
	}
	return modified, upserted, nil
}

// AttendedCounts implements attendance.AttendanceRepository.
func (r *attendanceRepository) AttendedCounts(ctx context.Context, vertical string) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.roll_no, COUNT(*)
		FROM attendance a
		JOIN meetings mt ON mt.id = a.meeting_id
		WHERE a.is_attended = TRUE AND ($1 = '' OR mt.vertical = $1)
		GROUP BY a.roll_no
	`
	rows, err := q.Query(ctx, query, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var rollNo string
		var count int
		if err := rows.Scan(&rollNo, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[rollNo] = count
	}
	return counts, rows.Err()
}
