package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type memberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `roll_no, name, department, year, vertical, deleted_at, deleted_by, created_at, updated_at`

func scanMember(row pgx.Row) (member.Member, error) {
	var m member.Member
	err := row.Scan(
		&m.RollNo, &m.Name, &m.Department, &m.Year, &m.Vertical,
		&m.DeletedAt, &m.DeletedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// Create implements member.MemberRepository.
func (r *memberRepository) Create(ctx context.Context, m member.Member) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO members (roll_no, name, department, year, vertical)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, m.RollNo, m.Name, m.Department, m.Year, m.Vertical).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return member.Member{}, member.ErrRollNoExists
		}
		return member.Member{}, fmt.Errorf("failed to create member: %w", err)
	}
	return m, nil
}

// GetByRollNo implements member.MemberRepository.
func (r *memberRepository) GetByRollNo(ctx context.Context, rollNo string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM members WHERE roll_no = $1 AND deleted_at IS NULL`, memberColumns)
	m, err := scanMember(q.QueryRow(ctx, query, rollNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// ListByVertical implements member.MemberRepository.
func (r *memberRepository) ListByVertical(ctx context.Context, vertical string) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM members
		WHERE vertical = $1 AND deleted_at IS NULL
		ORDER BY name
	`, memberColumns)
	rows, err := q.Query(ctx, query, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// ListAll implements member.MemberRepository.
func (r *memberRepository) ListAll(ctx context.Context) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM members
		WHERE deleted_at IS NULL
		ORDER BY vertical, name
	`, memberColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// ListDeleted implements member.MemberRepository.
func (r *memberRepository) ListDeleted(ctx context.Context) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM members
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
	`, memberColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

// Update implements member.MemberRepository.
func (r *memberRepository) Update(ctx context.Context, rollNo string, update member.MemberUpdate) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	idx := 1
	if update.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *update.Name)
		idx++
	}
	if update.Year != nil {
		sets = append(sets, fmt.Sprintf("year = $%d", idx))
		args = append(args, *update.Year)
		idx++
	}
	if update.Department != nil {
		sets = append(sets, fmt.Sprintf("department = $%d", idx))
		args = append(args, *update.Department)
		idx++
	}
	if len(sets) == 0 {
		return r.GetByRollNo(ctx, rollNo)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE members SET %s
		WHERE roll_no = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(sets, ", "), idx, memberColumns)
	args = append(args, rollNo)

	m, err := scanMember(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to update member: %w", err)
	}
	return m, nil
}

// SoftDelete implements member.MemberRepository.
func (r *memberRepository) SoftDelete(ctx context.Context, rollNo string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE members SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE roll_no = $1 AND deleted_at IS NULL
	`, rollNo, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to soft delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func collectMembers(rows pgx.Rows) ([]member.Member, error) {
	members := []member.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
