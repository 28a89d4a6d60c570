package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, COALESCE(username, ''), COALESCE(roll_no, ''), name,
	COALESCE(department, ''), COALESCE(year, 0), COALESCE(vertical, ''),
	password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.RollNo, &u.Name,
		&u.Department, &u.Year, &u.Vertical,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1 AND role = $2`, userColumns)
	u, err := scanUser(q.QueryRow(ctx, query, username, user.RoleGlobalAdmin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// GetByRollNo implements user.UserRepository.
func (r *userRepository) GetByRollNo(ctx context.Context, rollNo string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE roll_no = $1 AND role = $2`, userColumns)
	u, err := scanUser(q.QueryRow(ctx, query, rollNo, user.RoleVerticalLead))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by roll number: %w", err)
	}
	return u, nil
}

// CreateVerticalLead implements user.UserRepository.
func (r *userRepository) CreateVerticalLead(ctx context.Context, lead user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (roll_no, name, department, year, vertical, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		lead.RollNo, lead.Name, lead.Department, lead.Year, lead.Vertical,
		lead.PasswordHash, user.RoleVerticalLead,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrRollNoExists
		}
		return user.User{}, fmt.Errorf("failed to create vertical lead: %w", err)
	}
	lead.Role = user.RoleVerticalLead
	return lead, nil
}

// ListVerticalLeads implements user.UserRepository.
func (r *userRepository) ListVerticalLeads(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE role = $1 ORDER BY vertical, name`, userColumns)
	rows, err := q.Query(ctx, query, user.RoleVerticalLead)
	if err != nil {
		return nil, fmt.Errorf("failed to list vertical leads: %w", err)
	}
	defer rows.Close()

	leads := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vertical lead: %w", err)
		}
		leads = append(leads, u)
	}
	return leads, rows.Err()
}

// UpdateVerticalLead implements user.UserRepository.
func (r *userRepository) UpdateVerticalLead(ctx context.Context, rollNo string, update user.VerticalLeadUpdate) (user.User, error) {
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
	if update.Vertical != nil {
		sets = append(sets, fmt.Sprintf("vertical = $%d", idx))
		args = append(args, *update.Vertical)
		idx++
	}
	if len(sets) == 0 {
		return r.GetByRollNo(ctx, rollNo)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE roll_no = $%d AND role = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), idx, idx+1, userColumns)
	args = append(args, rollNo, user.RoleVerticalLead)

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrVerticalLeadNotFound
		}
		return user.User{}, fmt.Errorf("failed to update vertical lead: %w", err)
	}
	return u, nil
}

// DeleteVerticalLead implements user.UserRepository.
func (r *userRepository) DeleteVerticalLead(ctx context.Context, rollNo string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE roll_no = $1 AND role = $2`, rollNo, user.RoleVerticalLead)
	if err != nil {
		return fmt.Errorf("failed to delete vertical lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrVerticalLeadNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
