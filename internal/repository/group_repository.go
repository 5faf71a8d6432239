package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupanel/center-service/internal/domain"
)

// GroupRepository handles persistence for class groups.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	Update(ctx context.Context, group *domain.Group) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context, filter GroupFilter) ([]domain.Group, error)
}

// GroupFilter defines query params for group listing.
type GroupFilter struct {
	MentorID *string
	Active   *bool
}

type groupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository instantiates the repository.
func NewGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &groupRepository{pool: pool}
}

const groupColumns = `id, specialty, schedule_days, time_of_day, start_date, seats, price, mentor_id, active_flag, created_at, updated_at`

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	const query = `
        INSERT INTO groups (specialty, schedule_days, time_of_day, start_date, seats, price, mentor_id, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		group.Specialty,
		group.ScheduleDays,
		group.TimeOfDay,
		group.StartDate,
		group.Seats,
		group.Price,
		group.MentorID,
		group.Active,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
}

func (r *groupRepository) Update(ctx context.Context, group *domain.Group) error {
	const query = `
        UPDATE groups
        SET specialty=$1, schedule_days=$2, time_of_day=$3, start_date=$4, seats=$5, price=$6, mentor_id=$7, active_flag=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		group.Specialty,
		group.ScheduleDays,
		group.TimeOfDay,
		group.StartDate,
		group.Seats,
		group.Price,
		group.MentorID,
		group.Active,
		group.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id=$1`
	return scanGroup(r.pool.QueryRow(ctx, query, id))
}

func (r *groupRepository) List(ctx context.Context, filter GroupFilter) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups`
	args := []any{}
	clauses := []string{}

	if filter.MentorID != nil {
		args = append(args, *filter.MentorID)
		clauses = append(clauses, fmt.Sprintf("mentor_id=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active_flag=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *group)
	}
	return result, rows.Err()
}

func scanGroup(row pgx.Row) (*domain.Group, error) {
	var group domain.Group
	if err := row.Scan(
		&group.ID,
		&group.Specialty,
		&group.ScheduleDays,
		&group.TimeOfDay,
		&group.StartDate,
		&group.Seats,
		&group.Price,
		&group.MentorID,
		&group.Active,
		&group.CreatedAt,
		&group.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &group, nil
}
