package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupanel/center-service/internal/domain"
)

// AttendanceRepository handles persistence for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *domain.Attendance) error
	Update(ctx context.Context, attendance *domain.Attendance) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, int, error)
}

// AttendanceFilter defines query params for attendance listing.
type AttendanceFilter struct {
	GroupID  *string
	MentorID *string
	Date     *time.Time
	Limit    int
	Offset   int
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

const attendanceColumns = `id, group_id, session_date, mentor_id, participants, created_at, updated_at`

func (r *attendanceRepository) Create(ctx context.Context, attendance *domain.Attendance) error {
	const query = `
        INSERT INTO attendances (group_id, session_date, mentor_id, participants)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		attendance.GroupID,
		attendance.Date,
		attendance.MentorID,
		attendance.Participants,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
}

func (r *attendanceRepository) Update(ctx context.Context, attendance *domain.Attendance) error {
	const query = `
        UPDATE attendances
        SET group_id=$1, session_date=$2, mentor_id=$3, participants=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		attendance.GroupID,
		attendance.Date,
		attendance.MentorID,
		attendance.Participants,
		attendance.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM attendances WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id=$1`
	return scanAttendance(r.pool.QueryRow(ctx, query, id))
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, int, error) {
	base := ` FROM attendances`
	args := []any{}
	clauses := []string{}

	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		clauses = append(clauses, fmt.Sprintf("group_id=$%d", len(args)))
	}
	if filter.MentorID != nil {
		args = append(args, *filter.MentorID)
		clauses = append(clauses, fmt.Sprintf("mentor_id=$%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		clauses = append(clauses, fmt.Sprintf("session_date=$%d", len(args)))
	}
	if len(clauses) > 0 {
		base += " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+base, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + attendanceColumns + base + " ORDER BY session_date DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Attendance
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *attendance)
	}
	return result, total, rows.Err()
}

func scanAttendance(row pgx.Row) (*domain.Attendance, error) {
	var attendance domain.Attendance
	if err := row.Scan(
		&attendance.ID,
		&attendance.GroupID,
		&attendance.Date,
		&attendance.MentorID,
		&attendance.Participants,
		&attendance.CreatedAt,
		&attendance.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &attendance, nil
}
