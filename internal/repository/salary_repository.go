package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupanel/center-service/internal/domain"
)

// SalaryRepository handles the manually recorded salary table and mentor
// payment markers for monthly reports.
type SalaryRepository interface {
	UpsertSalary(ctx context.Context, salary *domain.EmployeeSalary) error
	SetSalaryPaid(ctx context.Context, employeeID, month string, paid bool, paymentDate *time.Time) error
	ListSalaries(ctx context.Context, month string) ([]domain.EmployeeSalary, error)
	UpsertMentorPayment(ctx context.Context, payment *domain.MentorPaymentStatus) error
	ListMentorPayments(ctx context.Context, month string) ([]domain.MentorPaymentStatus, error)
}

type salaryRepository struct {
	pool *pgxpool.Pool
}

// NewSalaryRepository instantiates the repository.
func NewSalaryRepository(pool *pgxpool.Pool) SalaryRepository {
	return &salaryRepository{pool: pool}
}

func (r *salaryRepository) UpsertSalary(ctx context.Context, salary *domain.EmployeeSalary) error {
	const query = `
        INSERT INTO employee_salaries (employee_id, month, amount, paid_flag, payment_date)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (employee_id, month)
        DO UPDATE SET amount=EXCLUDED.amount, updated_at=NOW()
        RETURNING id, paid_flag, payment_date, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		salary.EmployeeID,
		salary.Month,
		salary.Amount,
		salary.Paid,
		salary.PaymentDate,
	).Scan(&salary.ID, &salary.Paid, &salary.PaymentDate, &salary.CreatedAt, &salary.UpdatedAt)
}

func (r *salaryRepository) SetSalaryPaid(ctx context.Context, employeeID, month string, paid bool, paymentDate *time.Time) error {
	const query = `
        UPDATE employee_salaries
        SET paid_flag=$1, payment_date=$2, updated_at=NOW()
        WHERE employee_id=$3 AND month=$4`

	cmd, err := r.pool.Exec(ctx, query, paid, paymentDate, employeeID, month)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *salaryRepository) ListSalaries(ctx context.Context, month string) ([]domain.EmployeeSalary, error) {
	const query = `
        SELECT id, employee_id, month, amount, paid_flag, payment_date, created_at, updated_at
        FROM employee_salaries WHERE month=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeSalary
	for rows.Next() {
		var salary domain.EmployeeSalary
		if err := rows.Scan(
			&salary.ID,
			&salary.EmployeeID,
			&salary.Month,
			&salary.Amount,
			&salary.Paid,
			&salary.PaymentDate,
			&salary.CreatedAt,
			&salary.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, salary)
	}
	return result, rows.Err()
}

func (r *salaryRepository) UpsertMentorPayment(ctx context.Context, payment *domain.MentorPaymentStatus) error {
	const query = `
        INSERT INTO mentor_payments (mentor_id, month, amount, paid_flag, payment_date)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (mentor_id, month)
        DO UPDATE SET amount=EXCLUDED.amount, paid_flag=EXCLUDED.paid_flag, payment_date=EXCLUDED.payment_date, updated_at=NOW()
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		payment.MentorID,
		payment.Month,
		payment.Amount,
		payment.Paid,
		payment.PaymentDate,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *salaryRepository) ListMentorPayments(ctx context.Context, month string) ([]domain.MentorPaymentStatus, error) {
	const query = `
        SELECT id, mentor_id, month, amount, paid_flag, payment_date, created_at, updated_at
        FROM mentor_payments WHERE month=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MentorPaymentStatus
	for rows.Next() {
		var payment domain.MentorPaymentStatus
		if err := rows.Scan(
			&payment.ID,
			&payment.MentorID,
			&payment.Month,
			&payment.Amount,
			&payment.Paid,
			&payment.PaymentDate,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
