package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupanel/center-service/internal/domain"
)

// InvoiceRepository handles persistence for invoices.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, int, error)
}

// InvoiceFilter defines query params for invoice listing.
type InvoiceFilter struct {
	Status    *domain.InvoiceStatus
	StudentID *string
	GroupID   *string
	Search    string
	Ordering  string
	Limit     int
	Offset    int
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates the repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

const invoiceColumns = `id, student_id, group_id, amount, status, payment_time, notes, created_at, updated_at`

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1`
	return scanInvoice(r.pool.QueryRow(ctx, query, id))
}

// orderingColumns whitelists sortable columns; a leading '-' means
// descending, mirroring the query parameter convention.
var orderingColumns = map[string]string{
	"payment_time": "payment_time",
	"amount":       "amount",
	"created_at":   "created_at",
}

func orderClause(ordering string) string {
	direction := "ASC"
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		ordering = ordering[1:]
	}
	column, ok := orderingColumns[ordering]
	if !ok {
		return " ORDER BY created_at DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s NULLS LAST", column, direction)
}

func (r *invoiceRepository) List(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, int, error) {
	base := ` FROM invoices`
	args := []any{}
	clauses := []string{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		clauses = append(clauses, fmt.Sprintf("student_id=$%d", len(args)))
	}
	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		clauses = append(clauses, fmt.Sprintf("group_id=$%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf(
			"student_id IN (SELECT id FROM students WHERE full_name ILIKE $%d OR email ILIKE $%d)",
			len(args), len(args)))
	}
	if len(clauses) > 0 {
		base += " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+base, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + invoiceColumns + base + orderClause(filter.Ordering)
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

	var result []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *invoice)
	}
	return result, total, rows.Err()
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := row.Scan(
		&invoice.ID,
		&invoice.StudentID,
		&invoice.GroupID,
		&invoice.Amount,
		&invoice.Status,
		&invoice.PaymentTime,
		&invoice.Notes,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &invoice, nil
}
