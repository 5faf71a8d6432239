package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
)

type fakeEmployeeRepo struct {
	byID    map[string]*domain.Employee
	nextID  int
	updated []domain.Employee
}

func newFakeEmployeeRepo(seed ...*domain.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{byID: make(map[string]*domain.Employee)}
	for _, emp := range seed {
		clone := *emp
		repo.byID[emp.ID] = &clone
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.nextID++
	employee.ID = fmt.Sprintf("emp-%d", r.nextID)
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := r.byID[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *employee
	r.byID[employee.ID] = &clone
	r.updated = append(r.updated, clone)
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	emp, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *emp
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, emp := range r.byID {
		if strings.EqualFold(emp.Email, email) {
			clone := *emp
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, emp := range r.byID {
		if filter.Role != nil && emp.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && emp.Active != *filter.Active {
			continue
		}
		out = append(out, *emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	// Mirror the SQL repository: a LIMIT is always applied.
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices []domain.Invoice
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			clone := r.invoices[i]
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeInvoiceRepo) List(_ context.Context, filter repository.InvoiceFilter) ([]domain.Invoice, int, error) {
	var matched []domain.Invoice
	for _, inv := range r.invoices {
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		matched = append(matched, inv)
	}
	total := len(matched)
	if filter.Offset >= total {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

type fakeGroupRepo struct {
	groups []domain.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, group *domain.Group) error {
	r.groups = append(r.groups, *group)
	return nil
}

func (r *fakeGroupRepo) Update(_ context.Context, group *domain.Group) error {
	for i := range r.groups {
		if r.groups[i].ID == group.ID {
			r.groups[i] = *group
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeGroupRepo) Delete(_ context.Context, id string) error {
	for i := range r.groups {
		if r.groups[i].ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*domain.Group, error) {
	for i := range r.groups {
		if r.groups[i].ID == id {
			clone := r.groups[i]
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeGroupRepo) List(_ context.Context, filter repository.GroupFilter) ([]domain.Group, error) {
	var out []domain.Group
	for _, g := range r.groups {
		if filter.MentorID != nil && (g.MentorID == nil || *g.MentorID != *filter.MentorID) {
			continue
		}
		if filter.Active != nil && g.Active != *filter.Active {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

type fakeSalaryRepo struct {
	salaries []domain.EmployeeSalary
	payments []domain.MentorPaymentStatus
}

func (r *fakeSalaryRepo) UpsertSalary(_ context.Context, salary *domain.EmployeeSalary) error {
	for i := range r.salaries {
		if r.salaries[i].EmployeeID == salary.EmployeeID && r.salaries[i].Month == salary.Month {
			r.salaries[i] = *salary
			return nil
		}
	}
	r.salaries = append(r.salaries, *salary)
	return nil
}

func (r *fakeSalaryRepo) SetSalaryPaid(_ context.Context, employeeID, month string, paid bool, paymentDate *time.Time) error {
	for i := range r.salaries {
		if r.salaries[i].EmployeeID == employeeID && r.salaries[i].Month == month {
			r.salaries[i].Paid = paid
			r.salaries[i].PaymentDate = paymentDate
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeSalaryRepo) ListSalaries(_ context.Context, month string) ([]domain.EmployeeSalary, error) {
	var out []domain.EmployeeSalary
	for _, sal := range r.salaries {
		if sal.Month == month {
			out = append(out, sal)
		}
	}
	return out, nil
}

func (r *fakeSalaryRepo) UpsertMentorPayment(_ context.Context, payment *domain.MentorPaymentStatus) error {
	for i := range r.payments {
		if r.payments[i].MentorID == payment.MentorID && r.payments[i].Month == payment.Month {
			r.payments[i] = *payment
			return nil
		}
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakeSalaryRepo) ListMentorPayments(_ context.Context, month string) ([]domain.MentorPaymentStatus, error) {
	var out []domain.MentorPaymentStatus
	for _, p := range r.payments {
		if p.Month == month {
			out = append(out, p)
		}
	}
	return out, nil
}
