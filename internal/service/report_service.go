package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/config"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/events"
	"github.com/edupanel/center-service/internal/report"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

const (
	invoicePageSize  = 200
	employeePageSize = 200
)

// MonthlyReport is the fully derived report for one month. It is
// recomputed from snapshots on every query; nothing here is cached.
type MonthlyReport struct {
	Month          report.Month
	MentorEarnings []report.MentorEarnings
	Summary        report.FinancialSummary
	DailyRevenue   []report.DailyRevenuePoint
	Salaries       []domain.EmployeeSalary
}

// ReportService assembles complete input snapshots and runs the earnings
// aggregation.
type ReportService struct {
	invoices   repository.InvoiceRepository
	groups     repository.GroupRepository
	employees  repository.EmployeeRepository
	salaries   repository.SalaryRepository
	dispatcher events.Dispatcher
	rates      report.SplitRates
}

// ReportDependencies encapsulates repo requirements for the report service.
type ReportDependencies struct {
	InvoiceRepo  repository.InvoiceRepository
	GroupRepo    repository.GroupRepository
	EmployeeRepo repository.EmployeeRepository
	SalaryRepo   repository.SalaryRepository
	Dispatcher   events.Dispatcher
}

// NewReportService constructs the service.
func NewReportService(cfg config.Config, deps ReportDependencies) *ReportService {
	return &ReportService{
		invoices:   deps.InvoiceRepo,
		groups:     deps.GroupRepo,
		employees:  deps.EmployeeRepo,
		salaries:   deps.SalaryRepo,
		dispatcher: deps.Dispatcher,
		rates: report.SplitRates{
			SmallGroupMaxStudents:  cfg.Billing.SmallGroupMaxStudents,
			SmallGroupDirectorRate: cfg.Billing.SmallGroupDirectorRate,
			LargeGroupDirectorRate: cfg.Billing.LargeGroupDirectorRate,
		},
	}
}

// Monthly computes the earnings report for one month.
func (s *ReportService) Monthly(ctx context.Context, actor *domain.Employee, month report.Month) (*MonthlyReport, error) {
	if actor == nil || !auth.CanViewReports(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to view reports")
	}

	// The aggregation needs the complete monthly invoice set: distinct
	// student counts and the tiered split are wrong on a partial page.
	invoices, err := s.drainPaidInvoices(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx, repository.GroupFilter{})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	mentors, err := s.drainMentors(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.salaries.ListMentorPayments(ctx, month.String())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	statusByMentor := make(map[string]report.PaymentStatus, len(payments))
	for _, p := range payments {
		statusByMentor[p.MentorID] = report.PaymentStatus{Paid: p.Paid, PaymentDate: p.PaymentDate}
	}

	salaries, err := s.salaries.ListSalaries(ctx, month.String())
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	earnings := report.Compute(invoices, groups, mentors, month, statusByMentor, s.rates)

	return &MonthlyReport{
		Month:          month,
		MentorEarnings: earnings,
		Summary:        report.Summarize(earnings, salaries),
		DailyRevenue:   report.DailyRevenue(invoices, month),
		Salaries:       salaries,
	}, nil
}

// RecordSalary sets an employee's manual salary for a month.
func (s *ReportService) RecordSalary(ctx context.Context, actor *domain.Employee, employeeID string, month report.Month, amount float64) (*domain.EmployeeSalary, error) {
	if actor == nil || !auth.CanManageSalaries(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to manage salaries")
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperrors.NewValidationError("amount must be a non-negative finite number", nil)
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, apperrors.MapError(err)
	}

	salary := &domain.EmployeeSalary{
		EmployeeID: employeeID,
		Month:      month.String(),
		Amount:     amount,
	}
	if err := s.salaries.UpsertSalary(ctx, salary); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventSalaryRecorded, employeeID, events.SalaryRecordedPayload{
		Month:  salary.Month,
		Amount: amount,
	})
	return salary, nil
}

// SetSalaryPaid marks a recorded salary as paid or unpaid.
func (s *ReportService) SetSalaryPaid(ctx context.Context, actor *domain.Employee, employeeID string, month report.Month, paid bool) error {
	if actor == nil || !auth.CanManageSalaries(actor.Role) {
		return apperrors.NewForbidden("no permission to manage salaries")
	}
	var paymentDate *time.Time
	if paid {
		now := time.Now()
		paymentDate = &now
	}
	if err := s.salaries.SetSalaryPaid(ctx, employeeID, month.String(), paid, paymentDate); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SetMentorPaymentPaid marks a mentor's monthly commission as paid or
// unpaid, recording the amount the report computed at mark time.
func (s *ReportService) SetMentorPaymentPaid(ctx context.Context, actor *domain.Employee, mentorID string, month report.Month, amount float64, paid bool) error {
	if actor == nil || !auth.CanManageSalaries(actor.Role) {
		return apperrors.NewForbidden("no permission to manage salaries")
	}
	mentor, err := s.employees.GetByID(ctx, mentorID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if mentor.Role != domain.RoleMentor {
		return apperrors.NewValidationError("employee is not a mentor", map[string]any{"mentor_id": mentorID})
	}

	var paymentDate *time.Time
	if paid {
		now := time.Now()
		paymentDate = &now
	}
	payment := &domain.MentorPaymentStatus{
		MentorID:    mentorID,
		Month:       month.String(),
		Amount:      amount,
		Paid:        paid,
		PaymentDate: paymentDate,
	}
	if err := s.salaries.UpsertMentorPayment(ctx, payment); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventMentorPaymentMarked, mentorID, events.MentorPaymentMarkedPayload{
		Month:  payment.Month,
		Amount: amount,
		Paid:   paid,
	})
	return nil
}

// drainMentors pages through the full mentor roster. The repository always
// applies a LIMIT, so a single call would cap the snapshot and drop mentors
// from the report.
func (s *ReportService) drainMentors(ctx context.Context) ([]domain.Employee, error) {
	mentorRole := domain.RoleMentor
	var all []domain.Employee
	for offset := 0; ; offset += employeePageSize {
		items, err := s.employees.List(ctx, repository.EmployeeFilter{
			Role:   &mentorRole,
			Limit:  employeePageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		all = append(all, items...)
		if len(items) < employeePageSize {
			return all, nil
		}
	}
}

// drainPaidInvoices pages through the full paid-invoice ledger.
func (s *ReportService) drainPaidInvoices(ctx context.Context) ([]domain.Invoice, error) {
	paid := domain.InvoiceStatusPaid
	var all []domain.Invoice
	for offset := 0; ; offset += invoicePageSize {
		items, total, err := s.invoices.List(ctx, repository.InvoiceFilter{
			Status:   &paid,
			Ordering: "-payment_time",
			Limit:    invoicePageSize,
			Offset:   offset,
		})
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		all = append(all, items...)
		if len(items) == 0 || offset+len(items) >= total {
			return all, nil
		}
	}
}

func (s *ReportService) publish(ctx context.Context, actor *domain.Employee, eventType events.EventType, subjectID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{EmployeeID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
