package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/report"
	"github.com/edupanel/center-service/internal/service"
)

// RecordSalaryRequest sets a manual salary for a month.
type RecordSalaryRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Month      string  `json:"month" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

// SetSalaryPaidRequest toggles the paid marker on a recorded salary.
type SetSalaryPaidRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Month      string `json:"month" validate:"required"`
	Paid       bool   `json:"paid"`
}

// SetMentorPaidRequest toggles the paid marker on a mentor's commission.
type SetMentorPaidRequest struct {
	MentorID string  `json:"mentor_id" validate:"required"`
	Month    string  `json:"month" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Paid     bool    `json:"paid"`
}

// GroupEarningsResponse is one group's slice of a mentor's report.
type GroupEarningsResponse struct {
	GroupID       string  `json:"group_id"`
	Specialty     string  `json:"specialty"`
	ScheduleDays  string  `json:"schedule_days"`
	Earnings      float64 `json:"earnings"`
	MentorPayment float64 `json:"mentor_payment"`
	DirectorShare float64 `json:"director_share"`
	StudentsCount int     `json:"students_count"`
}

// MentorEarningsResponse is one mentor's monthly attribution.
type MentorEarningsResponse struct {
	MentorID      string                  `json:"mentor_id"`
	FullName      string                  `json:"full_name"`
	Earnings      float64                 `json:"earnings"`
	MentorPayment float64                 `json:"mentor_payment"`
	DirectorShare float64                 `json:"director_share"`
	GroupsCount   int                     `json:"groups_count"`
	StudentsCount int                     `json:"students_count"`
	Paid          bool                    `json:"paid"`
	PaymentDate   *time.Time              `json:"payment_date,omitempty"`
	Groups        []GroupEarningsResponse `json:"groups"`
}

// SalaryResponse is one recorded salary row. Only the employee id and
// numeric fields travel here; callers resolve identity details from the
// employee listing.
type SalaryResponse struct {
	EmployeeID  string     `json:"employee_id"`
	Month       string     `json:"month"`
	Amount      float64    `json:"amount"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// FinancialSummaryResponse aggregates the month's money flows.
type FinancialSummaryResponse struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalDirectorShare    float64 `json:"total_director_share"`
	TotalMentorPayments   float64 `json:"total_mentor_payments"`
	TotalEmployeeSalaries float64 `json:"total_employee_salaries"`
	DirectorRemaining     float64 `json:"director_remaining"`
}

// DailyRevenueResponse is one day's revenue.
type DailyRevenueResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// MonthlyReportResponse is the full derived report for a month.
type MonthlyReportResponse struct {
	Month          string                   `json:"month"`
	MentorEarnings []MentorEarningsResponse `json:"mentor_earnings"`
	Summary        FinancialSummaryResponse `json:"summary"`
	DailyRevenue   []DailyRevenueResponse   `json:"daily_revenue"`
	Salaries       []SalaryResponse         `json:"salaries"`
}

// NewMonthlyReportResponse maps the derived report.
func NewMonthlyReportResponse(rep *service.MonthlyReport) MonthlyReportResponse {
	mentorEarnings := make([]MentorEarningsResponse, 0, len(rep.MentorEarnings))
	for _, me := range rep.MentorEarnings {
		groups := make([]GroupEarningsResponse, 0, len(me.Groups))
		for _, ge := range me.Groups {
			groups = append(groups, GroupEarningsResponse{
				GroupID:       ge.Group.ID,
				Specialty:     ge.Group.Specialty,
				ScheduleDays:  ge.Group.ScheduleDays,
				Earnings:      ge.Earnings,
				MentorPayment: ge.MentorPayment,
				DirectorShare: ge.DirectorShare,
				StudentsCount: ge.StudentsCount,
			})
		}
		mentorEarnings = append(mentorEarnings, MentorEarningsResponse{
			MentorID:      me.Mentor.ID,
			FullName:      me.Mentor.FullName,
			Earnings:      me.Earnings,
			MentorPayment: me.MentorPayment,
			DirectorShare: me.DirectorShare,
			GroupsCount:   me.GroupsCount,
			StudentsCount: me.StudentsCount,
			Paid:          me.Paid,
			PaymentDate:   me.PaymentDate,
			Groups:        groups,
		})
	}

	daily := make([]DailyRevenueResponse, 0, len(rep.DailyRevenue))
	for _, point := range rep.DailyRevenue {
		daily = append(daily, DailyRevenueResponse{
			Date:    point.Date.Format("2006-01-02"),
			Revenue: point.Revenue,
		})
	}

	salaries := make([]SalaryResponse, 0, len(rep.Salaries))
	for _, sal := range rep.Salaries {
		salaries = append(salaries, SalaryResponse{
			EmployeeID:  sal.EmployeeID,
			Month:       sal.Month,
			Amount:      sal.Amount,
			Paid:        sal.Paid,
			PaymentDate: sal.PaymentDate,
		})
	}

	return MonthlyReportResponse{
		Month:          rep.Month.String(),
		MentorEarnings: mentorEarnings,
		Summary:        newFinancialSummaryResponse(rep.Summary),
		DailyRevenue:   daily,
		Salaries:       salaries,
	}
}

func newFinancialSummaryResponse(summary report.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalRevenue:          summary.TotalRevenue,
		TotalDirectorShare:    summary.TotalDirectorShare,
		TotalMentorPayments:   summary.TotalMentorPayments,
		TotalEmployeeSalaries: summary.TotalEmployeeSalaries,
		DirectorRemaining:     summary.DirectorRemaining,
	}
}
