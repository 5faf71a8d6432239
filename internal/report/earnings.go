package report

import (
	"sort"
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// SplitRates parameterizes the tiered commission split between mentors
// and the director.
type SplitRates struct {
	// SmallGroupMaxStudents is the largest distinct-paying-student count
	// still billed at the small-group rate.
	SmallGroupMaxStudents  int
	SmallGroupDirectorRate float64
	LargeGroupDirectorRate float64
}

// DefaultSplitRates returns the standard 45/55 and 40/60 tiers with the
// threshold at six students.
func DefaultSplitRates() SplitRates {
	return SplitRates{
		SmallGroupMaxStudents:  6,
		SmallGroupDirectorRate: 0.45,
		LargeGroupDirectorRate: 0.40,
	}
}

func (r SplitRates) directorRate(studentCount int) float64 {
	if studentCount <= r.SmallGroupMaxStudents {
		return r.SmallGroupDirectorRate
	}
	return r.LargeGroupDirectorRate
}

// PaymentStatus is the externally recorded paid marker for a mentor's
// monthly commission.
type PaymentStatus struct {
	Paid        bool
	PaymentDate *time.Time
}

// GroupEarnings is the per-group slice of a mentor's monthly report.
type GroupEarnings struct {
	Group         domain.Group
	Earnings      float64
	MentorPayment float64
	DirectorShare float64
	StudentsCount int
}

// MentorEarnings is one mentor's monthly revenue attribution.
type MentorEarnings struct {
	Mentor        domain.Employee
	Earnings      float64
	MentorPayment float64
	DirectorShare float64
	GroupsCount   int
	StudentsCount int
	Paid          bool
	PaymentDate   *time.Time
	Groups        []GroupEarnings
}

// FinancialSummary aggregates a month's money flows across all mentors
// and recorded salaries.
type FinancialSummary struct {
	TotalRevenue          float64
	TotalDirectorShare    float64
	TotalMentorPayments   float64
	TotalEmployeeSalaries float64
	DirectorRemaining     float64
}

// DailyRevenuePoint is one day's paid-invoice revenue.
type DailyRevenuePoint struct {
	Date    time.Time
	Revenue float64
}

type groupAccumulator struct {
	group    domain.Group
	amount   float64
	students map[string]struct{}
}

type mentorAccumulator struct {
	mentor     domain.Employee
	amount     float64
	groups     map[string]*groupAccumulator
	groupOrder []string
	students   map[string]struct{}
}

// Compute attributes a month's paid invoices to mentors and their groups
// and applies the tiered commission split.
//
// Invoices are assumed pre-filtered to status paid; records without a
// payment timestamp are excluded anyway. Groups without a mentor, or
// whose mentor reference does not resolve to a mentor-role employee in
// the snapshot, are skipped silently.
//
// The split for a group is a function of the group's final
// distinct-student count for the month, so raw totals are accumulated
// first and the split applied once per group afterwards. Splitting
// invoice-by-invoice with a running count would make the result depend
// on processing order.
func Compute(
	invoices []domain.Invoice,
	groups []domain.Group,
	mentors []domain.Employee,
	month Month,
	status map[string]PaymentStatus,
	rates SplitRates,
) []MentorEarnings {
	groupByID := make(map[string]domain.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}
	mentorByID := make(map[string]domain.Employee, len(mentors))
	for _, m := range mentors {
		if m.Role == domain.RoleMentor {
			mentorByID[m.ID] = m
		}
	}

	accByMentor := make(map[string]*mentorAccumulator)
	order := make([]string, 0)

	for _, inv := range invoices {
		if inv.PaymentTime == nil || !month.Contains(*inv.PaymentTime) {
			continue
		}
		group, ok := groupByID[inv.GroupID]
		if !ok || group.MentorID == nil {
			continue
		}
		mentor, ok := mentorByID[*group.MentorID]
		if !ok {
			continue
		}

		acc, ok := accByMentor[mentor.ID]
		if !ok {
			acc = &mentorAccumulator{
				mentor:   mentor,
				groups:   make(map[string]*groupAccumulator),
				students: make(map[string]struct{}),
			}
			accByMentor[mentor.ID] = acc
			order = append(order, mentor.ID)
		}
		acc.amount += inv.Amount
		acc.students[inv.StudentID] = struct{}{}

		gacc, ok := acc.groups[group.ID]
		if !ok {
			gacc = &groupAccumulator{group: group, students: make(map[string]struct{})}
			acc.groups[group.ID] = gacc
			acc.groupOrder = append(acc.groupOrder, group.ID)
		}
		gacc.amount += inv.Amount
		gacc.students[inv.StudentID] = struct{}{}
	}

	result := make([]MentorEarnings, 0, len(accByMentor))
	for _, mentorID := range order {
		acc := accByMentor[mentorID]

		groupsDetail := make([]GroupEarnings, 0, len(acc.groups))
		var mentorPayment, directorShare float64
		for _, groupID := range acc.groupOrder {
			gacc := acc.groups[groupID]
			// Split on the final distinct-student count, once per group.
			rate := rates.directorRate(len(gacc.students))
			gDirector := gacc.amount * rate
			gMentor := gacc.amount - gDirector
			mentorPayment += gMentor
			directorShare += gDirector
			groupsDetail = append(groupsDetail, GroupEarnings{
				Group:         gacc.group,
				Earnings:      gacc.amount,
				MentorPayment: gMentor,
				DirectorShare: gDirector,
				StudentsCount: len(gacc.students),
			})
		}
		sort.SliceStable(groupsDetail, func(i, j int) bool {
			return groupsDetail[i].Earnings > groupsDetail[j].Earnings
		})

		paymentStatus := status[mentorID]
		result = append(result, MentorEarnings{
			Mentor:        acc.mentor,
			Earnings:      acc.amount,
			MentorPayment: mentorPayment,
			DirectorShare: directorShare,
			GroupsCount:   len(acc.groups),
			StudentsCount: len(acc.students),
			Paid:          paymentStatus.Paid,
			PaymentDate:   paymentStatus.PaymentDate,
			Groups:        groupsDetail,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Earnings > result[j].Earnings
	})
	return result
}

// Summarize derives the month's financial totals from per-mentor earnings
// and the manually recorded salary table. The director's remainder is
// floored at zero.
func Summarize(earnings []MentorEarnings, salaries []domain.EmployeeSalary) FinancialSummary {
	var summary FinancialSummary
	for _, me := range earnings {
		summary.TotalRevenue += me.Earnings
		summary.TotalDirectorShare += me.DirectorShare
		summary.TotalMentorPayments += me.MentorPayment
	}
	for _, sal := range salaries {
		summary.TotalEmployeeSalaries += sal.Amount
	}
	remaining := summary.TotalDirectorShare - summary.TotalEmployeeSalaries
	if remaining > 0 {
		summary.DirectorRemaining = remaining
	}
	return summary
}

// DailyRevenue buckets the month's paid invoices into a per-day revenue
// series, including zero days, in calendar order.
func DailyRevenue(invoices []domain.Invoice, month Month) []DailyRevenuePoint {
	days := month.Days()
	revenueByDay := make(map[string]float64, len(days))

	for _, inv := range invoices {
		if inv.PaymentTime == nil || !month.Contains(*inv.PaymentTime) {
			continue
		}
		key := inv.PaymentTime.UTC().Format("2006-01-02")
		revenueByDay[key] += inv.Amount
	}

	points := make([]DailyRevenuePoint, 0, len(days))
	for _, day := range days {
		points = append(points, DailyRevenuePoint{
			Date:    day,
			Revenue: revenueByDay[day.Format("2006-01-02")],
		})
	}
	return points
}
