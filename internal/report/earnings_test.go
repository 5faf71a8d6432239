package report

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

const floatTol = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

func march2024() Month {
	return Month{Year: 2024, Month: time.March}
}

func paidAt(day int) *time.Time {
	t := time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func mentor(id, name string) domain.Employee {
	return domain.Employee{ID: id, FullName: name, Role: domain.RoleMentor}
}

func group(id, mentorID string) domain.Group {
	return domain.Group{ID: id, Specialty: "english", ScheduleDays: "mon,wed", MentorID: &mentorID}
}

func invoice(id, studentID, groupID string, amount float64, payment *time.Time) domain.Invoice {
	return domain.Invoice{
		ID:          id,
		StudentID:   studentID,
		GroupID:     groupID,
		Amount:      amount,
		Status:      domain.InvoiceStatusPaid,
		PaymentTime: payment,
	}
}

// Five distinct students paying a combined 10,000,000 sit in the
// small-group tier: 45% to the director, 55% to the mentor.
func TestComputeSmallGroupSplit(t *testing.T) {
	mentors := []domain.Employee{mentor("m1", "Mentor One")}
	groups := []domain.Group{group("g1", "m1")}
	invoices := []domain.Invoice{
		invoice("i1", "s1", "g1", 2_000_000, paidAt(1)),
		invoice("i2", "s2", "g1", 2_000_000, paidAt(3)),
		invoice("i3", "s3", "g1", 2_000_000, paidAt(5)),
		invoice("i4", "s4", "g1", 2_000_000, paidAt(7)),
		invoice("i5", "s5", "g1", 2_000_000, paidAt(9)),
	}

	result := Compute(invoices, groups, mentors, march2024(), nil, DefaultSplitRates())
	if len(result) != 1 {
		t.Fatalf("Compute() returned %d mentors, want 1", len(result))
	}
	me := result[0]
	if me.StudentsCount != 5 {
		t.Errorf("StudentsCount = %d, want 5", me.StudentsCount)
	}
	if !almostEqual(me.Earnings, 10_000_000) {
		t.Errorf("Earnings = %f, want 10000000", me.Earnings)
	}
	if !almostEqual(me.DirectorShare, 4_500_000) {
		t.Errorf("DirectorShare = %f, want 4500000", me.DirectorShare)
	}
	if !almostEqual(me.MentorPayment, 5_500_000) {
		t.Errorf("MentorPayment = %f, want 5500000", me.MentorPayment)
	}
}

// A sixth student keeps the group in the small tier; the seventh moves
// the whole group's earnings, including invoices that arrived earlier,
// to the 40/60 split.
func TestComputeTierBoundary(t *testing.T) {
	mentors := []domain.Employee{mentor("m1", "Mentor One")}
	groups := []domain.Group{group("g1", "m1")}
	base := []domain.Invoice{
		invoice("i1", "s1", "g1", 2_000_000, paidAt(1)),
		invoice("i2", "s2", "g1", 2_000_000, paidAt(2)),
		invoice("i3", "s3", "g1", 2_000_000, paidAt(3)),
		invoice("i4", "s4", "g1", 2_000_000, paidAt(4)),
		invoice("i5", "s5", "g1", 2_000_000, paidAt(5)),
	}

	sixth := append(append([]domain.Invoice{}, base...),
		invoice("i6", "s6", "g1", 2_000_000, paidAt(6)))
	result := Compute(sixth, groups, mentors, march2024(), nil, DefaultSplitRates())
	if !almostEqual(result[0].DirectorShare, 5_400_000) || !almostEqual(result[0].MentorPayment, 6_600_000) {
		t.Errorf("six students: director/mentor = %f/%f, want 5400000/6600000",
			result[0].DirectorShare, result[0].MentorPayment)
	}

	seventh := append(append([]domain.Invoice{}, sixth...),
		invoice("i7", "s7", "g1", 1_000_000, paidAt(7)))
	result = Compute(seventh, groups, mentors, march2024(), nil, DefaultSplitRates())
	if !almostEqual(result[0].DirectorShare, 5_200_000) || !almostEqual(result[0].MentorPayment, 7_800_000) {
		t.Errorf("seven students: director/mentor = %f/%f, want 5200000/7800000",
			result[0].DirectorShare, result[0].MentorPayment)
	}
}

// The split depends only on the final per-group student count, so any
// processing order of the same invoices yields the same totals.
func TestComputeOrderIndependence(t *testing.T) {
	mentors := []domain.Employee{mentor("m1", "Mentor One")}
	groups := []domain.Group{group("g1", "m1")}
	invoices := make([]domain.Invoice, 0, 8)
	for i := 0; i < 8; i++ {
		invoices = append(invoices, invoice(
			string(rune('a'+i)),
			string(rune('A'+i)),
			"g1",
			float64(500_000*(i+1)),
			paidAt(i+1),
		))
	}

	baseline := Compute(invoices, groups, mentors, march2024(), nil, DefaultSplitRates())

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]domain.Invoice{}, invoices...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := Compute(shuffled, groups, mentors, march2024(), nil, DefaultSplitRates())
		if len(got) != len(baseline) {
			t.Fatalf("trial %d: mentor count %d, want %d", trial, len(got), len(baseline))
		}
		for i := range got {
			if !almostEqual(got[i].Earnings, baseline[i].Earnings) ||
				!almostEqual(got[i].DirectorShare, baseline[i].DirectorShare) ||
				!almostEqual(got[i].MentorPayment, baseline[i].MentorPayment) {
				t.Errorf("trial %d: mentor %d totals diverge from baseline", trial, i)
			}
		}
	}
}

// A mentor running a small and a large group ends up with a blended rate;
// the split is per group, never on the mentor's combined student count.
func TestComputePerGroupSplit(t *testing.T) {
	mentors := []domain.Employee{mentor("m1", "Mentor One")}
	mentorID := "m1"
	groups := []domain.Group{
		{ID: "small", Specialty: "math", MentorID: &mentorID},
		{ID: "large", Specialty: "english", MentorID: &mentorID},
	}

	invoices := []domain.Invoice{
		invoice("i1", "s1", "small", 1_000_000, paidAt(1)),
		invoice("i2", "s2", "small", 1_000_000, paidAt(2)),
	}
	for i := 0; i < 7; i++ {
		invoices = append(invoices, invoice(
			"L"+string(rune('1'+i)),
			"ls"+string(rune('1'+i)),
			"large",
			1_000_000,
			paidAt(i+3),
		))
	}

	result := Compute(invoices, groups, mentors, march2024(), nil, DefaultSplitRates())
	if len(result) != 1 {
		t.Fatalf("Compute() returned %d mentors, want 1", len(result))
	}
	me := result[0]
	// small: 2,000,000 at 45% = 900,000; large: 7,000,000 at 40% = 2,800,000
	if !almostEqual(me.DirectorShare, 3_700_000) {
		t.Errorf("DirectorShare = %f, want 3700000", me.DirectorShare)
	}
	if !almostEqual(me.MentorPayment, 5_300_000) {
		t.Errorf("MentorPayment = %f, want 5300000", me.MentorPayment)
	}
	if me.GroupsCount != 2 || me.StudentsCount != 9 {
		t.Errorf("GroupsCount/StudentsCount = %d/%d, want 2/9", me.GroupsCount, me.StudentsCount)
	}
}

func TestComputeExclusions(t *testing.T) {
	otherMonth := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	mentors := []domain.Employee{
		mentor("m1", "Mentor One"),
		{ID: "dir", FullName: "Director", Role: domain.RoleDirector},
	}
	dirID := "dir"
	groups := []domain.Group{
		group("g1", "m1"),
		{ID: "orphan", Specialty: "chess"},
		{ID: "dir-led", Specialty: "piano", MentorID: &dirID},
		group("ghost-led", "nobody"),
	}
	invoices := []domain.Invoice{
		invoice("keep", "s1", "g1", 1_000_000, paidAt(10)),
		invoice("no-payment-time", "s2", "g1", 1_000_000, nil),
		invoice("wrong-month", "s3", "g1", 1_000_000, &otherMonth),
		invoice("unknown-group", "s4", "missing", 1_000_000, paidAt(10)),
		invoice("mentorless-group", "s5", "orphan", 1_000_000, paidAt(10)),
		invoice("non-mentor-lead", "s6", "dir-led", 1_000_000, paidAt(10)),
		invoice("unresolvable-mentor", "s7", "ghost-led", 1_000_000, paidAt(10)),
	}

	result := Compute(invoices, groups, mentors, march2024(), nil, DefaultSplitRates())
	if len(result) != 1 {
		t.Fatalf("Compute() returned %d mentors, want 1", len(result))
	}
	if !almostEqual(result[0].Earnings, 1_000_000) {
		t.Errorf("Earnings = %f, want 1000000", result[0].Earnings)
	}
	if result[0].StudentsCount != 1 {
		t.Errorf("StudentsCount = %d, want 1", result[0].StudentsCount)
	}
}

func TestComputeSortsByEarningsDescending(t *testing.T) {
	mentors := []domain.Employee{
		mentor("m1", "Low"),
		mentor("m2", "High"),
		mentor("m3", "TiedWithLow"),
	}
	groups := []domain.Group{group("g1", "m1"), group("g2", "m2"), group("g3", "m3")}
	invoices := []domain.Invoice{
		invoice("i1", "s1", "g1", 1_000_000, paidAt(1)),
		invoice("i2", "s2", "g2", 3_000_000, paidAt(2)),
		invoice("i3", "s3", "g3", 1_000_000, paidAt(3)),
	}

	result := Compute(invoices, groups, mentors, march2024(), nil, DefaultSplitRates())
	if len(result) != 3 {
		t.Fatalf("Compute() returned %d mentors, want 3", len(result))
	}
	if result[0].Mentor.ID != "m2" {
		t.Errorf("result[0] = %q, want m2", result[0].Mentor.ID)
	}
	// ties keep first-seen input order
	if result[1].Mentor.ID != "m1" || result[2].Mentor.ID != "m3" {
		t.Errorf("tie order = %q, %q; want m1, m3", result[1].Mentor.ID, result[2].Mentor.ID)
	}
}

func TestComputePaymentStatus(t *testing.T) {
	mentors := []domain.Employee{mentor("m1", "Mentor One")}
	groups := []domain.Group{group("g1", "m1")}
	invoices := []domain.Invoice{invoice("i1", "s1", "g1", 1_000_000, paidAt(1))}
	when := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	result := Compute(invoices, groups, mentors, march2024(),
		map[string]PaymentStatus{"m1": {Paid: true, PaymentDate: &when}},
		DefaultSplitRates())
	if !result[0].Paid {
		t.Errorf("Paid = false, want true")
	}
	if result[0].PaymentDate == nil || !result[0].PaymentDate.Equal(when) {
		t.Errorf("PaymentDate = %v, want %v", result[0].PaymentDate, when)
	}
}

func TestSummarize(t *testing.T) {
	earnings := []MentorEarnings{
		{Earnings: 10_000_000, DirectorShare: 4_500_000, MentorPayment: 5_500_000},
		{Earnings: 5_000_000, DirectorShare: 2_000_000, MentorPayment: 3_000_000},
	}
	salaries := []domain.EmployeeSalary{
		{EmployeeID: "e1", Amount: 3_000_000},
		{EmployeeID: "e2", Amount: 1_500_000},
	}

	got := Summarize(earnings, salaries)
	if !almostEqual(got.TotalRevenue, 15_000_000) {
		t.Errorf("TotalRevenue = %f, want 15000000", got.TotalRevenue)
	}
	if !almostEqual(got.TotalDirectorShare, 6_500_000) {
		t.Errorf("TotalDirectorShare = %f, want 6500000", got.TotalDirectorShare)
	}
	if !almostEqual(got.TotalMentorPayments, 8_500_000) {
		t.Errorf("TotalMentorPayments = %f, want 8500000", got.TotalMentorPayments)
	}
	if !almostEqual(got.TotalEmployeeSalaries, 4_500_000) {
		t.Errorf("TotalEmployeeSalaries = %f, want 4500000", got.TotalEmployeeSalaries)
	}
	if !almostEqual(got.DirectorRemaining, 2_000_000) {
		t.Errorf("DirectorRemaining = %f, want 2000000", got.DirectorRemaining)
	}
}

func TestSummarizeRemainingFloorsAtZero(t *testing.T) {
	earnings := []MentorEarnings{{Earnings: 1_000_000, DirectorShare: 450_000, MentorPayment: 550_000}}
	salaries := []domain.EmployeeSalary{{EmployeeID: "e1", Amount: 2_000_000}}

	got := Summarize(earnings, salaries)
	if got.DirectorRemaining != 0 {
		t.Errorf("DirectorRemaining = %f, want 0", got.DirectorRemaining)
	}
}

func TestDailyRevenue(t *testing.T) {
	invoices := []domain.Invoice{
		invoice("i1", "s1", "g1", 1_000_000, paidAt(1)),
		invoice("i2", "s2", "g1", 500_000, paidAt(1)),
		invoice("i3", "s3", "g1", 2_000_000, paidAt(15)),
		invoice("skip", "s4", "g1", 9_000_000, nil),
	}

	points := DailyRevenue(invoices, march2024())
	if len(points) != 31 {
		t.Fatalf("DailyRevenue() len = %d, want 31", len(points))
	}
	if !almostEqual(points[0].Revenue, 1_500_000) {
		t.Errorf("day 1 revenue = %f, want 1500000", points[0].Revenue)
	}
	if !almostEqual(points[14].Revenue, 2_000_000) {
		t.Errorf("day 15 revenue = %f, want 2000000", points[14].Revenue)
	}
	if points[1].Revenue != 0 {
		t.Errorf("day 2 revenue = %f, want 0", points[1].Revenue)
	}
}
