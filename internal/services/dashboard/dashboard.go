package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/repository"
)

// weekdays of the weekly trend. The trend is a zero filled placeholder.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Reporter computes the dashboard summary.
type Reporter struct {
	log  *slog.Logger
	repo repository.DashboardRepoIface
	loc  *time.Location
	now  func() time.Time
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithClock replaces the clock used to decide which date is today.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

func NewReporter(log *slog.Logger, repo repository.DashboardRepoIface, loc *time.Location, opts ...Option) *Reporter {
	reporter := &Reporter{log: log, repo: repo, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(reporter)
	}
	return reporter
}

// Today returns the current calendar date in the reporter's timezone.
func (r *Reporter) Today() time.Time {
	now := r.now().In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Stats aggregates roster and today's attendance counts.
func (r *Reporter) Stats(ctx context.Context) (models.DashboardStats, error) {
	log := r.log.With(slog.String("op", "Dashboard.Stats"), slog.String("division", "dashboard"))

	totalEmployees, err := r.repo.CountEmployees(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	today := r.Today()
	counts, err := r.repo.CountAttendanceByStatus(ctx, today)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	presentToday := counts[models.StatusPresent]
	absentToday := counts[models.StatusAbsent]

	distribution, err := r.repo.DepartmentDistribution(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to get department distribution: %w", err)
	}

	log.DebugContext(ctx, "dashboard stats computed",
		"date", today.Format(models.DateLayout), "employees", totalEmployees, "present", presentToday)

	return models.DashboardStats{
		TotalEmployees:         totalEmployees,
		PresentToday:           presentToday,
		AbsentToday:            absentToday,
		AttendanceRate:         AttendanceRate(presentToday, totalEmployees),
		TotalDepartments:       len(distribution),
		WeeklyTrend:            weeklyTrend(),
		DepartmentDistribution: distribution,
		TodayAttendanceStatus: []models.StatusCount{
			{Name: string(models.StatusPresent), Count: presentToday},
			{Name: string(models.StatusAbsent), Count: absentToday},
		},
	}, nil
}

// AttendanceRate is the share of the whole roster present today, in percent rounded to two decimals.
func AttendanceRate(present, totalEmployees int) float64 {
	if totalEmployees <= 0 {
		return 0
	}

	const hundred = 100
	rate := float64(present) / float64(totalEmployees) * hundred

	// strconv rounds the exact binary value half to even
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(rate, 'f', 2, 64), 64)
	if err != nil {
		return 0
	}

	return rounded
}

func weeklyTrend() []models.DayTrend {
	trend := make([]models.DayTrend, 0, len(weekdays))
	for _, day := range weekdays {
		trend = append(trend, models.DayTrend{Day: day, Present: 0})
	}
	return trend
}
