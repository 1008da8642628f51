package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/UnknownOlympus/horae/internal/config"
	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/UnknownOlympus/horae/internal/models"
	"github.com/UnknownOlympus/horae/internal/repository"
	"github.com/UnknownOlympus/horae/internal/services/attendance"
	"github.com/UnknownOlympus/horae/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"
)

const presentRatio = 0.8

var departments = []string{"Engineering", "HR", "Sales", "Finance", "Marketing", "Operations"}

var roster = []models.EmployeeInput{
	{Name: "Abhinav Kaushik", Email: "abhinav@example.com", Department: "Engineering"},
	{Name: "John Doe", Email: "john@example.com", Department: "Sales"},
	{Name: "Jane Smith", Email: "jane@example.com", Department: "HR"},
	{Name: "Mike Ross", Email: "mike@example.com", Department: "Finance"},
	{Name: "Harvey Specter", Email: "harvey@example.com", Department: "Operations"},
}

func main() {
	extra := flag.Int("extra", 0, "number of additional employees with generated emails")
	days := flag.Int("days", 7, "number of past days, today included, to fill with attendance") //nolint:mnd // one week
	flag.Parse()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics)
	register := attendance.NewRegister(
		logger, repository.NewAttendanceRepository(dtb, appMetrics), employeeRepo, appMetrics)

	if err = seed(context.Background(), logger, staff, register, *extra, *days, time.Now().In(loc)); err != nil {
		logger.Error("Seeding failed", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("Seeding completed successfully!")
}

func seed(
	ctx context.Context,
	log *slog.Logger,
	staff *employees.Staff,
	register *attendance.Register,
	extra, days int,
	today time.Time,
) error {
	if err := staff.Purge(ctx); err != nil {
		return fmt.Errorf("failed to clear the database: %w", err)
	}

	inputs := append([]models.EmployeeInput{}, roster...)
	for i := range extra {
		inputs = append(inputs, models.EmployeeInput{
			Name:       fmt.Sprintf("Employee %d", len(roster)+i+1),
			Email:      randomail.GenerateRandomEmail(),
			Department: departments[rand.IntN(len(departments))], //nolint:gosec // sample data
		})
	}

	created := make([]models.Employee, 0, len(inputs))
	for _, input := range inputs {
		employee, err := staff.Create(ctx, input)
		if err != nil {
			log.Warn("Skipping employee", "email", input.Email, sl.Err(err))
			continue
		}
		log.Info("Created employee", "name", employee.FullName, "id", employee.EmployeeID)
		created = append(created, employee)
	}

	for offset := range days {
		date := today.AddDate(0, 0, -offset).Format(models.DateLayout)
		for _, employee := range created {
			status := models.StatusAbsent
			if rand.Float64() < presentRatio { //nolint:gosec // sample data
				status = models.StatusPresent
			}
			_, _, err := register.Mark(ctx, models.AttendanceInput{
				EmployeeID: employee.EmployeeID,
				Date:       date,
				Status:     string(status),
			})
			if err != nil {
				return fmt.Errorf("failed to mark attendance of %s on %s: %w", employee.EmployeeID, date, err)
			}
		}
	}

	return nil
}
