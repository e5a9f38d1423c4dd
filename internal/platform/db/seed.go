package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"liquidador/internal/domain/auth"
	"liquidador/internal/domain/holiday"
	"liquidador/internal/domain/salary"
)

const defaultAdminUsername = "admin"

// Ranks and base salaries the station opens with. Admins can edit them
// afterwards through the grades endpoints.
var seedGrades = []struct {
	name   string
	salary float64
}{
	{"BOMBERO", 2054865},
	{"CABO DE BOMBERO", 2197821},
	{"SARGENTO DE BOMBERO", 2269299},
	{"TENIENTE DE BOMBERO", 2510541},
}

// Seed fills an empty database: the admin account, the rank salary
// table and the holiday calendar. Every step is idempotent, so running
// it on every boot is safe.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminPassword string, yearFrom, yearTo int) error {
	if adminPassword != "" {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("seed: hash admin password: %w", err)
		}
		if err := auth.NewStore(pool).UpsertAdmin(ctx, defaultAdminUsername, hash); err != nil {
			return fmt.Errorf("seed: admin user: %w", err)
		}
	} else {
		slog.Warn("seed: no admin password configured, skipping admin user")
	}

	grades := salary.NewStore(pool)
	for _, grade := range seedGrades {
		if _, err := grades.Create(ctx, grade.name, grade.salary); err != nil && err != salary.ErrGradeExists {
			return fmt.Errorf("seed: grade %s: %w", grade.name, err)
		}
	}

	holidays := holiday.NewStore(pool)
	count, err := holidays.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count holidays: %w", err)
	}
	if count == 0 {
		generated := holiday.GenerateRange(yearFrom, yearTo)
		if err := holidays.Replace(ctx, generated); err != nil {
			return fmt.Errorf("seed: holidays: %w", err)
		}
		slog.Info("seeded holiday calendar", "from", yearFrom, "to", yearTo, "holidays", len(generated))
	}

	return nil
}
