package salary

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrGradeNotFound = errors.New("salary grade not found")
	ErrGradeExists   = errors.New("salary grade already exists")
	ErrInvalidGrade  = errors.New("grade name and a positive salary are required")
)

// Grade is a salary tier: a rank name and its monthly base salary.
type Grade struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MonthlySalary float64 `json:"monthlySalary"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Grade, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, monthly_salary
    FROM salary_grades
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []Grade
	for rows.Next() {
		var grade Grade
		if err := rows.Scan(&grade.ID, &grade.Name, &grade.MonthlySalary); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}
	return grades, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (Grade, error) {
	var grade Grade
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, monthly_salary
    FROM salary_grades
    WHERE name = $1
  `, normalizeName(name)).Scan(&grade.ID, &grade.Name, &grade.MonthlySalary)
	if errors.Is(err, pgx.ErrNoRows) {
		return Grade{}, ErrGradeNotFound
	}
	if err != nil {
		return Grade{}, err
	}
	return grade, nil
}

func (s *Store) Create(ctx context.Context, name string, monthlySalary float64) (string, error) {
	name = normalizeName(name)
	if name == "" || monthlySalary <= 0 {
		return "", ErrInvalidGrade
	}
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salary_grades (name, monthly_salary)
    VALUES ($1, $2)
    ON CONFLICT (name) DO NOTHING
    RETURNING id
  `, name, monthlySalary).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrGradeExists
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id, name string, monthlySalary float64) error {
	name = normalizeName(name)
	if name == "" || monthlySalary <= 0 {
		return ErrInvalidGrade
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE salary_grades
    SET name = $2, monthly_salary = $3
    WHERE id = $1
  `, id, name, monthlySalary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGradeNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM salary_grades WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// Grade names are stored uppercase, the way ranks are written on duty rosters.
func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
