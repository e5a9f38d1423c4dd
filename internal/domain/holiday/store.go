package holiday

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Dates are selected as text so the calendar never round-trips through
// a timestamp and its timezone.
func (s *Store) List(ctx context.Context) ([]Holiday, error) {
	return s.list(ctx, `
    SELECT to_char(date, 'YYYY-MM-DD'), name, kind
    FROM holidays
    ORDER BY date
  `)
}

func (s *Store) ListYear(ctx context.Context, year int) ([]Holiday, error) {
	return s.list(ctx, `
    SELECT to_char(date, 'YYYY-MM-DD'), name, kind
    FROM holidays
    WHERE EXTRACT(YEAR FROM date) = $1
    ORDER BY date
  `, year)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Kind); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

func (s *Store) Add(ctx context.Context, h Holiday) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO holidays (date, name, kind)
    VALUES ($1::date, $2, $3)
    ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name, kind = EXCLUDED.kind
  `, h.Date, h.Name, h.Kind)
	return err
}

func (s *Store) Delete(ctx context.Context, date string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE date = $1::date", date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// Replace swaps the whole stored calendar for the given set in one
// transaction, used when regenerating the multi-year calendar.
func (s *Store) Replace(ctx context.Context, holidays []Holiday) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM holidays"); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	for _, h := range holidays {
		if _, err := tx.Exec(ctx, `
      INSERT INTO holidays (date, name, kind)
      VALUES ($1::date, $2, $3)
      ON CONFLICT (date) DO NOTHING
    `, h.Date, h.Name, h.Kind); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM holidays").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
