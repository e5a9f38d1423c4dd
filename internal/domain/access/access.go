package access

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one recorded visit to the application.
type Entry struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	RequestID string    `json:"requestId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, ip, requestID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO access_log (ip, request_id)
    VALUES ($1, $2)
  `, ip, requestID)
	return err
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, ip, COALESCE(request_id, ''), created_at
    FROM access_log
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.IP, &entry.RequestID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *Service) Clear(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM access_log")
	return err
}
