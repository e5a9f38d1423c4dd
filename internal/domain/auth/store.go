package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// PasswordHash returns the stored bcrypt hash for the given admin username.
func (s *Store) PasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT password_hash
    FROM admin_users
    WHERE username = $1
  `, username).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (s *Store) UpsertAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO admin_users (username, password_hash)
    VALUES ($1, $2)
    ON CONFLICT (username) DO NOTHING
  `, username, passwordHash)
	return err
}
