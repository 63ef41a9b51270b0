package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
	"github.com/Pushpa2611/api-auth-gateway/internal/identity"
)

type principalRepository struct {
	pool *pgxpool.Pool
}

// NewPrincipalRepository returns a Postgres-backed identity store.
func NewPrincipalRepository(pool *pgxpool.Pool) identity.Store {
	return &principalRepository{pool: pool}
}

func (r *principalRepository) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	const query = `
        SELECT id, username, display_name, password_hash, status, created_at, updated_at
        FROM principals WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *principalRepository) GetByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	const query = `
        SELECT id, username, display_name, password_hash, status, created_at, updated_at
        FROM principals WHERE username=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, username))
}

func (r *principalRepository) scanOne(row pgx.Row) (*domain.Principal, error) {
	var principal domain.Principal
	if err := row.Scan(
		&principal.ID,
		&principal.Username,
		&principal.DisplayName,
		&principal.PasswordHash,
		&principal.Status,
		&principal.CreatedAt,
		&principal.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrPrincipalNotFound
		}
		return nil, err
	}
	return &principal, nil
}
