package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// Repository defines persistence operations for accounts.
type Repository interface {
	Create(ctx context.Context, email, role string) (id string, created bool, err error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	ListAll(ctx context.Context) ([]Account, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts an account unless one with the same email already exists.
// The unique constraint on email is the source of truth: two concurrent
// creates for the same email serialize in the database, and the loser gets
// created=false exactly as if the account had existed all along.
func (r *PGRepository) Create(ctx context.Context, email, role string) (string, bool, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (email, role)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`, email, role).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("users: create: %w", err)
	}
	return id, true, nil
}

// FindByEmail fetches an account by its email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, created_at FROM accounts WHERE email = $1`, email).
		Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &a, nil
}

// ListAll returns every account.
func (r *PGRepository) ListAll(ctx context.Context) ([]Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, role, created_at FROM accounts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("users: scan: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users: rows: %w", err)
	}
	return accounts, nil
}

var _ Repository = (*PGRepository)(nil)
