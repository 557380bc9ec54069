package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// Repository defines persistence operations for listings. Identifiers are
// UUID strings validated by the service layer before they reach SQL.
type Repository interface {
	Create(ctx context.Context, f Fields, ownerEmail string) (*Listing, error)
	ListAll(ctx context.Context) ([]Listing, error)
	ListByOwner(ctx context.Context, email string) ([]Listing, error)
	GetByID(ctx context.Context, id string) (*Listing, error)
	ReplaceByID(ctx context.Context, id string, f Fields) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const listingColumns = `id::text, name, address, city, bedrooms, bathrooms,
	room_size, date, rent, number, description, owner_email, created_at`

func scanListing(row pgx.Row) (*Listing, error) {
	var l Listing
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Bedrooms,
		&l.Bathrooms, &l.RoomSize, &l.Date, &l.Rent, &l.Number,
		&l.Description, &l.OwnerEmail, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a listing stamped with the creator's email.
func (r *PGRepository) Create(ctx context.Context, f Fields, ownerEmail string) (*Listing, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO houses
			(name, address, city, bedrooms, bathrooms, room_size, date, rent, number, description, owner_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+listingColumns,
		f.Name, f.Address, f.City, f.Bedrooms, f.Bathrooms, f.RoomSize,
		f.Date, f.Rent, f.Number, f.Description, ownerEmail)
	listing, err := scanListing(row)
	if err != nil {
		return nil, fmt.Errorf("listings: create: %w", err)
	}
	return listing, nil
}

// ListAll returns every listing.
func (r *PGRepository) ListAll(ctx context.Context) ([]Listing, error) {
	return r.list(ctx, `SELECT `+listingColumns+` FROM houses ORDER BY created_at`)
}

// ListByOwner returns listings whose owner email matches exactly.
func (r *PGRepository) ListByOwner(ctx context.Context, email string) ([]Listing, error) {
	return r.list(ctx, `SELECT `+listingColumns+` FROM houses WHERE owner_email = $1 ORDER BY created_at`, email)
}

func (r *PGRepository) list(ctx context.Context, query string, args ...any) ([]Listing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listings: list: %w", err)
	}
	defer rows.Close()

	var result []Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("listings: scan: %w", err)
		}
		result = append(result, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listings: rows: %w", err)
	}
	return result, nil
}

// GetByID fetches one listing.
func (r *PGRepository) GetByID(ctx context.Context, id string) (*Listing, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM houses WHERE id = $1::uuid`, id)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, fmt.Errorf("listings: get by id: %w", err)
	}
	return listing, nil
}

// ReplaceByID overwrites the replaceable field set and reports how many
// rows matched. Zero matches is not an error.
func (r *PGRepository) ReplaceByID(ctx context.Context, id string, f Fields) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE houses SET
			name = $1, address = $2, city = $3, bedrooms = $4, bathrooms = $5,
			room_size = $6, date = $7, rent = $8, number = $9, description = $10
		WHERE id = $11::uuid`,
		f.Name, f.Address, f.City, f.Bedrooms, f.Bathrooms, f.RoomSize,
		f.Date, f.Rent, f.Number, f.Description, id)
	if err != nil {
		return 0, fmt.Errorf("listings: replace: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByID removes one listing and reports how many rows were deleted.
func (r *PGRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM houses WHERE id = $1::uuid`, id)
	if err != nil {
		return 0, fmt.Errorf("listings: delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

var _ Repository = (*PGRepository)(nil)
