// Package puppy manages the individual puppies listed on the site.
package puppy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Puppy represents one puppy. MainImageKey is an opaque storage key; the
// signed URL is resolved per render.
type Puppy struct {
	ID           string
	Name         string
	BirthDate    time.Time
	Status       string // "available", "reserved", or "sold"
	DadID        string
	MomID        string
	MainImageKey string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ErrNotFound is returned when a puppy does not exist.
var ErrNotFound = errors.New("puppy not found")

const puppyColumns = `id, name, birth_date, status,
	COALESCE(dad_id::text, ''), COALESCE(mom_id::text, ''),
	COALESCE(main_image_key, ''), created_at, updated_at`

// Repository handles all puppy database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanPuppy(row pgx.Row) (*Puppy, error) {
	p := &Puppy{}
	err := row.Scan(
		&p.ID, &p.Name, &p.BirthDate, &p.Status,
		&p.DadID, &p.MomID,
		&p.MainImageKey, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan puppy: %w", err)
	}
	return p, nil
}

// List returns puppies, newest litters first.
func (r *Repository) List(ctx context.Context) ([]*Puppy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+puppyColumns+` FROM puppies ORDER BY birth_date DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list puppies: %w", err)
	}
	defer rows.Close()

	var puppies []*Puppy
	for rows.Next() {
		p, err := scanPuppy(rows)
		if err != nil {
			return nil, err
		}
		puppies = append(puppies, p)
	}
	return puppies, rows.Err()
}

// GetByID fetches a puppy by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Puppy, error) {
	row := r.db.QueryRow(ctx, `SELECT `+puppyColumns+` FROM puppies WHERE id = $1`, id)
	return scanPuppy(row)
}

// Create inserts a new puppy and returns the stored record.
func (r *Repository) Create(ctx context.Context, p *Puppy) (*Puppy, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO puppies (name, birth_date, status, dad_id, mom_id, main_image_key)
		 VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid, NULLIF($6, ''))
		 RETURNING `+puppyColumns,
		p.Name, p.BirthDate, p.Status, p.DadID, p.MomID, p.MainImageKey,
	)
	created, err := scanPuppy(row)
	if err != nil {
		return nil, fmt.Errorf("create puppy: %w", err)
	}
	return created, nil
}

// Update overwrites an existing puppy and returns the stored record.
func (r *Repository) Update(ctx context.Context, p *Puppy) (*Puppy, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE puppies SET
			name = $2, birth_date = $3, status = $4,
			dad_id = NULLIF($5, '')::uuid, mom_id = NULLIF($6, '')::uuid,
			main_image_key = NULLIF($7, ''), updated_at = now()
		 WHERE id = $1
		 RETURNING `+puppyColumns,
		p.ID, p.Name, p.BirthDate, p.Status, p.DadID, p.MomID, p.MainImageKey,
	)
	return scanPuppy(row)
}

// Delete removes a puppy record.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM puppies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete puppy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
