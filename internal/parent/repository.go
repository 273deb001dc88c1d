// Package parent manages the breeding dogs (sires and dams) shown on the site.
package parent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Parent represents one breeding dog. Image fields hold opaque storage keys;
// signed URLs are resolved per render, never persisted.
type Parent struct {
	ID          string
	Name        string
	Role        string // "dad" or "mom"
	Breed       string
	BirthDate   *time.Time
	WeightKg    *float64
	HeightCm    *float64
	Description string
	IsActive    bool

	MainImageKey       string
	MainImageKeySmall  string
	MainImageKeyMedium string
	MainImageKeyLarge  string

	AlternateImageKeys [4]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImageKeys returns every storage key referenced by the record.
func (p *Parent) ImageKeys() []string {
	keys := make([]string, 0, 8)
	for _, k := range []string{
		p.MainImageKey, p.MainImageKeySmall, p.MainImageKeyMedium, p.MainImageKeyLarge,
		p.AlternateImageKeys[0], p.AlternateImageKeys[1], p.AlternateImageKeys[2], p.AlternateImageKeys[3],
	} {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ErrNotFound is returned when a parent does not exist.
var ErrNotFound = errors.New("parent not found")

const parentColumns = `id, name, role,
	COALESCE(breed, ''), birth_date, weight_kg, height_cm,
	COALESCE(description, ''), is_active,
	COALESCE(main_image_key, ''), COALESCE(main_image_key_small, ''),
	COALESCE(main_image_key_medium, ''), COALESCE(main_image_key_large, ''),
	COALESCE(alternate_image_key_1, ''), COALESCE(alternate_image_key_2, ''),
	COALESCE(alternate_image_key_3, ''), COALESCE(alternate_image_key_4, ''),
	created_at, updated_at`

// Repository handles all parent database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanParent(row pgx.Row) (*Parent, error) {
	p := &Parent{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Role,
		&p.Breed, &p.BirthDate, &p.WeightKg, &p.HeightCm,
		&p.Description, &p.IsActive,
		&p.MainImageKey, &p.MainImageKeySmall,
		&p.MainImageKeyMedium, &p.MainImageKeyLarge,
		&p.AlternateImageKeys[0], &p.AlternateImageKeys[1],
		&p.AlternateImageKeys[2], &p.AlternateImageKeys[3],
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan parent: %w", err)
	}
	return p, nil
}

// List returns parents ordered by name. With activeOnly, inactive dogs are
// skipped (the public site never shows them).
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*Parent, error) {
	q := `SELECT ` + parentColumns + ` FROM parents`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	defer rows.Close()

	var parents []*Parent
	for rows.Next() {
		p, err := scanParent(rows)
		if err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}
	return parents, rows.Err()
}

// GetByID fetches a parent by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Parent, error) {
	row := r.db.QueryRow(ctx, `SELECT `+parentColumns+` FROM parents WHERE id = $1`, id)
	return scanParent(row)
}

// Create inserts a new parent and returns the stored record.
func (r *Repository) Create(ctx context.Context, p *Parent) (*Parent, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO parents (
			name, role, breed, birth_date, weight_kg, height_cm, description, is_active,
			main_image_key, main_image_key_small, main_image_key_medium, main_image_key_large,
			alternate_image_key_1, alternate_image_key_2, alternate_image_key_3, alternate_image_key_4
		 ) VALUES (
			$1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8,
			NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''),
			NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, '')
		 ) RETURNING `+parentColumns,
		p.Name, p.Role, p.Breed, p.BirthDate, p.WeightKg, p.HeightCm, p.Description, p.IsActive,
		p.MainImageKey, p.MainImageKeySmall, p.MainImageKeyMedium, p.MainImageKeyLarge,
		p.AlternateImageKeys[0], p.AlternateImageKeys[1], p.AlternateImageKeys[2], p.AlternateImageKeys[3],
	)
	created, err := scanParent(row)
	if err != nil {
		return nil, fmt.Errorf("create parent: %w", err)
	}
	return created, nil
}

// Update overwrites an existing parent and returns the stored record.
func (r *Repository) Update(ctx context.Context, p *Parent) (*Parent, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE parents SET
			name = $2, role = $3, breed = NULLIF($4, ''), birth_date = $5,
			weight_kg = $6, height_cm = $7, description = NULLIF($8, ''), is_active = $9,
			main_image_key = NULLIF($10, ''), main_image_key_small = NULLIF($11, ''),
			main_image_key_medium = NULLIF($12, ''), main_image_key_large = NULLIF($13, ''),
			alternate_image_key_1 = NULLIF($14, ''), alternate_image_key_2 = NULLIF($15, ''),
			alternate_image_key_3 = NULLIF($16, ''), alternate_image_key_4 = NULLIF($17, ''),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+parentColumns,
		p.ID,
		p.Name, p.Role, p.Breed, p.BirthDate, p.WeightKg, p.HeightCm, p.Description, p.IsActive,
		p.MainImageKey, p.MainImageKeySmall, p.MainImageKeyMedium, p.MainImageKeyLarge,
		p.AlternateImageKeys[0], p.AlternateImageKeys[1], p.AlternateImageKeys[2], p.AlternateImageKeys[3],
	)
	return scanParent(row)
}

// Delete removes a parent record.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
