// Package sitecontent manages the editable homepage sections: hero, about,
// gallery, customer reviews, and the announcement banner.
package sitecontent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Hero is the homepage hero section. Singleton row, pinned to id 1.
type Hero struct {
	MainTitle           string
	Subtitle            string
	Description         string
	ScrollTextMain      string
	ScrollTextSecondary string

	ImageKey       string
	ImageKeySmall  string
	ImageKeyMedium string
	ImageKeyLarge  string

	UpdatedAt time.Time
}

// About is the homepage about section. Singleton row, pinned to id 1.
type About struct {
	Title       string
	ContentHTML string

	ImageKey       string
	ImageKeySmall  string
	ImageKeyMedium string
	ImageKeyLarge  string

	UpdatedAt time.Time
}

// GalleryImage is one photo in the homepage gallery.
type GalleryImage struct {
	ID        string
	ImageKey  string
	Caption   string
	SortOrder int
	CreatedAt time.Time
}

// Banner is the announcement banner. Singleton row, pinned to id 1.
type Banner struct {
	IsActive        bool
	MainText        string
	SubText         string
	ButtonText      string
	FeaturedPuppyID string
	UpdatedAt       time.Time
}

// Review is one customer testimonial. Featured reviews appear on the
// homepage.
type Review struct {
	ID              string
	AuthorName      string
	TestimonialText string
	IsFeatured      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ErrNotFound is returned when a gallery image or review does not exist.
var ErrNotFound = errors.New("record not found")

// Repository handles all site content database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetHero returns the hero section.
func (r *Repository) GetHero(ctx context.Context) (*Hero, error) {
	h := &Hero{}
	err := r.db.QueryRow(ctx,
		`SELECT main_title, subtitle, description, scroll_text_main, scroll_text_secondary,
			COALESCE(image_key, ''), COALESCE(image_key_small, ''),
			COALESCE(image_key_medium, ''), COALESCE(image_key_large, ''),
			updated_at
		 FROM hero_section WHERE id = 1`,
	).Scan(
		&h.MainTitle, &h.Subtitle, &h.Description, &h.ScrollTextMain, &h.ScrollTextSecondary,
		&h.ImageKey, &h.ImageKeySmall, &h.ImageKeyMedium, &h.ImageKeyLarge,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	return h, nil
}

// UpdateHero overwrites the hero section.
func (r *Repository) UpdateHero(ctx context.Context, h *Hero) error {
	_, err := r.db.Exec(ctx,
		`UPDATE hero_section SET
			main_title = $1, subtitle = $2, description = $3,
			scroll_text_main = $4, scroll_text_secondary = $5,
			image_key = NULLIF($6, ''), image_key_small = NULLIF($7, ''),
			image_key_medium = NULLIF($8, ''), image_key_large = NULLIF($9, ''),
			updated_at = now()
		 WHERE id = 1`,
		h.MainTitle, h.Subtitle, h.Description, h.ScrollTextMain, h.ScrollTextSecondary,
		h.ImageKey, h.ImageKeySmall, h.ImageKeyMedium, h.ImageKeyLarge,
	)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}
	return nil
}

// GetAbout returns the about section.
func (r *Repository) GetAbout(ctx context.Context) (*About, error) {
	a := &About{}
	err := r.db.QueryRow(ctx,
		`SELECT title, content_html,
			COALESCE(image_key, ''), COALESCE(image_key_small, ''),
			COALESCE(image_key_medium, ''), COALESCE(image_key_large, ''),
			updated_at
		 FROM about_section WHERE id = 1`,
	).Scan(
		&a.Title, &a.ContentHTML,
		&a.ImageKey, &a.ImageKeySmall, &a.ImageKeyMedium, &a.ImageKeyLarge,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return a, nil
}

// UpdateAbout overwrites the about section.
func (r *Repository) UpdateAbout(ctx context.Context, a *About) error {
	_, err := r.db.Exec(ctx,
		`UPDATE about_section SET
			title = $1, content_html = $2,
			image_key = NULLIF($3, ''), image_key_small = NULLIF($4, ''),
			image_key_medium = NULLIF($5, ''), image_key_large = NULLIF($6, ''),
			updated_at = now()
		 WHERE id = 1`,
		a.Title, a.ContentHTML,
		a.ImageKey, a.ImageKeySmall, a.ImageKeyMedium, a.ImageKeyLarge,
	)
	if err != nil {
		return fmt.Errorf("update about: %w", err)
	}
	return nil
}

// ListGallery returns gallery images in display order.
func (r *Repository) ListGallery(ctx context.Context) ([]*GalleryImage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, image_key, COALESCE(caption, ''), sort_order, created_at
		 FROM gallery_images ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	var images []*GalleryImage
	for rows.Next() {
		g := &GalleryImage{}
		if err := rows.Scan(&g.ID, &g.ImageKey, &g.Caption, &g.SortOrder, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

// GetGalleryImage fetches one gallery image.
func (r *Repository) GetGalleryImage(ctx context.Context, id string) (*GalleryImage, error) {
	g := &GalleryImage{}
	err := r.db.QueryRow(ctx,
		`SELECT id, image_key, COALESCE(caption, ''), sort_order, created_at
		 FROM gallery_images WHERE id = $1`, id,
	).Scan(&g.ID, &g.ImageKey, &g.Caption, &g.SortOrder, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gallery image: %w", err)
	}
	return g, nil
}

// CreateGalleryImage inserts a gallery image and returns the stored record.
func (r *Repository) CreateGalleryImage(ctx context.Context, g *GalleryImage) (*GalleryImage, error) {
	created := &GalleryImage{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO gallery_images (image_key, caption, sort_order)
		 VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id, image_key, COALESCE(caption, ''), sort_order, created_at`,
		g.ImageKey, g.Caption, g.SortOrder,
	).Scan(&created.ID, &created.ImageKey, &created.Caption, &created.SortOrder, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return created, nil
}

// DeleteGalleryImage removes a gallery image record.
func (r *Repository) DeleteGalleryImage(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListReviews returns reviews, newest first. With featuredOnly only the
// reviews highlighted for the homepage are returned.
func (r *Repository) ListReviews(ctx context.Context, featuredOnly bool) ([]*Review, error) {
	q := `SELECT id, author_name, testimonial_text, is_featured, created_at, updated_at
	      FROM reviews`
	if featuredOnly {
		q += ` WHERE is_featured`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		rv := &Review{}
		if err := rows.Scan(&rv.ID, &rv.AuthorName, &rv.TestimonialText, &rv.IsFeatured, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// GetReview fetches one review.
func (r *Repository) GetReview(ctx context.Context, id string) (*Review, error) {
	rv := &Review{}
	err := r.db.QueryRow(ctx,
		`SELECT id, author_name, testimonial_text, is_featured, created_at, updated_at
		 FROM reviews WHERE id = $1`, id,
	).Scan(&rv.ID, &rv.AuthorName, &rv.TestimonialText, &rv.IsFeatured, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rv, nil
}

// CreateReview inserts a review and returns the stored record.
func (r *Repository) CreateReview(ctx context.Context, rv *Review) (*Review, error) {
	created := &Review{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (author_name, testimonial_text, is_featured)
		 VALUES ($1, $2, $3)
		 RETURNING id, author_name, testimonial_text, is_featured, created_at, updated_at`,
		rv.AuthorName, rv.TestimonialText, rv.IsFeatured,
	).Scan(&created.ID, &created.AuthorName, &created.TestimonialText, &created.IsFeatured, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return created, nil
}

// UpdateReview overwrites an existing review and returns the stored record.
func (r *Repository) UpdateReview(ctx context.Context, rv *Review) (*Review, error) {
	updated := &Review{}
	err := r.db.QueryRow(ctx,
		`UPDATE reviews SET
			author_name = $2, testimonial_text = $3, is_featured = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING id, author_name, testimonial_text, is_featured, created_at, updated_at`,
		rv.ID, rv.AuthorName, rv.TestimonialText, rv.IsFeatured,
	).Scan(&updated.ID, &updated.AuthorName, &updated.TestimonialText, &updated.IsFeatured, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return updated, nil
}

// DeleteReview removes a review record.
func (r *Repository) DeleteReview(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetBanner returns the announcement banner.
func (r *Repository) GetBanner(ctx context.Context) (*Banner, error) {
	b := &Banner{}
	err := r.db.QueryRow(ctx,
		`SELECT is_active, main_text, sub_text, button_text,
			COALESCE(featured_puppy_id::text, ''), updated_at
		 FROM announcement_banner WHERE id = 1`,
	).Scan(&b.IsActive, &b.MainText, &b.SubText, &b.ButtonText, &b.FeaturedPuppyID, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return b, nil
}

// UpdateBanner overwrites the announcement banner.
func (r *Repository) UpdateBanner(ctx context.Context, b *Banner) error {
	_, err := r.db.Exec(ctx,
		`UPDATE announcement_banner SET
			is_active = $1, main_text = $2, sub_text = $3, button_text = $4,
			featured_puppy_id = NULLIF($5, '')::uuid, updated_at = now()
		 WHERE id = 1`,
		b.IsActive, b.MainText, b.SubText, b.ButtonText, b.FeaturedPuppyID,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}
