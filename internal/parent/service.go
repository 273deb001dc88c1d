package parent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/storage"
)

// Folders used for parent imagery in the storage backend.
const (
	folderMain       = "parents"
	folderAlternates = "parents_alternates"
)

// Input carries the fields and optional file uploads for a create or update.
// A nil image leaves the stored keys untouched on update.
type Input struct {
	Name        string
	Role        string
	Breed       string
	BirthDate   *time.Time
	WeightKg    *float64
	HeightCm    *float64
	Description string
	IsActive    bool

	MainImage  *media.File
	Alternates [4]*media.File
}

// Validate checks the writable fields.
func (in *Input) Validate() error {
	if in.Name == "" {
		return errors.New("name is required")
	}
	if in.Role != "dad" && in.Role != "mom" {
		return errors.New(`role must be "dad" or "mom"`)
	}
	return nil
}

// Service contains business logic for parent management, including the
// image ingestion on create and update.
type Service struct {
	repo     *Repository
	pipeline *media.Pipeline
	resolver *media.Resolver
	store    storage.Storage
}

// NewService creates a new parent Service.
func NewService(repo *Repository, pipeline *media.Pipeline, resolver *media.Resolver, store storage.Storage) *Service {
	return &Service{repo: repo, pipeline: pipeline, resolver: resolver, store: store}
}

// Create stores any uploaded images and inserts the record. An image failure
// aborts the create: no record is persisted, so no stored key ever points at
// a half-uploaded asset.
func (s *Service) Create(ctx context.Context, in Input) (*Parent, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &Parent{}
	applyInput(p, in)

	if err := s.applyImages(ctx, p, in); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, p)
}

// Update stores any newly uploaded images and overwrites the record. Keys of
// replaced images are left in storage for the sweep to reclaim.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Parent, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(p, in)
	if err := s.applyImages(ctx, p, in); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, p)
}

// Delete removes the record and best-effort deletes its stored images.
// Storage failures are logged, not propagated: the record removal is the
// authoritative act and the sweep catches leftovers.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, key := range p.ImageKeys() {
		if err := s.store.Delete(ctx, key); err != nil {
			log.Printf("parent: delete object %q: %v", key, err)
		}
		s.resolver.Invalidate(key)
	}
	return nil
}

// GetByID returns one parent.
func (s *Service) GetByID(ctx context.Context, id string) (*Parent, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all parents, or only active ones.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Parent, error) {
	return s.repo.List(ctx, activeOnly)
}

// IsNotFound returns true when the error indicates a missing parent.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func applyInput(p *Parent, in Input) {
	p.Name = in.Name
	p.Role = in.Role
	p.Breed = in.Breed
	p.BirthDate = in.BirthDate
	p.WeightKg = in.WeightKg
	p.HeightCm = in.HeightCm
	p.Description = in.Description
	p.IsActive = in.IsActive
}

// applyImages runs the uploads: the main image responsively, alternates as
// single variants. Mutates p only on success of each upload.
func (s *Service) applyImages(ctx context.Context, p *Parent, in Input) error {
	if in.MainImage != nil {
		asset, err := s.pipeline.Store(ctx, in.MainImage.Data, in.MainImage.Name, folderMain, true)
		if err != nil {
			return fmt.Errorf("main image: %w", err)
		}
		p.MainImageKey = asset.OriginalKey()
		p.MainImageKeySmall = asset["small"]
		p.MainImageKeyMedium = asset["medium"]
		p.MainImageKeyLarge = asset["large"]
	}

	for i, f := range in.Alternates {
		if f == nil {
			continue
		}
		asset, err := s.pipeline.Store(ctx, f.Data, f.Name, folderAlternates, false)
		if err != nil {
			return fmt.Errorf("alternate image %d: %w", i+1, err)
		}
		p.AlternateImageKeys[i] = asset.OriginalKey()
	}
	return nil
}

// ImageURLs is the resolved, short-lived view of a parent's responsive image.
type ImageURLs struct {
	Original string `json:"original,omitempty"`
	Small    string `json:"small,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Large    string `json:"large,omitempty"`
}

// Response is the JSON shape handed to consumers. URLs are resolved per
// render and must not be persisted by callers.
type Response struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Breed       string     `json:"breed,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	WeightKg    *float64   `json:"weightKg,omitempty"`
	HeightCm    *float64   `json:"heightCm,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"isActive"`

	MainImage       ImageURLs `json:"mainImage"`
	AlternateImages []string  `json:"alternateImages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse resolves the stored keys into signed URLs for one render.
func (s *Service) ToResponse(ctx context.Context, p *Parent) *Response {
	resp := &Response{
		ID:          p.ID,
		Name:        p.Name,
		Role:        p.Role,
		Breed:       p.Breed,
		BirthDate:   p.BirthDate,
		WeightKg:    p.WeightKg,
		HeightCm:    p.HeightCm,
		Description: p.Description,
		IsActive:    p.IsActive,
		MainImage: ImageURLs{
			Original: s.resolver.Resolve(ctx, p.MainImageKey),
			Small:    s.resolver.Resolve(ctx, p.MainImageKeySmall),
			Medium:   s.resolver.Resolve(ctx, p.MainImageKeyMedium),
			Large:    s.resolver.Resolve(ctx, p.MainImageKeyLarge),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, key := range p.AlternateImageKeys {
		if url := s.resolver.Resolve(ctx, key); url != "" {
			resp.AlternateImages = append(resp.AlternateImages, url)
		}
	}
	return resp
}

// ToResponses maps a list of parents for one render.
func (s *Service) ToResponses(ctx context.Context, parents []*Parent) []*Response {
	out := make([]*Response, 0, len(parents))
	for _, p := range parents {
		out = append(out, s.ToResponse(ctx, p))
	}
	return out
}
