package puppy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/storage"
)

const folder = "puppies"

var validStatuses = map[string]bool{
	"available": true,
	"reserved":  true,
	"sold":      true,
}

// Input carries the fields and optional main image for a create or update.
type Input struct {
	Name      string
	BirthDate time.Time
	Status    string
	DadID     string
	MomID     string

	MainImage *media.File
}

// Validate checks the writable fields.
func (in *Input) Validate() error {
	if in.Name == "" {
		return errors.New("name is required")
	}
	if in.BirthDate.IsZero() {
		return errors.New("birth_date is required")
	}
	if !validStatuses[in.Status] {
		return errors.New(`status must be "available", "reserved", or "sold"`)
	}
	return nil
}

// Service contains business logic for puppy management.
type Service struct {
	repo     *Repository
	pipeline *media.Pipeline
	resolver *media.Resolver
	store    storage.Storage
}

// NewService creates a new puppy Service.
func NewService(repo *Repository, pipeline *media.Pipeline, resolver *media.Resolver, store storage.Storage) *Service {
	return &Service{repo: repo, pipeline: pipeline, resolver: resolver, store: store}
}

// Create stores the optional main image (single variant) and inserts the
// record. An image failure aborts the create.
func (s *Service) Create(ctx context.Context, in Input) (*Puppy, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &Puppy{
		Name:      in.Name,
		BirthDate: in.BirthDate,
		Status:    in.Status,
		DadID:     in.DadID,
		MomID:     in.MomID,
	}
	if err := s.applyImage(ctx, p, in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Update stores a newly uploaded image if present and overwrites the record.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Puppy, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.BirthDate = in.BirthDate
	p.Status = in.Status
	p.DadID = in.DadID
	p.MomID = in.MomID
	if err := s.applyImage(ctx, p, in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

// Delete removes the record and best-effort deletes its stored image.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if p.MainImageKey != "" {
		if err := s.store.Delete(ctx, p.MainImageKey); err != nil {
			log.Printf("puppy: delete object %q: %v", p.MainImageKey, err)
		}
		s.resolver.Invalidate(p.MainImageKey)
	}
	return nil
}

// GetByID returns one puppy.
func (s *Service) GetByID(ctx context.Context, id string) (*Puppy, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all puppies.
func (s *Service) List(ctx context.Context) ([]*Puppy, error) {
	return s.repo.List(ctx)
}

// IsNotFound returns true when the error indicates a missing puppy.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func (s *Service) applyImage(ctx context.Context, p *Puppy, in Input) error {
	if in.MainImage == nil {
		return nil
	}
	asset, err := s.pipeline.Store(ctx, in.MainImage.Data, in.MainImage.Name, folder, false)
	if err != nil {
		return fmt.Errorf("main image: %w", err)
	}
	p.MainImageKey = asset.OriginalKey()
	return nil
}

// Response is the JSON shape handed to consumers.
type Response struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BirthDate    time.Time `json:"birthDate"`
	Status       string    `json:"status"`
	DadID        string    `json:"dadId,omitempty"`
	MomID        string    `json:"momId,omitempty"`
	MainImageURL string    `json:"mainImageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToResponse resolves the stored key into a signed URL for one render.
func (s *Service) ToResponse(ctx context.Context, p *Puppy) *Response {
	return &Response{
		ID:           p.ID,
		Name:         p.Name,
		BirthDate:    p.BirthDate,
		Status:       p.Status,
		DadID:        p.DadID,
		MomID:        p.MomID,
		MainImageURL: s.resolver.Resolve(ctx, p.MainImageKey),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToResponses maps a list of puppies for one render.
func (s *Service) ToResponses(ctx context.Context, puppies []*Puppy) []*Response {
	out := make([]*Response, 0, len(puppies))
	for _, p := range puppies {
		out = append(out, s.ToResponse(ctx, p))
	}
	return out
}
