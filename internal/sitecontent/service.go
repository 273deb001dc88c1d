package sitecontent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/storage"
)

// Folders used for homepage imagery in the storage backend.
const (
	folderHero    = "hero"
	folderAbout   = "about"
	folderGallery = "gallery"
)

// Service contains business logic for the homepage sections.
type Service struct {
	repo     *Repository
	pipeline *media.Pipeline
	resolver *media.Resolver
	store    storage.Storage
}

// NewService creates a new sitecontent Service.
func NewService(repo *Repository, pipeline *media.Pipeline, resolver *media.Resolver, store storage.Storage) *Service {
	return &Service{repo: repo, pipeline: pipeline, resolver: resolver, store: store}
}

// HeroInput carries the editable hero fields and an optional new image.
type HeroInput struct {
	MainTitle           string
	Subtitle            string
	Description         string
	ScrollTextMain      string
	ScrollTextSecondary string
	Image               *media.File
}

// UpdateHero stores a new hero image (responsive) if provided and saves the
// section. An image failure aborts the save.
func (s *Service) UpdateHero(ctx context.Context, in HeroInput) (*Hero, error) {
	h, err := s.repo.GetHero(ctx)
	if err != nil {
		return nil, err
	}

	h.MainTitle = in.MainTitle
	h.Subtitle = in.Subtitle
	h.Description = in.Description
	h.ScrollTextMain = in.ScrollTextMain
	h.ScrollTextSecondary = in.ScrollTextSecondary

	if in.Image != nil {
		asset, err := s.pipeline.Store(ctx, in.Image.Data, in.Image.Name, folderHero, true)
		if err != nil {
			return nil, fmt.Errorf("hero image: %w", err)
		}
		h.ImageKey = asset.OriginalKey()
		h.ImageKeySmall = asset["small"]
		h.ImageKeyMedium = asset["medium"]
		h.ImageKeyLarge = asset["large"]
	}

	if err := s.repo.UpdateHero(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// AboutInput carries the editable about fields and an optional new image.
type AboutInput struct {
	Title       string
	ContentHTML string
	Image       *media.File
}

// UpdateAbout stores a new about image (responsive) if provided and saves
// the section.
func (s *Service) UpdateAbout(ctx context.Context, in AboutInput) (*About, error) {
	a, err := s.repo.GetAbout(ctx)
	if err != nil {
		return nil, err
	}

	a.Title = in.Title
	a.ContentHTML = in.ContentHTML

	if in.Image != nil {
		asset, err := s.pipeline.Store(ctx, in.Image.Data, in.Image.Name, folderAbout, true)
		if err != nil {
			return nil, fmt.Errorf("about image: %w", err)
		}
		a.ImageKey = asset.OriginalKey()
		a.ImageKeySmall = asset["small"]
		a.ImageKeyMedium = asset["medium"]
		a.ImageKeyLarge = asset["large"]
	}

	if err := s.repo.UpdateAbout(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddGalleryImage uploads the image as a single variant and inserts the
// record. The image is required here, unlike the other sections.
func (s *Service) AddGalleryImage(ctx context.Context, file *media.File, caption string, sortOrder int) (*GalleryImage, error) {
	if file == nil {
		return nil, errors.New("image is required")
	}

	asset, err := s.pipeline.Store(ctx, file.Data, file.Name, folderGallery, false)
	if err != nil {
		return nil, fmt.Errorf("gallery image: %w", err)
	}

	return s.repo.CreateGalleryImage(ctx, &GalleryImage{
		ImageKey:  asset.OriginalKey(),
		Caption:   caption,
		SortOrder: sortOrder,
	})
}

// DeleteGalleryImage removes the record and best-effort deletes the object.
func (s *Service) DeleteGalleryImage(ctx context.Context, id string) error {
	g, err := s.repo.GetGalleryImage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteGalleryImage(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, g.ImageKey); err != nil {
		log.Printf("sitecontent: delete object %q: %v", g.ImageKey, err)
	}
	s.resolver.Invalidate(g.ImageKey)
	return nil
}

// ReviewInput carries the editable fields of a customer testimonial.
type ReviewInput struct {
	AuthorName      string
	TestimonialText string
	IsFeatured      bool
}

// Validate checks the writable fields.
func (in *ReviewInput) Validate() error {
	if in.AuthorName == "" {
		return errors.New("author_name is required")
	}
	if in.TestimonialText == "" {
		return errors.New("testimonial_text is required")
	}
	return nil
}

// AddReview inserts a testimonial.
func (s *Service) AddReview(ctx context.Context, in ReviewInput) (*Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.CreateReview(ctx, &Review{
		AuthorName:      in.AuthorName,
		TestimonialText: in.TestimonialText,
		IsFeatured:      in.IsFeatured,
	})
}

// UpdateReview overwrites a testimonial.
func (s *Service) UpdateReview(ctx context.Context, id string, in ReviewInput) (*Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateReview(ctx, &Review{
		ID:              id,
		AuthorName:      in.AuthorName,
		TestimonialText: in.TestimonialText,
		IsFeatured:      in.IsFeatured,
	})
}

// DeleteReview removes a testimonial.
func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return s.repo.DeleteReview(ctx, id)
}

// ListReviews returns all testimonials for the admin back office.
func (s *Service) ListReviews(ctx context.Context) ([]*Review, error) {
	return s.repo.ListReviews(ctx, false)
}

// BannerInput carries the editable announcement banner fields.
type BannerInput struct {
	IsActive        bool
	MainText        string
	SubText         string
	ButtonText      string
	FeaturedPuppyID string
}

// UpdateBanner saves the announcement banner.
func (s *Service) UpdateBanner(ctx context.Context, in BannerInput) (*Banner, error) {
	b, err := s.repo.GetBanner(ctx)
	if err != nil {
		return nil, err
	}

	b.IsActive = in.IsActive
	b.MainText = in.MainText
	b.SubText = in.SubText
	b.ButtonText = in.ButtonText
	b.FeaturedPuppyID = in.FeaturedPuppyID

	if err := s.repo.UpdateBanner(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// IsNotFound returns true when the error indicates a missing gallery image.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ImageURLs is the resolved view of a responsive section image.
type ImageURLs struct {
	Original string `json:"original,omitempty"`
	Small    string `json:"small,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Large    string `json:"large,omitempty"`
}

// HeroResponse is the JSON shape of the hero section.
type HeroResponse struct {
	MainTitle           string    `json:"mainTitle"`
	Subtitle            string    `json:"subtitle"`
	Description         string    `json:"description"`
	ScrollTextMain      string    `json:"scrollTextMain"`
	ScrollTextSecondary string    `json:"scrollTextSecondary"`
	Image               ImageURLs `json:"image"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// AboutResponse is the JSON shape of the about section.
type AboutResponse struct {
	Title       string    `json:"title"`
	ContentHTML string    `json:"contentHtml"`
	Image       ImageURLs `json:"image"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GalleryImageResponse is the JSON shape of one gallery image.
type GalleryImageResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewResponse is the JSON shape of one testimonial.
type ReviewResponse struct {
	ID              string    `json:"id"`
	AuthorName      string    `json:"authorName"`
	TestimonialText string    `json:"testimonialText"`
	IsFeatured      bool      `json:"isFeatured"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BannerResponse is the JSON shape of the announcement banner.
type BannerResponse struct {
	IsActive        bool      `json:"isActive"`
	MainText        string    `json:"mainText"`
	SubText         string    `json:"subText"`
	ButtonText      string    `json:"buttonText"`
	FeaturedPuppyID string    `json:"featuredPuppyId,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HomeResponse aggregates everything the public homepage renders. Reviews
// holds featured testimonials only, newest first.
type HomeResponse struct {
	Hero    *HeroResponse          `json:"hero"`
	About   *AboutResponse         `json:"about"`
	Gallery []GalleryImageResponse `json:"gallery"`
	Reviews []ReviewResponse       `json:"reviews"`
	Banner  *BannerResponse        `json:"banner"`
}

// Home loads all homepage sections with signed URLs resolved for one render.
func (s *Service) Home(ctx context.Context) (*HomeResponse, error) {
	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	about, err := s.repo.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	gallery, err := s.repo.ListGallery(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.ListReviews(ctx, true)
	if err != nil {
		return nil, err
	}
	banner, err := s.repo.GetBanner(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeResponse{
		Hero:    s.ToHeroResponse(ctx, hero),
		About:   s.ToAboutResponse(ctx, about),
		Gallery: s.ToGalleryResponses(ctx, gallery),
		Reviews: s.ToReviewResponses(reviews),
		Banner:  s.ToBannerResponse(banner),
	}, nil
}

// ToHeroResponse resolves the hero image keys for one render.
func (s *Service) ToHeroResponse(ctx context.Context, h *Hero) *HeroResponse {
	return &HeroResponse{
		MainTitle:           h.MainTitle,
		Subtitle:            h.Subtitle,
		Description:         h.Description,
		ScrollTextMain:      h.ScrollTextMain,
		ScrollTextSecondary: h.ScrollTextSecondary,
		Image: ImageURLs{
			Original: s.resolver.Resolve(ctx, h.ImageKey),
			Small:    s.resolver.Resolve(ctx, h.ImageKeySmall),
			Medium:   s.resolver.Resolve(ctx, h.ImageKeyMedium),
			Large:    s.resolver.Resolve(ctx, h.ImageKeyLarge),
		},
		UpdatedAt: h.UpdatedAt,
	}
}

// ToAboutResponse resolves the about image keys for one render.
func (s *Service) ToAboutResponse(ctx context.Context, a *About) *AboutResponse {
	return &AboutResponse{
		Title:       a.Title,
		ContentHTML: a.ContentHTML,
		Image: ImageURLs{
			Original: s.resolver.Resolve(ctx, a.ImageKey),
			Small:    s.resolver.Resolve(ctx, a.ImageKeySmall),
			Medium:   s.resolver.Resolve(ctx, a.ImageKeyMedium),
			Large:    s.resolver.Resolve(ctx, a.ImageKeyLarge),
		},
		UpdatedAt: a.UpdatedAt,
	}
}

// ToGalleryResponses resolves gallery image keys for one render.
func (s *Service) ToGalleryResponses(ctx context.Context, images []*GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, g := range images {
		out = append(out, GalleryImageResponse{
			ID:        g.ID,
			ImageURL:  s.resolver.Resolve(ctx, g.ImageKey),
			Caption:   g.Caption,
			SortOrder: g.SortOrder,
			CreatedAt: g.CreatedAt,
		})
	}
	return out
}

// ToReviewResponses maps reviews.
func (s *Service) ToReviewResponses(reviews []*Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ReviewResponse{
			ID:              rv.ID,
			AuthorName:      rv.AuthorName,
			TestimonialText: rv.TestimonialText,
			IsFeatured:      rv.IsFeatured,
			CreatedAt:       rv.CreatedAt,
		})
	}
	return out
}

// ToBannerResponse maps the banner.
func (s *Service) ToBannerResponse(b *Banner) *BannerResponse {
	return &BannerResponse{
		IsActive:        b.IsActive,
		MainText:        b.MainText,
		SubText:         b.SubText,
		ButtonText:      b.ButtonText,
		FeaturedPuppyID: b.FeaturedPuppyID,
		UpdatedAt:       b.UpdatedAt,
	}
}
