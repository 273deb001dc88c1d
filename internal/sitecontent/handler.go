package sitecontent

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/response"
)

// Handler holds HTTP handlers for homepage content endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new sitecontent Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Home godoc
//
//	@Summary		Homepage content
//	@Description	Returns hero, about, gallery, and banner with signed image URLs. URLs are short-lived; fetch again on each render.
//	@Tags			site
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=HomeResponse}
//	@Failure		500	{object}	response.Envelope
//	@Router			/home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.svc.Home(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, home)
}

// UpdateHero godoc
//
//	@Summary	Update the hero section
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.Envelope{data=HeroResponse}
//	@Failure	422	{object}	response.Envelope
//	@Router		/admin/hero [put]
func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}

	img, err := media.FileFromForm(r, "image")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	hero, err := h.svc.UpdateHero(r.Context(), HeroInput{
		MainTitle:           r.FormValue("main_title"),
		Subtitle:            r.FormValue("subtitle"),
		Description:         r.FormValue("description"),
		ScrollTextMain:      r.FormValue("scroll_text_main"),
		ScrollTextSecondary: r.FormValue("scroll_text_secondary"),
		Image:               img,
	})
	if err != nil {
		writeSaveError(w, err)
		return
	}
	response.OK(w, h.svc.ToHeroResponse(r.Context(), hero))
}

// UpdateAbout godoc
//
//	@Summary	Update the about section
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.Envelope{data=AboutResponse}
//	@Failure	422	{object}	response.Envelope
//	@Router		/admin/about [put]
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}

	img, err := media.FileFromForm(r, "image")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	about, err := h.svc.UpdateAbout(r.Context(), AboutInput{
		Title:       r.FormValue("title"),
		ContentHTML: r.FormValue("content_html"),
		Image:       img,
	})
	if err != nil {
		writeSaveError(w, err)
		return
	}
	response.OK(w, h.svc.ToAboutResponse(r.Context(), about))
}

// AddGalleryImage godoc
//
//	@Summary	Add a gallery image
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	response.Envelope{data=GalleryImageResponse}
//	@Failure	400	{object}	response.Envelope
//	@Failure	422	{object}	response.Envelope
//	@Router		/admin/gallery [post]
func (h *Handler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}

	img, err := media.FileFromForm(r, "image")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if img == nil {
		response.BadRequest(w, "image is required")
		return
	}

	sortOrder := 0
	if v := r.FormValue("sort_order"); v != "" {
		if sortOrder, err = strconv.Atoi(v); err != nil {
			response.BadRequest(w, "sort_order must be an integer")
			return
		}
	}

	g, err := h.svc.AddGalleryImage(r.Context(), img, r.FormValue("caption"), sortOrder)
	if err != nil {
		writeSaveError(w, err)
		return
	}

	responses := h.svc.ToGalleryResponses(r.Context(), []*GalleryImage{g})
	response.Created(w, responses[0])
}

// DeleteGalleryImage godoc
//
//	@Summary	Delete a gallery image
//	@Tags		site
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Gallery image ID"
//	@Success	204
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/gallery/{id} [delete]
func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGalleryImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "gallery image not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}

func parseReviewInput(r *http.Request) (ReviewInput, error) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return ReviewInput{}, err
	}
	return ReviewInput{
		AuthorName:      r.FormValue("author_name"),
		TestimonialText: r.FormValue("testimonial_text"),
		IsFeatured:      r.FormValue("is_featured") == "true",
	}, nil
}

// ListReviews godoc
//
//	@Summary	List reviews
//	@Tags		site
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.Envelope{data=[]ReviewResponse}
//	@Failure	500	{object}	response.Envelope
//	@Router		/admin/reviews [get]
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToReviewResponses(reviews))
}

// AddReview godoc
//
//	@Summary	Add a review
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	response.Envelope{data=ReviewResponse}
//	@Failure	400	{object}	response.Envelope
//	@Router		/admin/reviews [post]
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	in, err := parseReviewInput(r)
	if err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	rv, err := h.svc.AddReview(r.Context(), in)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.Created(w, h.svc.ToReviewResponses([]*Review{rv})[0])
}

// UpdateReview godoc
//
//	@Summary	Update a review
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Review ID"
//	@Success	200	{object}	response.Envelope{data=ReviewResponse}
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/reviews/{id} [put]
func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	in, err := parseReviewInput(r)
	if err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	rv, err := h.svc.UpdateReview(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "review not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToReviewResponses([]*Review{rv})[0])
}

// DeleteReview godoc
//
//	@Summary	Delete a review
//	@Tags		site
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Review ID"
//	@Success	204
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/reviews/{id} [delete]
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "review not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}

// UpdateBanner godoc
//
//	@Summary	Update the announcement banner
//	@Tags		site
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.Envelope{data=BannerResponse}
//	@Failure	500	{object}	response.Envelope
//	@Router		/admin/banner [put]
func (h *Handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		response.BadRequest(w, "parse form: "+err.Error())
		return
	}

	banner, err := h.svc.UpdateBanner(r.Context(), BannerInput{
		IsActive:        r.FormValue("is_active") == "true",
		MainText:        r.FormValue("main_text"),
		SubText:         r.FormValue("sub_text"),
		ButtonText:      r.FormValue("button_text"),
		FeaturedPuppyID: r.FormValue("featured_puppy_id"),
	})
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToBannerResponse(banner))
}

func writeSaveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrDecode):
		response.UnprocessableEntity(w, "uploaded file is not a supported image")
	case errors.Is(err, media.ErrUpload):
		response.UnprocessableEntity(w, "image upload failed, please try again")
	default:
		response.InternalError(w)
	}
}
