package puppy

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/response"
)

// Handler holds HTTP handlers for puppy endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new puppy Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func parseInput(r *http.Request) (Input, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return Input{}, fmt.Errorf("parse form: %w", err)
	}

	in := Input{
		Name:   r.FormValue("name"),
		Status: r.FormValue("status"),
		DadID:  r.FormValue("dad_id"),
		MomID:  r.FormValue("mom_id"),
	}
	if in.Status == "" {
		in.Status = "available"
	}

	if v := r.FormValue("birth_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Input{}, errors.New("birth_date must be YYYY-MM-DD")
		}
		in.BirthDate = d
	}

	var err error
	if in.MainImage, err = media.FileFromForm(r, "main_image"); err != nil {
		return Input{}, err
	}
	return in, nil
}

// List godoc
//
//	@Summary	List puppies
//	@Tags		puppies
//	@Produce	json
//	@Success	200	{object}	response.Envelope{data=[]Response}
//	@Failure	500	{object}	response.Envelope
//	@Router		/puppies [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	puppies, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToResponses(r.Context(), puppies))
}

// Get godoc
//
//	@Summary	Get one puppy
//	@Tags		puppies
//	@Produce	json
//	@Param		id	path		string	true	"Puppy ID"
//	@Success	200	{object}	response.Envelope{data=Response}
//	@Failure	404	{object}	response.Envelope
//	@Router		/puppies/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "puppy not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToResponse(r.Context(), p))
}

// Create godoc
//
//	@Summary		Create a puppy
//	@Description	Multipart form; main_image is stored as a single variant.
//	@Tags			puppies
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	response.Envelope{data=Response}
//	@Failure		400	{object}	response.Envelope
//	@Failure		422	{object}	response.Envelope
//	@Router			/admin/puppies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := parseInput(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeSaveError(w, err)
		return
	}
	response.Created(w, h.svc.ToResponse(r.Context(), p))
}

// Update godoc
//
//	@Summary	Update a puppy
//	@Tags		puppies
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Puppy ID"
//	@Success	200	{object}	response.Envelope{data=Response}
//	@Failure	404	{object}	response.Envelope
//	@Failure	422	{object}	response.Envelope
//	@Router		/admin/puppies/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	in, err := parseInput(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "puppy not found")
			return
		}
		writeSaveError(w, err)
		return
	}
	response.OK(w, h.svc.ToResponse(r.Context(), p))
}

// Delete godoc
//
//	@Summary	Delete a puppy
//	@Tags		puppies
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Puppy ID"
//	@Success	204
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/puppies/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "puppy not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
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
