package parent

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goldenpaws/service/internal/media"
	"github.com/goldenpaws/service/internal/response"
)

// Handler holds HTTP handlers for parent endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new parent Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// parseInput reads the multipart form shared by create and update. Image
// files are optional on both paths.
func parseInput(r *http.Request) (Input, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return Input{}, fmt.Errorf("parse form: %w", err)
	}

	in := Input{
		Name:        r.FormValue("name"),
		Role:        r.FormValue("role"),
		Breed:       r.FormValue("breed"),
		Description: r.FormValue("description"),
		IsActive:    r.FormValue("is_active") != "false",
	}

	if v := r.FormValue("birth_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Input{}, errors.New("birth_date must be YYYY-MM-DD")
		}
		in.BirthDate = &d
	}
	if v := r.FormValue("weight_kg"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Input{}, errors.New("weight_kg must be a number")
		}
		in.WeightKg = &f
	}
	if v := r.FormValue("height_cm"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Input{}, errors.New("height_cm must be a number")
		}
		in.HeightCm = &f
	}

	var err error
	if in.MainImage, err = media.FileFromForm(r, "main_image"); err != nil {
		return Input{}, err
	}
	for i := range in.Alternates {
		field := fmt.Sprintf("alternate_image_%d", i+1)
		if in.Alternates[i], err = media.FileFromForm(r, field); err != nil {
			return Input{}, err
		}
	}

	return in, nil
}

// List godoc
//
//	@Summary		List parents
//	@Description	Returns all parent dogs with signed image URLs. Public callers see active dogs only.
//	@Tags			parents
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]Response}
//	@Failure		500	{object}	response.Envelope
//	@Router			/parents [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	parents, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToResponses(r.Context(), parents))
}

// Get godoc
//
//	@Summary	Get one parent
//	@Tags		parents
//	@Produce	json
//	@Param		id	path		string	true	"Parent ID"
//	@Success	200	{object}	response.Envelope{data=Response}
//	@Failure	404	{object}	response.Envelope
//	@Router		/parents/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "parent not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, h.svc.ToResponse(r.Context(), p))
}

// Create godoc
//
//	@Summary		Create a parent
//	@Description	Multipart form. main_image is stored responsively; alternate_image_1..4 as single variants. An image failure blocks the save.
//	@Tags			parents
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	response.Envelope{data=Response}
//	@Failure		400	{object}	response.Envelope
//	@Failure		422	{object}	response.Envelope
//	@Router			/admin/parents [post]
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
//	@Summary	Update a parent
//	@Tags		parents
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Parent ID"
//	@Success	200	{object}	response.Envelope{data=Response}
//	@Failure	404	{object}	response.Envelope
//	@Failure	422	{object}	response.Envelope
//	@Router		/admin/parents/{id} [put]
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
			response.NotFound(w, "parent not found")
			return
		}
		writeSaveError(w, err)
		return
	}
	response.OK(w, h.svc.ToResponse(r.Context(), p))
}

// Delete godoc
//
//	@Summary	Delete a parent
//	@Tags		parents
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Parent ID"
//	@Success	204
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/parents/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "parent not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}

// writeSaveError maps pipeline failures onto the admin form: an unreadable
// image or a storage failure blocks the save with a validation-style message
// instead of a bare 500.
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
