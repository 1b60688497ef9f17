package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

type CategoryRequestHandler struct {
	Handler
	requestRepo repositories.CategoryRequestRepositoryImpl
}

func NewCategoryRequestHandler(
	render *render.Render,
	validator *validator.Validate,
	requestRepo repositories.CategoryRequestRepositoryImpl,
) *CategoryRequestHandler {
	return &CategoryRequestHandler{
		Handler:     NewHandler(render, validator),
		requestRepo: requestRepo,
	}
}

type categoryRequestPayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Note string `json:"note,omitempty" validate:"max=500"`
}

// Create records a vendor's proposal for a new category. The request starts
// out pending and may be linked to products as a placeholder until an admin
// acts on it out of band.
func (h *CategoryRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	var payload categoryRequestPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	request := &models.CategoryRequest{
		ID:        uuid.New().String(),
		Name:      payload.Name,
		Note:      payload.Note,
		Status:    models.CategoryRequestStatusPending,
		CreatedBy: user.ID,
	}
	if err := h.requestRepo.Create(r.Context(), request); err != nil {
		h.respondError(w, r, apperr.FromStore("category_requests", "unable to create category request", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": request})
}

// List returns every request for admins and only the caller's own requests
// for vendors.
func (h *CategoryRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	var (
		requests []models.CategoryRequest
		err      error
	)
	if user.IsAdmin() {
		requests, err = h.requestRepo.GetAll(r.Context())
	} else {
		requests, err = h.requestRepo.GetByCreator(r.Context(), user.ID)
	}
	if err != nil {
		h.respondError(w, r, apperr.FromStore("category_requests", "unable to list category requests", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": requests})
}
