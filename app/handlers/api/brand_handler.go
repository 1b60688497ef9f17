package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/services"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

type BrandHandler struct {
	Handler
	brandRepo repositories.BrandRepositoryImpl
	slugSvc   *services.SlugService
	accessSvc *services.AccessService
}

func NewBrandHandler(
	render *render.Render,
	validator *validator.Validate,
	brandRepo repositories.BrandRepositoryImpl,
	slugSvc *services.SlugService,
	accessSvc *services.AccessService,
) *BrandHandler {
	return &BrandHandler{
		Handler:   NewHandler(render, validator),
		brandRepo: brandRepo,
		slugSvc:   slugSvc,
		accessSvc: accessSvc,
	}
}

type brandPayload struct {
	Name                           string `json:"name" validate:"required,min=2,max=100"`
	Description                    string `json:"description,omitempty"`
	RequireProductReviewForPublish *bool  `json:"require_product_review_for_publish,omitempty"`
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	var (
		brands []models.Brand
		err    error
	)
	if user.IsAdmin() {
		brands, err = h.brandRepo.GetAll(r.Context())
	} else {
		brands, err = h.brandRepo.GetVisible(r.Context(), user.ID)
	}
	if err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to list brands", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": brands})
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	var payload brandPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, "", h.brandRepo.SlugExists)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to resolve brand slug", err))
		return
	}

	brand := &models.Brand{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Slug:        slug,
		Description: payload.Description,
	}
	if user.IsVendor() {
		brand.CreatedBy = user.ID
	}
	// Only admins toggle the review gate.
	if user.IsAdmin() && payload.RequireProductReviewForPublish != nil {
		brand.RequireProductReviewForPublish = *payload.RequireProductReviewForPublish
	}
	if err := h.brandRepo.Create(r.Context(), brand); err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to create brand", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": brand})
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	brand, err := h.brandRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to load brand", err))
		return
	}
	if brand == nil {
		h.respondError(w, r, apperr.NotFound("brand not found"))
		return
	}

	capability := h.accessSvc.ResolveOwned(user, services.EntityDescriptor{OwnerID: brand.CreatedBy, SharedAllowed: true})
	if !capability.CanView {
		h.respondError(w, r, apperr.NotFound("brand not found"))
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this brand"))
		return
	}

	var payload brandPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	if payload.Name != brand.Name {
		slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, brand.ID, h.brandRepo.SlugExists)
		if err != nil {
			h.respondError(w, r, apperr.FromStore("brands", "unable to resolve brand slug", err))
			return
		}
		brand.Slug = slug
	}
	brand.Name = payload.Name
	brand.Description = payload.Description
	if user.IsAdmin() && payload.RequireProductReviewForPublish != nil {
		brand.RequireProductReviewForPublish = *payload.RequireProductReviewForPublish
	}

	if err := h.brandRepo.Update(r.Context(), brand); err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to update brand", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": brand})
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	brand, err := h.brandRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to load brand", err))
		return
	}
	if brand == nil {
		h.respondError(w, r, apperr.NotFound("brand not found"))
		return
	}

	capability := h.accessSvc.ResolveOwned(user, services.EntityDescriptor{OwnerID: brand.CreatedBy, SharedAllowed: true})
	if !capability.CanView {
		h.respondError(w, r, apperr.NotFound("brand not found"))
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to delete this brand"))
		return
	}

	if err := h.brandRepo.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, apperr.FromStore("brands", "unable to delete brand", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
