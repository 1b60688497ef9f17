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

type CategoryHandler struct {
	Handler
	categoryRepo repositories.CategoryRepositoryImpl
	slugSvc      *services.SlugService
	accessSvc    *services.AccessService
}

func NewCategoryHandler(
	render *render.Render,
	validator *validator.Validate,
	categoryRepo repositories.CategoryRepositoryImpl,
	slugSvc *services.SlugService,
	accessSvc *services.AccessService,
) *CategoryHandler {
	return &CategoryHandler{
		Handler:      NewHandler(render, validator),
		categoryRepo: categoryRepo,
		slugSvc:      slugSvc,
		accessSvc:    accessSvc,
	}
}

type categoryPayload struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	capability := h.accessSvc.ResolveCategory(h.currentUser(r))
	if !capability.CanView {
		h.respondError(w, r, apperr.Authorization("you do not have permission to view categories"))
		return
	}
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to list categories", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": categories})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	capability := h.accessSvc.ResolveCategory(h.currentUser(r))
	if !capability.CanView {
		h.respondError(w, r, apperr.Authorization("you do not have permission to view categories"))
		return
	}
	category, err := h.categoryRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to load category", err))
		return
	}
	if category == nil {
		h.respondError(w, r, apperr.NotFound("category not found"))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": category})
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	capability := h.accessSvc.ResolveCategory(h.currentUser(r))
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("only admins may manage categories"))
		return
	}

	var payload categoryPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	if payload.ParentID != nil && *payload.ParentID != "" {
		parent, err := h.categoryRepo.GetByID(r.Context(), *payload.ParentID)
		if err != nil {
			h.respondError(w, r, apperr.FromStore("categories", "unable to load parent category", err))
			return
		}
		if parent == nil {
			h.respondError(w, r, apperr.Validation("invalid category payload", map[string]string{
				"parent_id": "Parent category does not exist.",
			}))
			return
		}
	}

	slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, "", h.categoryRepo.SlugExists)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to resolve category slug", err))
		return
	}

	category := &models.Category{
		ID:       uuid.New().String(),
		Name:     payload.Name,
		Slug:     slug,
		ParentID: payload.ParentID,
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to create category", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": category})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	capability := h.accessSvc.ResolveCategory(h.currentUser(r))
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("only admins may manage categories"))
		return
	}

	id := mux.Vars(r)["id"]
	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to load category", err))
		return
	}
	if category == nil {
		h.respondError(w, r, apperr.NotFound("category not found"))
		return
	}

	var payload categoryPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	if payload.Name != category.Name {
		slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, category.ID, h.categoryRepo.SlugExists)
		if err != nil {
			h.respondError(w, r, apperr.FromStore("categories", "unable to resolve category slug", err))
			return
		}
		category.Slug = slug
	}
	category.Name = payload.Name
	category.ParentID = payload.ParentID

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to update category", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": category})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	capability := h.accessSvc.ResolveCategory(h.currentUser(r))
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("only admins may manage categories"))
		return
	}

	id := mux.Vars(r)["id"]
	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to load category", err))
		return
	}
	if category == nil {
		h.respondError(w, r, apperr.NotFound("category not found"))
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, apperr.FromStore("categories", "unable to delete category", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
