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

type TagHandler struct {
	Handler
	tagRepo   repositories.TagRepositoryImpl
	slugSvc   *services.SlugService
	accessSvc *services.AccessService
}

func NewTagHandler(
	render *render.Render,
	validator *validator.Validate,
	tagRepo repositories.TagRepositoryImpl,
	slugSvc *services.SlugService,
	accessSvc *services.AccessService,
) *TagHandler {
	return &TagHandler{
		Handler:   NewHandler(render, validator),
		tagRepo:   tagRepo,
		slugSvc:   slugSvc,
		accessSvc: accessSvc,
	}
}

type tagPayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	var (
		tags []models.Tag
		err  error
	)
	if user.IsAdmin() {
		tags, err = h.tagRepo.GetAll(r.Context())
	} else {
		tags, err = h.tagRepo.GetVisible(r.Context(), user.ID)
	}
	if err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to list tags", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": tags})
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	var payload tagPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, "", h.tagRepo.SlugExists)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to resolve tag slug", err))
		return
	}

	tag := &models.Tag{
		ID:   uuid.New().String(),
		Name: payload.Name,
		Slug: slug,
	}
	// Admin-created tags are shared; vendor tags stay private to the vendor.
	if user.IsVendor() {
		tag.CreatedBy = user.ID
	}
	if err := h.tagRepo.Create(r.Context(), tag); err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to create tag", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": tag})
}

func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	tag, err := h.tagRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to load tag", err))
		return
	}
	if tag == nil {
		h.respondError(w, r, apperr.NotFound("tag not found"))
		return
	}

	capability := h.accessSvc.ResolveOwned(user, services.EntityDescriptor{OwnerID: tag.CreatedBy, SharedAllowed: true})
	if !capability.CanView {
		h.respondError(w, r, apperr.NotFound("tag not found"))
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this tag"))
		return
	}

	var payload tagPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	if payload.Name != tag.Name {
		slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, tag.ID, h.tagRepo.SlugExists)
		if err != nil {
			h.respondError(w, r, apperr.FromStore("tags", "unable to resolve tag slug", err))
			return
		}
		tag.Slug = slug
	}
	tag.Name = payload.Name

	if err := h.tagRepo.Update(r.Context(), tag); err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to update tag", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": tag})
}

func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	tag, err := h.tagRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to load tag", err))
		return
	}
	if tag == nil {
		h.respondError(w, r, apperr.NotFound("tag not found"))
		return
	}

	capability := h.accessSvc.ResolveOwned(user, services.EntityDescriptor{OwnerID: tag.CreatedBy, SharedAllowed: true})
	if !capability.CanView {
		h.respondError(w, r, apperr.NotFound("tag not found"))
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to delete this tag"))
		return
	}

	if err := h.tagRepo.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, apperr.FromStore("tags", "unable to delete tag", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
