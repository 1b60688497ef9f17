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

type AttributeHandler struct {
	Handler
	attributeRepo repositories.AttributeRepositoryImpl
	slugSvc       *services.SlugService
	accessSvc     *services.AccessService
}

func NewAttributeHandler(
	render *render.Render,
	validator *validator.Validate,
	attributeRepo repositories.AttributeRepositoryImpl,
	slugSvc *services.SlugService,
	accessSvc *services.AccessService,
) *AttributeHandler {
	return &AttributeHandler{
		Handler:       NewHandler(render, validator),
		attributeRepo: attributeRepo,
		slugSvc:       slugSvc,
		accessSvc:     accessSvc,
	}
}

type attributePayload struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type attributeOptionPayload struct {
	Value     string `json:"value" validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

func (h *AttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	var (
		attributes []models.Attribute
		err        error
	)
	if user.IsAdmin() {
		attributes, err = h.attributeRepo.GetAll(r.Context())
	} else {
		attributes, err = h.attributeRepo.GetVisible(r.Context(), user.ID)
	}
	if err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to list attributes", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": attributes})
}

func (h *AttributeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	var payload attributePayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, "", h.attributeRepo.SlugExists)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to resolve attribute slug", err))
		return
	}

	attribute := &models.Attribute{
		ID:   uuid.New().String(),
		Name: payload.Name,
		Slug: slug,
	}
	if user.IsVendor() {
		attribute.CreatedBy = user.ID
	}
	if err := h.attributeRepo.Create(r.Context(), attribute); err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to create attribute", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": attribute})
}

func (h *AttributeHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	attribute, capability, ok := h.loadGated(w, r, id, user)
	if !ok {
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this attribute"))
		return
	}

	var payload attributePayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	if payload.Name != attribute.Name {
		slug, err := h.slugSvc.UniqueSlug(r.Context(), payload.Name, attribute.ID, h.attributeRepo.SlugExists)
		if err != nil {
			h.respondError(w, r, apperr.FromStore("attributes", "unable to resolve attribute slug", err))
			return
		}
		attribute.Slug = slug
	}
	attribute.Name = payload.Name

	if err := h.attributeRepo.Update(r.Context(), attribute); err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to update attribute", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": attribute})
}

func (h *AttributeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	_, capability, ok := h.loadGated(w, r, id, user)
	if !ok {
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to delete this attribute"))
		return
	}

	if err := h.attributeRepo.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to delete attribute", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

func (h *AttributeHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	attributeID := mux.Vars(r)["id"]

	attribute, capability, ok := h.loadGated(w, r, attributeID, user)
	if !ok {
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this attribute"))
		return
	}

	var payload attributeOptionPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	// Options inherit ownership from their attribute.
	option := &models.AttributeOption{
		ID:          uuid.New().String(),
		AttributeID: attribute.ID,
		Value:       payload.Value,
		SortOrder:   payload.SortOrder,
		CreatedBy:   attribute.CreatedBy,
	}
	if err := h.attributeRepo.CreateOption(r.Context(), option); err != nil {
		h.respondError(w, r, apperr.FromStore("attribute_options", "unable to create attribute option", err))
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": option})
}

func (h *AttributeHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	vars := mux.Vars(r)

	attribute, capability, ok := h.loadGated(w, r, vars["id"], user)
	if !ok {
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this attribute"))
		return
	}

	option, err := h.attributeRepo.GetOptionByID(r.Context(), vars["optionID"])
	if err != nil {
		h.respondError(w, r, apperr.FromStore("attribute_options", "unable to load attribute option", err))
		return
	}
	if option == nil || option.AttributeID != attribute.ID {
		h.respondError(w, r, apperr.NotFound("attribute option not found"))
		return
	}

	var payload attributeOptionPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	option.Value = payload.Value
	option.SortOrder = payload.SortOrder
	if err := h.attributeRepo.UpdateOption(r.Context(), option); err != nil {
		h.respondError(w, r, apperr.FromStore("attribute_options", "unable to update attribute option", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": option})
}

func (h *AttributeHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	vars := mux.Vars(r)

	attribute, capability, ok := h.loadGated(w, r, vars["id"], user)
	if !ok {
		return
	}
	if !capability.CanEdit {
		h.respondError(w, r, apperr.Authorization("you do not have permission to edit this attribute"))
		return
	}

	option, err := h.attributeRepo.GetOptionByID(r.Context(), vars["optionID"])
	if err != nil {
		h.respondError(w, r, apperr.FromStore("attribute_options", "unable to load attribute option", err))
		return
	}
	if option == nil || option.AttributeID != attribute.ID {
		h.respondError(w, r, apperr.NotFound("attribute option not found"))
		return
	}

	if err := h.attributeRepo.DeleteOption(r.Context(), option.ID); err != nil {
		h.respondError(w, r, apperr.FromStore("attribute_options", "unable to delete attribute option", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// loadGated fetches an attribute and resolves the caller's capability,
// writing a not-found response when the row is missing or invisible.
func (h *AttributeHandler) loadGated(w http.ResponseWriter, r *http.Request, id string, user *models.User) (*models.Attribute, services.Capability, bool) {
	attribute, err := h.attributeRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("attributes", "unable to load attribute", err))
		return nil, services.Capability{}, false
	}
	if attribute == nil {
		h.respondError(w, r, apperr.NotFound("attribute not found"))
		return nil, services.Capability{}, false
	}
	capability := h.accessSvc.ResolveAttribute(user, attribute)
	if !capability.CanView {
		h.respondError(w, r, apperr.NotFound("attribute not found"))
		return nil, services.Capability{}, false
	}
	return attribute, capability, true
}
