package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/utils/apperr"
	"github.com/velamart/catalog-admin/app/utils/sessions"
)

type AuthHandler struct {
	Handler
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
}

func NewAuthHandler(
	render *render.Render,
	validator *validator.Validate,
	userRepo repositories.UserRepositoryImpl,
	sessionStore sessions.SessionStore,
) *AuthHandler {
	return &AuthHandler{
		Handler:      NewHandler(render, validator),
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), payload.Email)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("users", "unable to load user", err))
		return
	}
	// Same message for unknown email and wrong password.
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(payload.Password)) {
		h.respondError(w, r, apperr.Authorization("invalid email or password"))
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		h.respondError(w, r, apperr.Dependency("unable to start session", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		h.respondError(w, r, apperr.Dependency("unable to clear session", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"logged_out": true})
}

// Me returns the authenticated user attached by the identity middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.respondError(w, r, apperr.Authorization("authentication required"))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": user})
}
