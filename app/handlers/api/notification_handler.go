package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

type NotificationHandler struct {
	Handler
	notificationRepo repositories.NotificationRepositoryImpl
}

func NewNotificationHandler(
	render *render.Render,
	validator *validator.Validate,
	notificationRepo repositories.NotificationRepositoryImpl,
) *NotificationHandler {
	return &NotificationHandler{
		Handler:          NewHandler(render, validator),
		notificationRepo: notificationRepo,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	notifications, total, err := h.notificationRepo.GetByUserID(r.Context(), user.ID, perPage, (page-1)*perPage)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("admin_notifications", "unable to list notifications", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"items":       notifications,
		"page":        page,
		"pages":       int(math.Ceil(float64(total) / float64(perPage))),
		"total_count": total,
	})
}

// MarkRead is scoped to the caller's own notifications; marking someone
// else's row is a no-op.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	id := mux.Vars(r)["id"]

	if err := h.notificationRepo.MarkRead(r.Context(), id, user.ID); err != nil {
		h.respondError(w, r, apperr.FromStore("admin_notifications", "unable to mark notification read", err))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"read": true})
}
