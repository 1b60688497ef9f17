package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

// OrderHandler serves the read-only checkout review screen. Orders are
// written by the storefront, never here.
type OrderHandler struct {
	Handler
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderHandler(
	render *render.Render,
	validator *validator.Validate,
	orderRepo repositories.OrderRepositoryImpl,
) *OrderHandler {
	return &OrderHandler{
		Handler:   NewHandler(render, validator),
		orderRepo: orderRepo,
	}
}

type orderItem struct {
	*models.Order
	GrandTotalDisplay     string `json:"grand_total_display"`
	BaseTotalPriceDisplay string `json:"base_total_price_display"`
	DiscountAmountDisplay string `json:"discount_amount_display"`
}

func newOrderItem(order *models.Order) orderItem {
	return orderItem{
		Order:                 order,
		GrandTotalDisplay:     formatMoney(order.GrandTotal),
		BaseTotalPriceDisplay: formatMoney(order.BaseTotalPrice),
		DiscountAmountDisplay: formatMoney(order.DiscountAmount),
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	orders, total, err := h.orderRepo.GetPaginated(r.Context(), perPage, (page-1)*perPage)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("orders", "unable to list orders", err))
		return
	}

	items := make([]orderItem, 0, len(orders))
	for i := range orders {
		items = append(items, newOrderItem(&orders[i]))
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"page":        page,
		"pages":       int(math.Ceil(float64(total) / float64(perPage))),
		"total_count": total,
	})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, apperr.FromStore("orders", "unable to load order", err))
		return
	}
	if order == nil {
		h.respondError(w, r, apperr.NotFound("order not found"))
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": newOrderItem(order)})
}
