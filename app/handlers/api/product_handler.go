package api

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/services"
)

type ProductHandler struct {
	Handler
	productSvc *services.ProductService
}

func NewProductHandler(render *render.Render, validator *validator.Validate, productSvc *services.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:    NewHandler(render, validator),
		productSvc: productSvc,
	}
}

// productItem decorates the model with display prices for the admin UI.
type productItem struct {
	*models.Product
	PriceDisplay         string `json:"price_display"`
	DiscountPriceDisplay string `json:"discount_price_display,omitempty"`
}

func newProductItem(p *models.Product) productItem {
	item := productItem{Product: p, PriceDisplay: formatMoney(p.Price)}
	if p.DiscountPrice != nil {
		item.DiscountPriceDisplay = formatMoney(*p.DiscountPrice)
	}
	return item
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload services.ProductPayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	product, err := h.productSvc.Create(r.Context(), h.currentUser(r), &payload)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]interface{}{"item": newProductItem(product)})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload services.ProductUpdatePayload
	if !h.decodeJSON(w, r, &payload) {
		return
	}
	if !h.validateStruct(w, &payload) {
		return
	}

	product, err := h.productSvc.Update(r.Context(), h.currentUser(r), id, &payload)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": newProductItem(product)})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productSvc.Delete(r.Context(), h.currentUser(r), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productSvc.Get(r.Context(), h.currentUser(r), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"item": newProductItem(product)})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	filter := repositories.ProductFilter{
		Status:       query.Get("status"),
		CategorySlug: query.Get("category"),
		Keyword:      query.Get("q"),
	}

	result, err := h.productSvc.List(r.Context(), h.currentUser(r), filter, page, perPage)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	items := make([]productItem, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, newProductItem(&result.Items[i]))
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"page":        result.Page,
		"pages":       result.Pages,
		"total_count": result.TotalCount,
	})
}
