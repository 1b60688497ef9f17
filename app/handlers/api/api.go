package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

// Handler is the shared base for every API handler: JSON renderer plus the
// request payload validator.
type Handler struct {
	render    *render.Render
	validator *validator.Validate
}

func NewHandler(render *render.Render, validator *validator.Validate) Handler {
	return Handler{render: render, validator: validator}
}

type validationPayload struct {
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	FormErrors  []string          `json:"form_errors,omitempty"`
	Issues      []issue           `json:"issues,omitempty"`
}

type issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error      string             `json:"error"`
	Validation *validationPayload `json:"validation,omitempty"`
}

func (h Handler) currentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func (h Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("decodeJSON: malformed request body on %s: %v", r.URL.Path, err)
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON request body"})
		return false
	}
	return true
}

// validateStruct runs tag validation and writes the field error map response
// on failure.
func (h Handler) validateStruct(w http.ResponseWriter, payload interface{}) bool {
	if err := h.validator.Struct(payload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
			return false
		}
		fieldErrors := helpers.FormatValidationErrors(validationErrors)
		h.render.JSON(w, http.StatusBadRequest, errorResponse{
			Error:      "invalid request payload",
			Validation: buildValidation(fieldErrors, nil),
		})
		return false
	}
	return true
}

func buildValidation(fieldErrors map[string]string, formErrors []string) *validationPayload {
	payload := &validationPayload{FieldErrors: fieldErrors, FormErrors: formErrors}
	for field, message := range fieldErrors {
		payload.Issues = append(payload.Issues, issue{Field: field, Message: message})
	}
	for _, message := range formErrors {
		payload.Issues = append(payload.Issues, issue{Message: message})
	}
	return payload
}

// respondError maps a service error onto the HTTP error contract. Dependency
// and schema-drift details are logged server-side and never disclosed.
func (h Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		log.Printf("respondError: unclassified error on %s: %v", r.URL.Path, err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := apperr.HTTPStatus(err)
	response := errorResponse{Error: appErr.Message}
	if appErr.Kind == apperr.KindValidation {
		response.Validation = buildValidation(appErr.FieldErrors, appErr.FormErrors)
	}
	if status >= http.StatusInternalServerError {
		log.Printf("respondError: %s failed: %v", r.URL.Path, err)
		if appErr.Kind == apperr.KindDependency {
			response.Error = "unable to update relationships"
		}
	}
	h.render.JSON(w, status, response)
}

var moneyFormatter = accounting.Accounting{Symbol: "$", Precision: 2}

func formatMoney(d decimal.Decimal) string {
	return moneyFormatter.FormatMoneyDecimal(d)
}
