package properties

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sandeepmed2/property-registration/pkg/api"
	"github.com/sandeepmed2/property-registration/pkg/handlers"
	"github.com/sandeepmed2/property-registration/pkg/mapping"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// PropertiesHandler holds the dependencies for property-related handlers.
type PropertiesHandler struct {
	Registry registry.PropertyRegistry
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(reg registry.PropertyRegistry) *PropertiesHandler {
	return &PropertiesHandler{Registry: reg}
}

// Register mounts the property routes on r.
func (h *PropertiesHandler) Register(r chi.Router) {
	r.Post("/property-requests", h.RequestProperty)
	r.Post("/properties", h.ApproveProperty)
	r.Get("/properties/{propertyId}", h.GetProperty)
	r.Patch("/properties/{propertyId}/status", h.UpdateStatus)
	r.Post("/properties/{propertyId}/purchase", h.Purchase)
}

// RequestProperty handles the submission of a new property registration.
func (h *PropertiesHandler) RequestProperty(w http.ResponseWriter, r *http.Request) {
	var body api.NewPropertyRequest
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	request, err := h.Registry.RequestProperty(r.Context(), mapping.ToRegistryPropertyRequest(&body))
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiPropertyRequest(request))
}

// ApproveProperty handles the approval of a pending property registration.
func (h *PropertiesHandler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	var body api.PropertyApproval
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	property, err := h.Registry.ApproveProperty(r.Context(), body.PropertyId)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiProperty(property))
}

// GetProperty handles the logic for retrieving a property.
func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.Registry.ViewProperty(r.Context(), chi.URLParam(r, "propertyId"))
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiProperty(property))
}

// UpdateStatus handles listing a property for sale or withdrawing it.
func (h *PropertiesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body api.StatusUpdate
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	err := h.Registry.UpdateStatus(r.Context(), chi.URLParam(r, "propertyId"), body.OwnerName, body.OwnerTaxId, body.Status)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Purchase handles the transfer of a property to a buyer.
func (h *PropertiesHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var body api.PurchaseRequest
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	err := h.Registry.Purchase(r.Context(), chi.URLParam(r, "propertyId"), body.BuyerName, body.BuyerTaxId)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
