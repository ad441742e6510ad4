package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sandeepmed2/property-registration/pkg/api"
	"github.com/sandeepmed2/property-registration/pkg/handlers"
	"github.com/sandeepmed2/property-registration/pkg/mapping"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Registry registry.AccountRegistry
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(reg registry.AccountRegistry) *AccountsHandler {
	return &AccountsHandler{Registry: reg}
}

// Register mounts the account routes on r.
func (h *AccountsHandler) Register(r chi.Router) {
	r.Post("/account-requests", h.RequestAccount)
	r.Post("/accounts", h.ApproveAccount)
	r.Get("/accounts/{name}/{taxId}", h.GetAccount)
	r.Post("/accounts/{name}/{taxId}/recharge", h.Recharge)
}

// RequestAccount handles the submission of a new account registration.
func (h *AccountsHandler) RequestAccount(w http.ResponseWriter, r *http.Request) {
	var body api.NewAccountRequest
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	request, err := h.Registry.RequestAccount(r.Context(), mapping.ToRegistryAccountRequest(&body))
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiAccountRequest(request))
}

// ApproveAccount handles the approval of a pending account registration.
func (h *AccountsHandler) ApproveAccount(w http.ResponseWriter, r *http.Request) {
	var body api.AccountApproval
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	account, err := h.Registry.ApproveAccount(r.Context(), body.Name, body.TaxId)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiAccount(account))
}

// GetAccount handles the logic for retrieving an account.
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.Registry.ViewAccount(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "taxId"))
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}

// Recharge handles crediting an account with a recharge code.
func (h *AccountsHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	var body api.Recharge
	if !handlers.DecodeBody(w, r, &body) {
		return
	}

	err := h.Registry.Recharge(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "taxId"), body.Code)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
