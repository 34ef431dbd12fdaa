package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/casecollector/Case-Collector-Backend/internal/api/request"
	"github.com/casecollector/Case-Collector-Backend/internal/api/response"
	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
)

// CredentialHandler handles CSFloat API key HTTP requests.
type CredentialHandler struct {
	priceService *service.PriceService
}

// NewCredentialHandler creates a new CredentialHandler with the provided service dependency.
func NewCredentialHandler(priceService *service.PriceService) *CredentialHandler {
	return &CredentialHandler{
		priceService: priceService,
	}
}

// Status handles GET requests reporting whether a validated key is on file.
//
// Endpoint: GET /api/credential
func (h *CredentialHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]bool{"is_valid": h.priceService.KeyIsValid()})
}

// Set handles POST requests configuring the API key. The key is validated
// against the upstream service before it is persisted; a rejected key
// leaves the stored credential untouched.
//
// Endpoint: POST /api/credential
func (h *CredentialHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req request.SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.priceService.SetAPIKey(req.APIKey); err != nil {
		if errors.Is(err, apperrors.ErrCredentialInvalid) {
			response.RespondError(w, http.StatusBadRequest, "invalid API key, please try again", "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to save API key", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "API key validated and saved",
	})
}
