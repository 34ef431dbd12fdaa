package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/casecollector/Case-Collector-Backend/internal/api/request"
	"github.com/casecollector/Case-Collector-Backend/internal/api/response"
	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
	"github.com/casecollector/Case-Collector-Backend/internal/validation"
)

// HoldingHandler handles holding-related HTTP requests. It serves as the
// HTTP layer adapter, parsing requests and delegating business logic to the
// ledger service.
type HoldingHandler struct {
	ledgerService *service.LedgerService
	priceService  *service.PriceService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependencies.
func NewHoldingHandler(ledgerService *service.LedgerService, priceService *service.PriceService) *HoldingHandler {
	return &HoldingHandler{
		ledgerService: ledgerService,
		priceService:  priceService,
	}
}

// HoldingsResponse is the common envelope returned by mutating holding
// endpoints: the resulting holdings list.
type HoldingsResponse struct {
	Status      string          `json:"status"`
	Investments []model.Holding `json:"investments"`
}

// Holdings handles GET requests for the current holdings list.
//
// Endpoint: GET /api/holding
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.ledgerService.Holdings())
}

// Add handles POST requests to create a new holding. Adding a case that is
// already held is a no-op that still returns the current list.
//
// Endpoint: POST /api/holding
func (h *HoldingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateItemName(req.Case); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid case name", err.Error())
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid quantity", err.Error())
		return
	}
	if err := validation.ValidatePrice(req.Price); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid price", err.Error())
		return
	}

	var cachedPrice *float64
	if price, ok := h.priceService.GetPrice(req.Case); ok {
		cachedPrice = &price
	}

	holdings, err := h.ledgerService.AddHolding(req.Case, req.Quantity, req.Price, cachedPrice)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to add holding", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, HoldingsResponse{Status: "success", Investments: holdings})
}

// Remove handles DELETE requests for a holding by index. An out-of-range
// index leaves the list unchanged and still reports success.
//
// Endpoint: DELETE /api/holding/{index}
func (h *HoldingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(chi.URLParam(r, "index"))

	if err := h.ledgerService.RemoveHolding(index); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to remove holding", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, HoldingsResponse{Status: "success", Investments: h.ledgerService.Holdings()})
}

// Update handles PUT requests editing a single holding field. Values that
// do not parse are discarded; the response reports success either way, with
// the rejection reason logged as a diagnostic.
//
// Endpoint: PUT /api/holding/{index}
func (h *HoldingHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(chi.URLParam(r, "index"))

	var req request.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledgerService.UpdateField(index, req.Field, req.Value)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}
	if !result.Applied {
		log.Printf("discarded update of %s on holding %d: %s", req.Field, index, result.Reason)
	}
	response.RespondJSON(w, http.StatusOK, HoldingsResponse{Status: "success", Investments: h.ledgerService.Holdings()})
}

// Transact handles POST requests recording a buy or sell against a
// holding. An out-of-range index is a no-op that still reports success.
//
// Endpoint: POST /api/holding/{index}/transaction
func (h *HoldingHandler) Transact(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(chi.URLParam(r, "index"))

	var req request.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateTransactionType(req.Type); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid transaction type", err.Error())
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid quantity", err.Error())
		return
	}
	if err := validation.ValidatePrice(req.Price); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid price", err.Error())
		return
	}

	if err := h.ledgerService.RecordTransaction(index, req.Type, req.Quantity, req.Price); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to record transaction", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, HoldingsResponse{Status: "success", Investments: h.ledgerService.Holdings()})
}

// Reorder handles POST requests replacing the holdings list with a
// caller-supplied ordering of the same holdings.
//
// Endpoint: POST /api/holding/reorder
func (h *HoldingHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ledgerService.Reorder(req.Investments); err != nil {
		if errors.Is(err, apperrors.ErrReorderMismatch) {
			response.RespondError(w, http.StatusBadRequest, "invalid investments data", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to reorder holdings", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, HoldingsResponse{Status: "success", Investments: h.ledgerService.Holdings()})
}
