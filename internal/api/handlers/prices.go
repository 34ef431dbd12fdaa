package handlers

import (
	"errors"
	"net/http"

	"github.com/casecollector/Case-Collector-Backend/internal/api/response"
	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/catalog"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
)

// PriceHandler handles price refresh and history HTTP requests.
type PriceHandler struct {
	refreshService *service.RefreshService
	historyService *service.HistoryService
	priceService   *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependencies.
func NewPriceHandler(refreshService *service.RefreshService, historyService *service.HistoryService, priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		refreshService: refreshService,
		historyService: historyService,
		priceService:   priceService,
	}
}

// RefreshResponse is the result of a successful price refresh.
type RefreshResponse struct {
	Status      string              `json:"status"`
	Investments []model.Holding     `json:"investments"`
	AllPrices   map[string]*float64 `json:"all_prices"`
}

// Refresh handles POST requests to refresh all case prices from the
// upstream provider. A missing credential is a 400; an upstream failure is
// a 502 and leaves the previous cache in effect.
//
// Endpoint: POST /api/prices/refresh
func (h *PriceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.refreshService.RefreshPrices()
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCredentialMissing):
			response.RespondError(w, http.StatusBadRequest, "no API key configured", err.Error())
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			response.RespondError(w, http.StatusBadGateway, "failed to refresh prices", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		}
		return
	}
	response.RespondJSON(w, http.StatusOK, RefreshResponse{
		Status:      "success",
		Investments: result.Holdings,
		AllPrices:   result.AllPrices,
	})
}

// HistoryResponse combines the current cached prices with the persisted
// daily history series for every case.
type HistoryResponse struct {
	Prices  map[string]*float64           `json:"prices"`
	History map[string][]model.PricePoint `json:"history"`
}

// History handles GET requests for the price history snapshot.
//
// Endpoint: GET /api/prices/history
func (h *PriceHandler) History(w http.ResponseWriter, r *http.Request) {
	prices := map[string]*float64{}
	for _, name := range catalog.Names() {
		if price, ok := h.priceService.GetPrice(name); ok {
			p := price
			prices[name] = &p
		} else {
			prices[name] = nil
		}
	}

	response.RespondJSON(w, http.StatusOK, HistoryResponse{
		Prices:  prices,
		History: h.historyService.Snapshot(),
	})
}
