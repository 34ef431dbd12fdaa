package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/casecollector/Case-Collector-Backend/internal/api/handlers"
	custommiddleware "github.com/casecollector/Case-Collector-Backend/internal/api/middleware"
	"github.com/casecollector/Case-Collector-Backend/internal/config"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	ledgerService *service.LedgerService,
	priceService *service.PriceService,
	historyService *service.HistoryService,
	refreshService *service.RefreshService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/case", func(r chi.Router) {
			caseHandler := handlers.NewCaseHandler()
			r.Get("/", caseHandler.Cases)
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(ledgerService, priceService)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.Add)
			r.Post("/reorder", holdingHandler.Reorder)
			r.Route("/{index}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIndexMiddleware)
				r.Delete("/", holdingHandler.Remove)
				r.Put("/", holdingHandler.Update)
				r.Post("/transaction", holdingHandler.Transact)
			})
		})

		r.Route("/prices", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(refreshService, historyService, priceService)
			r.Post("/refresh", priceHandler.Refresh)
			r.Get("/history", priceHandler.History)
		})

		r.Route("/credential", func(r chi.Router) {
			credentialHandler := handlers.NewCredentialHandler(priceService)
			r.Get("/", credentialHandler.Status)
			r.Post("/", credentialHandler.Set)
		})
	})

	return r
}
