package handlers

import (
	"net/http"

	"github.com/casecollector/Case-Collector-Backend/internal/api/response"
	"github.com/casecollector/Case-Collector-Backend/internal/catalog"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// CaseHandler serves the static case catalog.
type CaseHandler struct{}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler() *CaseHandler {
	return &CaseHandler{}
}

// CaseResponse is one catalog entry as served to clients.
type CaseResponse struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	ReleaseYear int    `json:"release_year"`
}

// Cases handles GET requests for the case catalog, newest release first.
//
// Endpoint: GET /api/case
func (h *CaseHandler) Cases(w http.ResponseWriter, r *http.Request) {
	cases := catalog.Cases()
	out := make([]CaseResponse, len(cases))
	for i, c := range cases {
		out[i] = CaseResponse{
			Name:        c.Name,
			ReleaseDate: c.ReleaseDate.Format(model.DateFormat),
			ReleaseYear: c.ReleaseDate.Year(),
		}
	}
	response.RespondJSON(w, http.StatusOK, out)
}
