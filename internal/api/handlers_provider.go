package api

import (
	"net/http"

	respond "github.com/ayushi-devx/Virtual-Assistant/internal/api/respond"
	"github.com/ayushi-devx/Virtual-Assistant/internal/llm"
)

// ProviderHandler exposes the provider registry as a read-only listing.
type ProviderHandler struct {
	reg *llm.Registry
}

func NewProviderHandler(reg *llm.Registry) *ProviderHandler { return &ProviderHandler{reg: reg} }

// ListProviders GET /api/v1/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"providers": h.reg.Statuses(),
	})
}
