package http

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

func healthHandler(channels []types.Channel) http.HandlerFunc {
	sorted := slices.Clone(channels)
	slices.Sort(sorted)
	if sorted == nil {
		sorted = []types.Channel{}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:   "healthy",
			Service:  "hookcord",
			Version:  types.Version,
			Channels: sorted,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
