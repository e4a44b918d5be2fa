// SPDX-License-Identifier: MIT

package dbghttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"github.com/graphicfox/dbg"
	xlog "github.com/graphicfox/dbg/internal/log"
)

// Router returns a chi router with the module's diagnostic endpoints:
//
//	GET /config  — effective configuration as YAML (hooks listed by count)
//	GET /metrics — prometheus metrics
//
// Mount it under a path that is not reachable in production.
func Router() chi.Router {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/config", handleConfig)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func handleConfig(w http.ResponseWriter, r *http.Request) {
	values := dbg.All()
	// Hooks are functions; report how many are registered instead.
	for _, key := range []string{dbg.OptPreHooks, dbg.OptPostHooks} {
		if hooks, ok := values[key].([]dbg.Hook); ok {
			values[key] = len(hooks)
		}
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		logger := xlog.WithContext(r.Context(), xlog.WithComponent("dbghttp"))
		logger.Error().Err(err).Msg("marshal config")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(data)
}
