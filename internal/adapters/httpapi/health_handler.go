package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

type HealthHandler struct {
	server *Server
	db     Pinger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.server.logger.Warn("database ping failed", zap.Error(err))
			h.server.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	h.server.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
