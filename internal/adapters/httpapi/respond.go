package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ndastro/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

var errorStatus = map[string]int{
	"chart_not_found":     http.StatusNotFound,
	"invalid_coordinates": http.StatusBadRequest,
	"invalid_datetime":    http.StatusBadRequest,
	"invalid_timezone":    http.StatusBadRequest,
	"unknown_language":    http.StatusBadRequest,
	"invalid_payload":     http.StatusBadRequest,
	"name_required":       http.StatusBadRequest,
	"birth_time_required": http.StatusBadRequest,
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

// writeError maps a domain error to its status code and localizes the
// message for the negotiated language. Anything without a stable code is a
// 500 and the cause stays in the log, not the payload.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	status, ok := errorStatus[code]
	if !ok {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		code = "internal_error"
		status = http.StatusInternalServerError
	}

	lang := requestLanguage(r.Context())
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: s.translator.T(lang, code, nil),
	}})
}
