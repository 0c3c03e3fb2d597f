package handler

import (
	"encoding/json"
	"net/http"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

func (h *QdogeHandler) respond(w http.ResponseWriter, payload any, httpCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.WriteHeader(httpCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logs.Errorw("failed to encode response", "error", err, "request_id", requestID)
	}
}
