package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error,omitempty" example:"Internal server error"`
}

// MessageResponse is the envelope for operations that only report an outcome.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"done"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Error: message})
}

func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, MessageResponse{Success: true, Message: message})
}
