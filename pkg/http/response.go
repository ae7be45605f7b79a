package http

import (
	"encoding/json"
	"net/http"

	apperrors "stayhub/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

type PaginatedResponse struct {
	Data   any   `json:"data"`
	Limit  int   `json:"limit"`
	Offset int64 `json:"offset"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an AppError to its HTTP status and body. Anything that is
// not an AppError is surfaced as an opaque internal error; collaborator
// failure details stay in the logs.
func WriteError(w http.ResponseWriter, err error) error {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
		})
	}

	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WritePaginated(w http.ResponseWriter, data any, limit int, offset int64) error {
	return WriteJSON(w, http.StatusOK, PaginatedResponse{
		Data:   data,
		Limit:  limit,
		Offset: offset,
	})
}
