package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventcal/scheduler/internal/domain"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func Data(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Error().Err(err).Msg("response encode failed")
	}
}

// Err maps an error to its HTTP status and writes the {"error": message}
// body. Store failures pass their raw message through to the caller; this
// surface is not security-sensitive and the message is the only diagnostic
// the client gets.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Data(w, http.StatusInternalServerError, ErrorBody{Error: "unknown error"})
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Data(w, statusFromCode(ae.Code), ErrorBody{Error: ae.Message})
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	Data(w, http.StatusInternalServerError, ErrorBody{Error: err.Error()})
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
