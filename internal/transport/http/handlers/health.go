package handlers

import (
	"net/http"
	"time"

	"github.com/eventcal/scheduler/internal/transport/http/dto"
	"github.com/eventcal/scheduler/internal/transport/http/response"
)

type Clock interface{ Now() time.Time }

type HealthHandler struct {
	clock Clock
}

func NewHealthHandler(clock Clock) *HealthHandler { return &HealthHandler{clock: clock} }

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.HealthBody{
		Status:    "OK",
		Timestamp: h.clock.Now().UTC(),
	})
}
