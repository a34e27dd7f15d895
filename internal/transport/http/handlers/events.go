package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventcal/scheduler/internal/application/event"
	"github.com/eventcal/scheduler/internal/domain"
	"github.com/eventcal/scheduler/internal/transport/http/dto"
	"github.com/eventcal/scheduler/internal/transport/http/response"
	"github.com/eventcal/scheduler/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.EventsBody{Events: dto.ToEventList(items)})
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.EventBody{Event: dto.ToEventResp(ev)})
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Invalid request body"))
		return
	}
	ev, err := h.svc.Create(r.Context(), event.CreateCmd{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CreatorName:  req.CreatorName,
		CreatorEmail: req.CreatorEmail,
		Location:     req.Location,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.CreatedBody{
		Message: "Event created successfully",
		Event:   dto.ToEventResp(ev),
	})
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.EventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Invalid request body"))
		return
	}

	err := h.svc.Update(r.Context(), event.UpdateCmd{
		EventID:      id,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CreatorName:  req.CreatorName,
		CreatorEmail: req.CreatorEmail,
		Location:     req.Location,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.MessageBody{Message: "Event updated successfully"})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.MessageBody{Message: "Event deleted successfully"})
}

func (h *EventsHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	startDate := chi.URLParam(r, "startDate")
	endDate := chi.URLParam(r, "endDate")

	items, err := h.svc.ListRange(r.Context(), startDate, endDate)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.EventsBody{Events: dto.ToEventList(items)})
}
