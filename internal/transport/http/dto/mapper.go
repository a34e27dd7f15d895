package dto

import "github.com/eventcal/scheduler/internal/domain"

func ToEventResp(e *domain.Event) EventResp {
	return EventResp{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		CreatorName:  e.CreatorName,
		CreatorEmail: e.CreatorEmail,
		Location:     e.Location,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToEventList(events []*domain.Event) []EventResp {
	out := make([]EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResp(e))
	}
	return out
}
