package dto

import "time"

// EventReq is the payload for both create and update. Update carries the
// same field set and overwrites with whatever arrives, absent fields
// included.
type EventReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	CreatorName  string `json:"creator_name"`
	CreatorEmail string `json:"creator_email"`
	Location     string `json:"location"`
}

// EventResp is the stable API event model.
type EventResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	CreatorName  string    `json:"creator_name"`
	CreatorEmail string    `json:"creator_email"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EventsBody struct {
	Events []EventResp `json:"events"`
}

type EventBody struct {
	Event EventResp `json:"event"`
}

type CreatedBody struct {
	Message string    `json:"message"`
	Event   EventResp `json:"event"`
}

type MessageBody struct {
	Message string `json:"message"`
}

type HealthBody struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
