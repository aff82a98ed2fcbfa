package dto

import "time"

type JobCreateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DriverId    *int64     `json:"driver_id,omitempty"`
	CustomerId  int64      `json:"customer_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type JobUpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DriverId    *int64     `json:"driver_id,omitempty"`
	CustomerId  *int64     `json:"customer_id,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// JobEvent is published to the broker and pushed to the assigned driver's
// websocket after a lifecycle change.
type JobEvent struct {
	EventId       string    `json:"event_id"`
	JobId         int64     `json:"job_id"`
	DriverId      *int64    `json:"driver_id,omitempty"`
	Action        string    `json:"action"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
	CorrelationId string    `json:"correlation_id"`
}
