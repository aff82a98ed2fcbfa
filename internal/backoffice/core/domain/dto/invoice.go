package dto

import "time"

type InvoiceCreateRequest struct {
	JobId      int64      `json:"job_id"`
	CustomerId int64      `json:"customer_id"`
	Amount     float64    `json:"amount"`
	Status     *string    `json:"status,omitempty"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
}

type InvoiceUpdateRequest struct {
	Amount   *float64   `json:"amount,omitempty"`
	Status   *string    `json:"status,omitempty"`
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}
