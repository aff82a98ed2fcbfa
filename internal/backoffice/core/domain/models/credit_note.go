package models

import "time"

type CreditNote struct {
	Id         int64     `json:"id"`
	JobId      int64     `json:"job_id"`
	CustomerId int64     `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
