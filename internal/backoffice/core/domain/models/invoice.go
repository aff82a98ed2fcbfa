package models

import "time"

type Invoice struct {
	Id         int64     `json:"id"`
	JobId      int64     `json:"job_id"`
	CustomerId int64     `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	IssuedAt   time.Time `json:"issued_at"`
}
