package dto

type CreditNoteCreateRequest struct {
	JobId      int64   `json:"job_id"`
	CustomerId int64   `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Reason     *string `json:"reason,omitempty"`
}

type CreditNoteUpdateRequest struct {
	Amount *float64 `json:"amount,omitempty"`
	Reason *string  `json:"reason,omitempty"`
}
