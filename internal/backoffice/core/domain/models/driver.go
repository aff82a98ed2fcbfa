package models

type Driver struct {
	Id           int64   `json:"id"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone,omitempty"`
	PasswordHash string  `json:"-"`
	IsActive     bool    `json:"is_active"`
}
