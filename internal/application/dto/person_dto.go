package dto

import "time"

// PersonRequest body para crear una persona del directorio.
type PersonRequest struct {
	Name    string `json:"name"`
	DNI     string `json:"dni"`
	ClassID string `json:"class_id"`
}

// PersonResponse una persona del directorio.
type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DNI       string    `json:"dni"`
	ClassID   string    `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
