package domain

import "time"

// User is the core backend's view of an account holder.
// Only ID matters to the gateway; the rest is passed through.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokenValidation is the identity backend's verdict on a caller's token.
type TokenValidation struct {
	UserID    string `json:"userId"`
	IsValid   bool   `json:"isValid"`
	ExpiresIn int    `json:"expiresIn"`
}
