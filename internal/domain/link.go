package domain

import "time"

// Link associates a user with a bank connection created through the provider widget.
type Link struct {
	ID              string `json:"id"`
	LinkID          string `json:"linkId"`
	UserID          string `json:"userId"`
	InstitutionName string `json:"institutionName"`
}

// WidgetToken is a provider token for the bank connection widget.
type WidgetToken struct {
	Token       string    `json:"token"`
	GeneratedAt time.Time `json:"generatedAt"`
}
