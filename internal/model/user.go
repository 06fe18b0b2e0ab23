package model

import (
	"time"
)

type UserProfile struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	Username     string    `json:"username,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	ReportsCount int       `json:"reports_count"`
	CleanedCount int       `json:"cleaned_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Profile *UserProfile `json:"profile"`
}
