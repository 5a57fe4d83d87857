package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterForm carries the raw registration form fields as submitted.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm carries the raw login form fields as submitted.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}
