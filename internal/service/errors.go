package service

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCode is returned when no verification record matches the
	// submitted email/code pair.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrMailNotConfigured is returned when the SMTP credentials are missing.
	ErrMailNotConfigured = errors.New("mail sender not configured")
	// ErrMailDelivery is returned when the SMTP send itself fails.
	ErrMailDelivery = errors.New("failed to send verification email")
	// ErrInvalidSection is returned when a chapter section's type tag does
	// not match its payload.
	ErrInvalidSection = errors.New("invalid chapter section")
)
