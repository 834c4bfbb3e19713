package models

import "time"

// VerificationRecord binds an email address to a one-time numeric code.
// Records are deleted in bulk for an email once any of its codes is
// verified; until then multiple codes for the same address may coexist.
type VerificationRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Code      string    `bson:"code" json:"code"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type EmailVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}
